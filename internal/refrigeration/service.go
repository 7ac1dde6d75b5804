package refrigeration

import (
	"context"

	"frota-backend/internal/constants"
	"frota-backend/internal/consumption"
	"frota-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// CreateUnitInput for unit registration. New units start in maintenance
// until commissioned.
type CreateUnitInput struct {
	Identifier        string `json:"identifier"`
	Brand             string `json:"brand"`
	Model             string `json:"model"`
	InitialUsageHours int    `json:"initial_usage_hours"`
}

func (s *Service) Create(ctx context.Context, in CreateUnitInput) (*models.RefrigerationUnit, error) {
	if in.Identifier == "" {
		return nil, ErrIdentifierMissing
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.RefrigerationUnit{}).Where("identifier = ?", in.Identifier).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrIdentifierTaken
	}

	unit := models.RefrigerationUnit{
		Identifier:        in.Identifier,
		Brand:             in.Brand,
		Model:             in.Model,
		Status:            constants.StatusMaintenance,
		InitialUsageHours: in.InitialUsageHours,
		UsageHours:        float64(in.InitialUsageHours),
	}
	if err := s.DB.WithContext(ctx).Create(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (s *Service) List(ctx context.Context, status string) ([]models.RefrigerationUnit, error) {
	q := s.DB.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var units []models.RefrigerationUnit
	if err := q.Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.RefrigerationUnit, error) {
	var unit models.RefrigerationUnit
	if err := s.DB.WithContext(ctx).Where("unit_id = ?", id).First(&unit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// UpdateUnitInput for editing descriptive fields. Status and linkage have
// their own operations.
type UpdateUnitInput struct {
	Brand *string `json:"brand"`
	Model *string `json:"model"`
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateUnitInput) (*models.RefrigerationUnit, error) {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Brand != nil {
		unit.Brand = *in.Brand
	}
	if in.Model != nil {
		unit.Model = *in.Model
	}
	if err := s.DB.WithContext(ctx).Save(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

// LinkToVehicle mounts the unit on a vehicle, or unmounts it when vehicleID
// is nil. Mounting a unit that is not active/defective force-sets it active;
// unmounting leaves the status untouched.
func (s *Service) LinkToVehicle(ctx context.Context, unitID uuid.UUID, vehicleID *uuid.UUID) (*models.RefrigerationUnit, error) {
	var updated *models.RefrigerationUnit
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var unit models.RefrigerationUnit
		if err := tx.Where("unit_id = ?", unitID).First(&unit).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrUnitNotFound
			}
			return err
		}

		if vehicleID == nil {
			unit.VehicleID = nil
			if err := tx.Save(&unit).Error; err != nil {
				return err
			}
			updated = &unit
			return nil
		}

		if unit.Status == constants.StatusSold {
			return ErrUnitSold
		}

		var vehicle models.Vehicle
		if err := tx.Where("vehicle_id = ?", *vehicleID).First(&vehicle).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrVehicleNotFound
			}
			return err
		}

		var mounted int64
		if err := tx.Model(&models.RefrigerationUnit{}).
			Where("vehicle_id = ? AND unit_id <> ?", *vehicleID, unitID).
			Count(&mounted).Error; err != nil {
			return err
		}
		if mounted > 0 {
			return ErrVehicleHasUnit
		}

		if unit.Status != constants.StatusActive && unit.Status != constants.StatusDefective {
			log.Info().Str("unit_id", unitID.String()).Str("from", unit.Status).Msg("Unit status corrected to active on link")
			unit.Status = constants.StatusActive
		}
		unit.VehicleID = vehicleID
		if err := tx.Save(&unit).Error; err != nil {
			return err
		}
		updated = &unit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus changes a unit's status. A mounted unit only accepts active or
// defective; anything else requires unlinking first (two separate calls).
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.RefrigerationUnit, error) {
	if !constants.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if status == constants.StatusSold {
		return nil, ErrStatusViaSale
	}

	unit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit.Status == constants.StatusSold {
		return nil, ErrUnitSold
	}
	if unit.Linked() && status != constants.StatusActive && status != constants.StatusDefective {
		return nil, ErrUnitLinked
	}

	unit.Status = status
	if err := s.DB.WithContext(ctx).Save(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

// Stats computes the unit's liters-per-hour average over its refuelings.
func (s *Service) Stats(ctx context.Context, id uuid.UUID) (*consumption.Result, error) {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var records []models.Refueling
	if err := s.DB.WithContext(ctx).Where("refrigeration_unit_id = ?", id).Find(&records).Error; err != nil {
		return nil, err
	}
	res := consumption.ForUnit(records, float64(unit.InitialUsageHours))
	return &res, nil
}
