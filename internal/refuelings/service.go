package refuelings

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"frota-backend/internal/models"
	"frota-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// Decimal accepts JSON numbers and string-encoded decimals ("45,5" or
// "45.5"). Unparseable values become 0 and fail the positivity check later.
type Decimal float64

func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = 0
		return nil
	}
	*d = Decimal(validation.ParseDecimal(s))
	return nil
}

var _ json.Unmarshaler = (*Decimal)(nil)

// CreateRefuelingInput for a new refueling event. Exactly one of VehicleID
// or RefrigerationUnitID must be set; Km goes with vehicles, UsageHours
// with units.
type CreateRefuelingInput struct {
	Date                time.Time  `json:"date"`
	Liters              Decimal    `json:"liters"`
	TotalCost           Decimal    `json:"total_cost"`
	FuelType            string     `json:"fuel_type"`
	VehicleID           *uuid.UUID `json:"vehicle_id"`
	RefrigerationUnitID *uuid.UUID `json:"refrigeration_unit_id"`
	Km                  *float64   `json:"km"`
	UsageHours          *float64   `json:"usage_hours"`
	SupplierID          *uuid.UUID `json:"supplier_id"`
}

// Create validates and stores a refueling, advancing the asset's current
// reading when the new cumulative value is ahead of it.
func (s *Service) Create(ctx context.Context, in CreateRefuelingInput) (*models.Refueling, error) {
	if (in.VehicleID == nil) == (in.RefrigerationUnitID == nil) {
		return nil, ErrAssetRefRequired
	}
	if in.Liters <= 0 {
		return nil, ErrLitersRequired
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	fuelType := in.FuelType
	if fuelType == "" {
		fuelType = "Diesel S10"
	}

	var created *models.Refueling
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := models.Refueling{
			Date:                date,
			Liters:              float64(in.Liters),
			TotalCost:           float64(in.TotalCost),
			FuelType:            fuelType,
			VehicleID:           in.VehicleID,
			RefrigerationUnitID: in.RefrigerationUnitID,
			Km:                  in.Km,
			UsageHours:          in.UsageHours,
			SupplierID:          in.SupplierID,
		}

		if in.VehicleID != nil {
			var vehicle models.Vehicle
			if err := tx.Where("vehicle_id = ?", *in.VehicleID).First(&vehicle).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return ErrVehicleNotFound
				}
				return err
			}
			record.UsageHours = nil
			if in.Km != nil && *in.Km > vehicle.Km {
				vehicle.Km = *in.Km
				if err := tx.Save(&vehicle).Error; err != nil {
					return err
				}
			}
		} else {
			var unit models.RefrigerationUnit
			if err := tx.Where("unit_id = ?", *in.RefrigerationUnitID).First(&unit).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return ErrUnitNotFound
				}
				return err
			}
			record.Km = nil
			if in.UsageHours != nil && *in.UsageHours > unit.UsageHours {
				unit.UsageHours = *in.UsageHours
				if err := tx.Save(&unit).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		created = &record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListByVehicle returns a vehicle's refuelings, oldest first.
func (s *Service) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]models.Refueling, error) {
	var records []models.Refueling
	if err := s.DB.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Order("date ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByUnit returns a refrigeration unit's refuelings, oldest first.
func (s *Service) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]models.Refueling, error) {
	var records []models.Refueling
	if err := s.DB.WithContext(ctx).Where("refrigeration_unit_id = ?", unitID).Order("date ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateRefuelingInput for editable refueling fields.
type UpdateRefuelingInput struct {
	Date       *time.Time `json:"date"`
	Liters     *Decimal   `json:"liters"`
	TotalCost  *Decimal   `json:"total_cost"`
	FuelType   *string    `json:"fuel_type"`
	Km         *float64   `json:"km"`
	UsageHours *float64   `json:"usage_hours"`
}

// Update edits a refueling. Corrected readings advance the asset's current
// odometer or horometer the same way Create does; readings never rewind.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateRefuelingInput) (*models.Refueling, error) {
	var updated *models.Refueling
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.Refueling
		if err := tx.Where("refueling_id = ?", id).First(&record).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrRefuelingNotFound
			}
			return err
		}
		if in.Liters != nil {
			if *in.Liters <= 0 {
				return ErrLitersRequired
			}
			record.Liters = float64(*in.Liters)
		}
		if in.Date != nil {
			record.Date = *in.Date
		}
		if in.TotalCost != nil {
			record.TotalCost = float64(*in.TotalCost)
		}
		if in.FuelType != nil {
			record.FuelType = *in.FuelType
		}
		if in.Km != nil && record.VehicleID != nil {
			record.Km = in.Km
			var vehicle models.Vehicle
			if err := tx.Where("vehicle_id = ?", *record.VehicleID).First(&vehicle).Error; err != nil {
				return err
			}
			if *in.Km > vehicle.Km {
				vehicle.Km = *in.Km
				if err := tx.Save(&vehicle).Error; err != nil {
					return err
				}
			}
		}
		if in.UsageHours != nil && record.RefrigerationUnitID != nil {
			record.UsageHours = in.UsageHours
			var unit models.RefrigerationUnit
			if err := tx.Where("unit_id = ?", *record.RefrigerationUnitID).First(&unit).Error; err != nil {
				return err
			}
			if *in.UsageHours > unit.UsageHours {
				unit.UsageHours = *in.UsageHours
				if err := tx.Save(&unit).Error; err != nil {
					return err
				}
			}
		}
		if err := tx.Save(&record).Error; err != nil {
			return err
		}
		updated = &record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("refueling_id = ?", id).Delete(&models.Refueling{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRefuelingNotFound
	}
	return nil
}
