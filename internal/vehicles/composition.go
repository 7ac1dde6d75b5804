package vehicles

import (
	"context"

	"frota-backend/internal/constants"
	"frota-backend/internal/models"
	"frota-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CompositionView is the derived read of a tractor and its linked trailers.
type CompositionView struct {
	VehicleID  uuid.UUID                   `json:"vehicle_id"`
	Plate      string                      `json:"plate"`
	Trailers   []models.CompositionTrailer `json:"trailers"`
	Plates     []string                    `json:"composition_plates"`
	Axles      []int                       `json:"composition_axles"`
	TotalAxles int                         `json:"total_axles"`
}

// LinkTrailer appends a trailer to a tractor's composition. The trailer must
// be an active trailer-category vehicle not linked anywhere in the fleet.
// Rejections leave both vehicles untouched.
func (s *Service) LinkTrailer(ctx context.Context, tractionID, trailerID uuid.UUID) (*models.Vehicle, error) {
	if tractionID == trailerID {
		return nil, ErrSelfLink
	}

	var updated *models.Vehicle
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		traction, err := findVehicle(tx, tractionID)
		if err != nil {
			return err
		}
		if traction.Category() != constants.CategoryTraction {
			return ErrNotTraction
		}
		if traction.Status == constants.StatusSold {
			return ErrVehicleSold
		}

		trailer, err := findVehicle(tx, trailerID)
		if err != nil {
			return err
		}
		if trailer.Category() != constants.CategoryTrailer {
			return ErrNotTrailer
		}
		if trailer.Status != constants.StatusActive {
			return ErrTrailerNotActive
		}

		// Exclusivity: one composition per trailer, fleet-wide.
		linked, err := plateLinkedAnywhere(tx, trailer.Plate)
		if err != nil {
			return err
		}
		if linked {
			return ErrTrailerAlreadyLinked
		}

		traction.Composition = append(traction.Composition, models.CompositionTrailer{
			Plate: trailer.Plate,
			Axles: trailer.Axles,
		})
		traction.HasComposition = true
		if err := tx.Save(traction).Error; err != nil {
			return err
		}
		updated = traction
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("traction_id", tractionID.String()).Str("trailer_id", trailerID.String()).Msg("Trailer linked")
	return updated, nil
}

// UnlinkTrailer removes the trailer with the given plate from the tractor's
// composition; an emptied composition drops the has_composition flag.
func (s *Service) UnlinkTrailer(ctx context.Context, tractionID uuid.UUID, plate string) (*models.Vehicle, error) {
	plate = validation.NormalizePlate(plate)

	var updated *models.Vehicle
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		traction, err := findVehicle(tx, tractionID)
		if err != nil {
			return err
		}
		next, removed := removeFromComposition(traction.Composition, plate)
		if !removed {
			return ErrTrailerNotLinked
		}
		traction.Composition = next
		traction.HasComposition = len(next) > 0
		if err := tx.Save(traction).Error; err != nil {
			return err
		}
		updated = traction
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus changes a vehicle's status and applies the cascade rules:
// a tractor leaving operation (maintenance/inactive) releases its whole
// composition; a linked trailer leaving operation leaves its tractor's
// composition. Sold is reserved for the sale flow.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Vehicle, error) {
	if !constants.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if status == constants.StatusSold {
		return nil, ErrStatusViaSale
	}

	var updated *models.Vehicle
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vehicle, err := findVehicle(tx, id)
		if err != nil {
			return err
		}
		if vehicle.Status == constants.StatusSold {
			return ErrVehicleSold
		}

		if constants.NonOperational(status) {
			switch vehicle.Category() {
			case constants.CategoryTraction:
				if len(vehicle.Composition) > 0 {
					vehicle.Composition = nil
					vehicle.HasComposition = false
					log.Info().Str("vehicle_id", id.String()).Str("status", status).Msg("Composition cleared by status change")
				}
			case constants.CategoryTrailer:
				if err := detachTrailerFromTractor(tx, vehicle.Plate); err != nil {
					return err
				}
			}
		}

		vehicle.Status = status
		if err := tx.Save(vehicle).Error; err != nil {
			return err
		}
		updated = vehicle
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Composition returns the derived composition view for a tractor.
func (s *Service) Composition(ctx context.Context, id uuid.UUID) (*CompositionView, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.Category() != constants.CategoryTraction {
		return nil, ErrNotTraction
	}
	return &CompositionView{
		VehicleID:  vehicle.VehicleID,
		Plate:      vehicle.Plate,
		Trailers:   vehicle.Composition,
		Plates:     vehicle.CompositionPlates(),
		Axles:      vehicle.CompositionAxles(),
		TotalAxles: vehicle.TotalAxles(),
	}, nil
}

func findVehicle(tx *gorm.DB, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := tx.Where("vehicle_id = ?", id).First(&vehicle).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// plateLinkedAnywhere scans every composed tractor for the plate. The
// composition column is JSON, so membership is checked in memory.
func plateLinkedAnywhere(tx *gorm.DB, plate string) (bool, error) {
	var composed []models.Vehicle
	if err := tx.Where("has_composition = ?", true).Find(&composed).Error; err != nil {
		return false, err
	}
	for _, v := range composed {
		for _, t := range v.Composition {
			if t.Plate == plate {
				return true, nil
			}
		}
	}
	return false, nil
}

// detachTrailerFromTractor removes the plate from whichever tractor holds it.
// A trailer linked nowhere is a no-op.
func detachTrailerFromTractor(tx *gorm.DB, plate string) error {
	var composed []models.Vehicle
	if err := tx.Where("has_composition = ?", true).Find(&composed).Error; err != nil {
		return err
	}
	for i := range composed {
		next, removed := removeFromComposition(composed[i].Composition, plate)
		if !removed {
			continue
		}
		composed[i].Composition = next
		composed[i].HasComposition = len(next) > 0
		return tx.Save(&composed[i]).Error
	}
	return nil
}

// removeFromComposition drops the first pair matching plate, preserving the
// order of the remaining pairs.
func removeFromComposition(comp []models.CompositionTrailer, plate string) ([]models.CompositionTrailer, bool) {
	for i, t := range comp {
		if t.Plate == plate {
			next := make([]models.CompositionTrailer, 0, len(comp)-1)
			next = append(next, comp[:i]...)
			next = append(next, comp[i+1:]...)
			return next, true
		}
	}
	return comp, false
}
