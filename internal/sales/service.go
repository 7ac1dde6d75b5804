package sales

import (
	"context"
	"time"

	"frota-backend/internal/constants"
	"frota-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// SaleInput describes a sale. CascadeUnit applies to vehicle sales only:
// true sells the mounted refrigeration unit along with the vehicle, false
// just unmounts it, status untouched.
type SaleInput struct {
	Buyer         string    `json:"buyer"`
	SaleDate      time.Time `json:"sale_date"`
	Price         float64   `json:"price"`
	ReadingAtSale *float64  `json:"reading_at_sale"`
	Documents     []string  `json:"documents"`
	CascadeUnit   bool      `json:"cascade_unit"`
}

// SellVehicle marks the vehicle sold, snapshotting its status for reversal.
// Any composition is released; the mounted unit is sold or unmounted per
// input.CascadeUnit. The whole sale is one transaction.
func (s *Service) SellVehicle(ctx context.Context, id uuid.UUID, in SaleInput) (*models.Vehicle, error) {
	if in.Buyer == "" {
		return nil, ErrBuyerRequired
	}

	var updated *models.Vehicle
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.Where("vehicle_id = ?", id).First(&vehicle).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrVehicleNotFound
			}
			return err
		}
		if vehicle.Status == constants.StatusSold {
			return ErrAlreadySold
		}

		// A sold tractor is out of operation; its trailers are released.
		if len(vehicle.Composition) > 0 {
			vehicle.Composition = nil
			vehicle.HasComposition = false
		}
		// A sold trailer leaves whichever tractor carries it.
		if vehicle.Category() == constants.CategoryTrailer {
			if err := releaseTrailerPlate(tx, vehicle.Plate); err != nil {
				return err
			}
		}

		var unit models.RefrigerationUnit
		err := tx.Where("vehicle_id = ?", id).First(&unit).Error
		switch err {
		case nil:
			unit.VehicleID = nil
			if in.CascadeUnit {
				unit.SaleInfo = &models.SaleInfo{
					Buyer:          in.Buyer,
					SaleDate:       saleDate(in),
					Price:          0, // included in the vehicle price
					ReadingAtSale:  unit.UsageHours,
					PreviousStatus: unit.Status,
					Documents:      in.Documents,
				}
				unit.Status = constants.StatusSold
			}
			if err := tx.Save(&unit).Error; err != nil {
				return err
			}
		case gorm.ErrRecordNotFound:
			// no mounted unit
		default:
			return err
		}

		reading := vehicle.Km
		if in.ReadingAtSale != nil {
			reading = *in.ReadingAtSale
		}
		vehicle.SaleInfo = &models.SaleInfo{
			Buyer:          in.Buyer,
			SaleDate:       saleDate(in),
			Price:          in.Price,
			ReadingAtSale:  reading,
			PreviousStatus: vehicle.Status,
			Documents:      in.Documents,
		}
		vehicle.Status = constants.StatusSold
		if err := tx.Save(&vehicle).Error; err != nil {
			return err
		}
		updated = &vehicle
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("vehicle_id", id.String()).Str("buyer", in.Buyer).Msg("Vehicle sold")
	return updated, nil
}

// ReverseSaleVehicle restores the pre-sale status and erases the sale
// snapshot entirely. A unit cascade-sold with the vehicle is reversed on its
// own, not here.
func (s *Service) ReverseSaleVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.DB.WithContext(ctx).Where("vehicle_id = ?", id).First(&vehicle).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	if vehicle.Status != constants.StatusSold {
		return nil, ErrNotSold
	}
	if vehicle.SaleInfo == nil || vehicle.SaleInfo.PreviousStatus == "" {
		return nil, ErrNoPreviousStatus
	}

	vehicle.Status = vehicle.SaleInfo.PreviousStatus
	vehicle.SaleInfo = nil
	if err := s.DB.WithContext(ctx).Save(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// SellUnit marks a refrigeration unit sold. A mounted unit cannot be sold
// directly; unlink it first (the vehicle-sale cascade is the one exception,
// handled inside SellVehicle).
func (s *Service) SellUnit(ctx context.Context, id uuid.UUID, in SaleInput) (*models.RefrigerationUnit, error) {
	if in.Buyer == "" {
		return nil, ErrBuyerRequired
	}

	var unit models.RefrigerationUnit
	if err := s.DB.WithContext(ctx).Where("unit_id = ?", id).First(&unit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	if unit.Status == constants.StatusSold {
		return nil, ErrAlreadySold
	}
	if unit.Linked() {
		return nil, ErrUnitLinked
	}

	reading := unit.UsageHours
	if in.ReadingAtSale != nil {
		reading = *in.ReadingAtSale
	}
	unit.SaleInfo = &models.SaleInfo{
		Buyer:          in.Buyer,
		SaleDate:       saleDate(in),
		Price:          in.Price,
		ReadingAtSale:  reading,
		PreviousStatus: unit.Status,
		Documents:      in.Documents,
	}
	unit.Status = constants.StatusSold
	if err := s.DB.WithContext(ctx).Save(&unit).Error; err != nil {
		return nil, err
	}
	log.Info().Str("unit_id", id.String()).Str("buyer", in.Buyer).Msg("Refrigeration unit sold")
	return &unit, nil
}

// ReverseSaleUnit restores the pre-sale status and erases the snapshot.
func (s *Service) ReverseSaleUnit(ctx context.Context, id uuid.UUID) (*models.RefrigerationUnit, error) {
	var unit models.RefrigerationUnit
	if err := s.DB.WithContext(ctx).Where("unit_id = ?", id).First(&unit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	if unit.Status != constants.StatusSold {
		return nil, ErrNotSold
	}
	if unit.SaleInfo == nil || unit.SaleInfo.PreviousStatus == "" {
		return nil, ErrNoPreviousStatus
	}

	unit.Status = unit.SaleInfo.PreviousStatus
	unit.SaleInfo = nil
	if err := s.DB.WithContext(ctx).Save(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// releaseTrailerPlate removes the plate from whichever composed tractor
// holds it. A trailer linked nowhere is a no-op.
func releaseTrailerPlate(tx *gorm.DB, plate string) error {
	var composed []models.Vehicle
	if err := tx.Where("has_composition = ?", true).Find(&composed).Error; err != nil {
		return err
	}
	for i := range composed {
		for j, t := range composed[i].Composition {
			if t.Plate != plate {
				continue
			}
			next := make([]models.CompositionTrailer, 0, len(composed[i].Composition)-1)
			next = append(next, composed[i].Composition[:j]...)
			next = append(next, composed[i].Composition[j+1:]...)
			composed[i].Composition = next
			composed[i].HasComposition = len(next) > 0
			return tx.Save(&composed[i]).Error
		}
	}
	return nil
}

func saleDate(in SaleInput) time.Time {
	if in.SaleDate.IsZero() {
		return time.Now()
	}
	return in.SaleDate
}
