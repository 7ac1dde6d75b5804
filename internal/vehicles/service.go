package vehicles

import (
	"context"

	"frota-backend/internal/constants"
	"frota-backend/internal/consumption"
	"frota-backend/internal/models"
	"frota-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// CreateVehicleInput for vehicle registration. The type fixes the category
// (traction or trailer) for the vehicle's whole life.
type CreateVehicleInput struct {
	Plate       string     `json:"plate"`
	Brand       string     `json:"brand"`
	Model       string     `json:"model"`
	Year        int        `json:"year"`
	VehicleType string     `json:"vehicle_type"`
	Axles       int        `json:"axles"`
	Km          float64    `json:"km"`
	CompanyID   *uuid.UUID `json:"company_id"`
}

// UpdateVehicleInput for editable attributes. VehicleType is accepted only
// when it matches the stored one; the category is immutable after creation.
type UpdateVehicleInput struct {
	Brand       *string  `json:"brand"`
	Model       *string  `json:"model"`
	Year        *int     `json:"year"`
	VehicleType *string  `json:"vehicle_type"`
	Km          *float64 `json:"km"`
}

func (s *Service) Create(ctx context.Context, in CreateVehicleInput) (*models.Vehicle, error) {
	if !validation.IsValidPlate(in.Plate) {
		return nil, ErrPlateRequired
	}
	if constants.VehicleCategory(in.VehicleType) == "" {
		return nil, ErrInvalidVehicleType
	}
	if in.Axles < 1 {
		return nil, ErrInvalidAxles
	}

	plate := validation.NormalizePlate(in.Plate)
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Vehicle{}).Where("plate = ?", plate).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrPlateTaken
	}

	vehicle := models.Vehicle{
		Plate:       plate,
		Brand:       in.Brand,
		Model:       in.Model,
		Year:        in.Year,
		VehicleType: in.VehicleType,
		Status:      constants.StatusActive,
		Axles:       in.Axles,
		Km:          in.Km,
		CompanyID:   in.CompanyID,
	}
	if err := s.DB.WithContext(ctx).Create(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// List returns vehicles, optionally filtered by status and/or category.
// Category is derived from the type, so that filter runs in memory.
func (s *Service) List(ctx context.Context, status, category string) ([]models.Vehicle, error) {
	q := s.DB.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var all []models.Vehicle
	if err := q.Find(&all).Error; err != nil {
		return nil, err
	}
	if category == "" {
		return all, nil
	}
	filtered := make([]models.Vehicle, 0, len(all))
	for _, v := range all {
		if v.Category() == category {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.DB.WithContext(ctx).Where("vehicle_id = ?", id).First(&vehicle).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateVehicleInput) (*models.Vehicle, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.VehicleType != nil && *in.VehicleType != vehicle.VehicleType {
		return nil, ErrTypeImmutable
	}
	if in.Brand != nil {
		vehicle.Brand = *in.Brand
	}
	if in.Model != nil {
		vehicle.Model = *in.Model
	}
	if in.Year != nil {
		vehicle.Year = *in.Year
	}
	if in.Km != nil {
		vehicle.Km = *in.Km
	}
	if err := s.DB.WithContext(ctx).Save(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Stats computes the vehicle's km-per-liter average over its refuelings.
func (s *Service) Stats(ctx context.Context, id uuid.UUID) (*consumption.Result, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var records []models.Refueling
	if err := s.DB.WithContext(ctx).Where("vehicle_id = ?", id).Find(&records).Error; err != nil {
		return nil, err
	}
	res := consumption.ForVehicle(records, vehicle.Km)
	return &res, nil
}
