package suppliers

import (
	"context"
	"strings"

	"frota-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// CreateSupplierInput for supplier registration.
type CreateSupplierInput struct {
	Name       string `json:"name"`
	CNPJ       string `json:"cnpj"`
	City       string `json:"city"`
	State      string `json:"state"`
	FuelVendor bool   `json:"fuel_vendor"`
}

func (s *Service) Create(ctx context.Context, in CreateSupplierInput) (*models.Supplier, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}
	if in.CNPJ != "" {
		var existing models.Supplier
		if err := s.DB.WithContext(ctx).Where("cnpj = ?", in.CNPJ).First(&existing).Error; err == nil {
			return nil, ErrCNPJTaken
		}
	}
	sup := &models.Supplier{
		Name:       strings.TrimSpace(in.Name),
		CNPJ:       in.CNPJ,
		City:       in.City,
		State:      in.State,
		FuelVendor: in.FuelVendor,
	}
	if err := s.DB.WithContext(ctx).Create(sup).Error; err != nil {
		return nil, err
	}
	return sup, nil
}

// List returns suppliers, optionally only fuel vendors.
func (s *Service) List(ctx context.Context, fuelOnly bool) ([]models.Supplier, error) {
	q := s.DB.WithContext(ctx).Order("name ASC")
	if fuelOnly {
		q = q.Where("fuel_vendor = ?", true)
	}
	var suppliers []models.Supplier
	if err := q.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var sup models.Supplier
	if err := s.DB.WithContext(ctx).Where("supplier_id = ?", id).First(&sup).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return &sup, nil
}

// UpdateSupplierInput for partial supplier updates.
type UpdateSupplierInput struct {
	Name       *string `json:"name"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	FuelVendor *bool   `json:"fuel_vendor"`
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateSupplierInput) (*models.Supplier, error) {
	sup, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, ErrNameRequired
		}
		sup.Name = strings.TrimSpace(*in.Name)
	}
	if in.City != nil {
		sup.City = *in.City
	}
	if in.State != nil {
		sup.State = *in.State
	}
	if in.FuelVendor != nil {
		sup.FuelVendor = *in.FuelVendor
	}
	if err := s.DB.WithContext(ctx).Save(sup).Error; err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("supplier_id = ?", id).Delete(&models.Supplier{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
