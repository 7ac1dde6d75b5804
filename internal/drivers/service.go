package drivers

import (
	"context"
	"strings"
	"time"

	"frota-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

var validStatuses = map[string]bool{"active": true, "inactive": true}

// CreateDriverInput for driver registration.
type CreateDriverInput struct {
	Name        string     `json:"name"`
	CNHNumber   string     `json:"cnh_number"`
	CNHCategory string     `json:"cnh_category"`
	CNHExpiry   *time.Time `json:"cnh_expiry"`
	Phone       string     `json:"phone"`
	CompanyID   *uuid.UUID `json:"company_id"`
}

func (s *Service) Create(ctx context.Context, in CreateDriverInput) (*models.Driver, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}
	if in.CNHNumber != "" {
		var existing models.Driver
		if err := s.DB.WithContext(ctx).Where("cnh_number = ?", in.CNHNumber).First(&existing).Error; err == nil {
			return nil, ErrCNHTaken
		}
	}
	d := &models.Driver{
		Name:        strings.TrimSpace(in.Name),
		CNHNumber:   in.CNHNumber,
		CNHCategory: in.CNHCategory,
		CNHExpiry:   in.CNHExpiry,
		Phone:       in.Phone,
		Status:      "active",
		CompanyID:   in.CompanyID,
	}
	if err := s.DB.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	var d models.Driver
	if err := s.DB.WithContext(ctx).Where("driver_id = ?", id).First(&d).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return &d, nil
}

// UpdateDriverInput for partial driver updates.
type UpdateDriverInput struct {
	Name        *string    `json:"name"`
	CNHCategory *string    `json:"cnh_category"`
	CNHExpiry   *time.Time `json:"cnh_expiry"`
	Phone       *string    `json:"phone"`
	Status      *string    `json:"status"`
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateDriverInput) (*models.Driver, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, ErrNameRequired
		}
		d.Name = strings.TrimSpace(*in.Name)
	}
	if in.CNHCategory != nil {
		d.CNHCategory = *in.CNHCategory
	}
	if in.CNHExpiry != nil {
		d.CNHExpiry = in.CNHExpiry
	}
	if in.Phone != nil {
		d.Phone = *in.Phone
	}
	if in.Status != nil {
		if !validStatuses[*in.Status] {
			return nil, ErrInvalidStatus
		}
		d.Status = *in.Status
	}
	if err := s.DB.WithContext(ctx).Save(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("driver_id = ?", id).Delete(&models.Driver{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDriverNotFound
	}
	return nil
}
