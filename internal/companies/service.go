package companies

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

// CreateCompanyInput for company registration.
type CreateCompanyInput struct {
	Name  string `json:"name"`
	CNPJ  string `json:"cnpj"`
	City  string `json:"city"`
	State string `json:"state"`
}

func (s *Service) Create(ctx context.Context, in CreateCompanyInput) (*models.Company, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}
	if in.CNPJ != "" {
		var existing models.Company
		if err := s.DB.WithContext(ctx).Where("cnpj = ?", in.CNPJ).First(&existing).Error; err == nil {
			return nil, ErrCNPJTaken
		}
	}
	co := &models.Company{
		Name:  strings.TrimSpace(in.Name),
		CNPJ:  in.CNPJ,
		City:  in.City,
		State: in.State,
	}
	if err := s.DB.WithContext(ctx).Create(co).Error; err != nil {
		return nil, err
	}
	return co, nil
}

func (s *Service) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var co models.Company
	if err := s.DB.WithContext(ctx).Where("company_id = ?", id).First(&co).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &co, nil
}

// UpdateCompanyInput for partial company updates.
type UpdateCompanyInput struct {
	Name  *string `json:"name"`
	City  *string `json:"city"`
	State *string `json:"state"`
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateCompanyInput) (*models.Company, error) {
	co, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, ErrNameRequired
		}
		co.Name = strings.TrimSpace(*in.Name)
	}
	if in.City != nil {
		co.City = *in.City
	}
	if in.State != nil {
		co.State = *in.State
	}
	if err := s.DB.WithContext(ctx).Save(co).Error; err != nil {
		return nil, err
	}
	return co, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("company_id = ?", id).Delete(&models.Company{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
