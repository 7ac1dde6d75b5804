package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company owns part of the fleet; users and vehicles reference it.
type Company struct {
	CompanyID uuid.UUID      `gorm:"column:company_id;type:uuid;primaryKey" json:"company_id"`
	Name      string         `gorm:"column:name;not null" json:"name"`
	CNPJ      string         `gorm:"column:cnpj;uniqueIndex" json:"cnpj"`
	City      string         `gorm:"column:city" json:"city"`
	State     string         `gorm:"column:state" json:"state"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Company) TableName() string {
	return "Companies"
}

func (co *Company) BeforeCreate(tx *gorm.DB) error {
	if co.CompanyID == uuid.Nil {
		co.CompanyID = uuid.New()
	}
	return nil
}
