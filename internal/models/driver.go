package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Driver is a registered fleet driver.
type Driver struct {
	DriverID    uuid.UUID      `gorm:"column:driver_id;type:uuid;primaryKey" json:"driver_id"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	CNHNumber   string         `gorm:"column:cnh_number;uniqueIndex" json:"cnh_number"`
	CNHCategory string         `gorm:"column:cnh_category" json:"cnh_category"`
	CNHExpiry   *time.Time     `gorm:"column:cnh_expiry" json:"cnh_expiry"`
	Phone       string         `gorm:"column:phone" json:"phone"`
	Status      string         `gorm:"column:status;not null;default:active" json:"status"`
	CompanyID   *uuid.UUID     `gorm:"column:company_id;type:uuid" json:"company_id"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Driver) TableName() string {
	return "Drivers"
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.DriverID == uuid.Nil {
		d.DriverID = uuid.New()
	}
	return nil
}
