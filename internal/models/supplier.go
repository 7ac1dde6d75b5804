package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier is a fuel or parts supplier referenced by refuelings.
type Supplier struct {
	SupplierID uuid.UUID      `gorm:"column:supplier_id;type:uuid;primaryKey" json:"supplier_id"`
	Name       string         `gorm:"column:name;not null" json:"name"`
	CNPJ       string         `gorm:"column:cnpj;uniqueIndex" json:"cnpj"`
	City       string         `gorm:"column:city" json:"city"`
	State      string         `gorm:"column:state" json:"state"`
	FuelVendor bool           `gorm:"column:fuel_vendor;not null;default:false" json:"fuel_vendor"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Supplier) TableName() string {
	return "Suppliers"
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.SupplierID == uuid.Nil {
		s.SupplierID = uuid.New()
	}
	return nil
}
