package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefrigerationUnit is a cooling unit, optionally mounted on a vehicle.
// A mounted unit (VehicleID set) may only be active or defective.
type RefrigerationUnit struct {
	UnitID            uuid.UUID      `gorm:"column:unit_id;type:uuid;primaryKey" json:"unit_id"`
	Identifier        string         `gorm:"column:identifier;not null;uniqueIndex" json:"identifier"`
	Brand             string         `gorm:"column:brand" json:"brand"`
	Model             string         `gorm:"column:model" json:"model"`
	Status            string         `gorm:"column:status;not null;default:maintenance" json:"status"`
	VehicleID         *uuid.UUID     `gorm:"column:vehicle_id;type:uuid;index" json:"vehicle_id"`
	InitialUsageHours int            `gorm:"column:initial_usage_hours;not null;default:0" json:"initial_usage_hours"`
	UsageHours        float64        `gorm:"column:usage_hours;not null;default:0" json:"usage_hours"`
	SaleInfo          *SaleInfo      `gorm:"column:sale_info;serializer:json" json:"sale_info,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (RefrigerationUnit) TableName() string {
	return "RefrigerationUnits"
}

func (u *RefrigerationUnit) BeforeCreate(tx *gorm.DB) error {
	if u.UnitID == uuid.Nil {
		u.UnitID = uuid.New()
	}
	return nil
}

// Linked reports whether the unit is mounted on a vehicle.
func (u *RefrigerationUnit) Linked() bool {
	return u.VehicleID != nil
}
