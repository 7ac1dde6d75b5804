package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Refueling is one refueling event. It belongs to exactly one asset:
// VehicleID xor RefrigerationUnitID. Km is the vehicle odometer at the pump;
// UsageHours the unit horometer. Both are cumulative readings, not deltas.
type Refueling struct {
	RefuelingID         uuid.UUID      `gorm:"column:refueling_id;type:uuid;primaryKey" json:"refueling_id"`
	Date                time.Time      `gorm:"column:date;not null;index" json:"date"`
	Liters              float64        `gorm:"column:liters;not null" json:"liters"`
	TotalCost           float64        `gorm:"column:total_cost;not null;default:0" json:"total_cost"`
	FuelType            string         `gorm:"column:fuel_type" json:"fuel_type"`
	VehicleID           *uuid.UUID     `gorm:"column:vehicle_id;type:uuid;index" json:"vehicle_id"`
	RefrigerationUnitID *uuid.UUID     `gorm:"column:refrigeration_unit_id;type:uuid;index" json:"refrigeration_unit_id"`
	Km                  *float64       `gorm:"column:km" json:"km"`
	UsageHours          *float64       `gorm:"column:usage_hours" json:"usage_hours"`
	SupplierID          *uuid.UUID     `gorm:"column:supplier_id;type:uuid" json:"supplier_id"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Refueling) TableName() string {
	return "Refuelings"
}

func (r *Refueling) BeforeCreate(tx *gorm.DB) error {
	if r.RefuelingID == uuid.Nil {
		r.RefuelingID = uuid.New()
	}
	return nil
}
