package models

import (
	"time"

	"frota-backend/internal/constants"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CompositionTrailer is one linked trailer inside a tractor's composition.
// Storing plate and axles together keeps the pair aligned by construction.
type CompositionTrailer struct {
	Plate string `json:"plate"`
	Axles int    `json:"axles"`
}

// Vehicle is a fleet vehicle, traction or trailer depending on its type.
type Vehicle struct {
	VehicleID      uuid.UUID                               `gorm:"column:vehicle_id;type:uuid;primaryKey" json:"vehicle_id"`
	Plate          string                                  `gorm:"column:plate;not null;uniqueIndex" json:"plate"`
	Brand          string                                  `gorm:"column:brand" json:"brand"`
	Model          string                                  `gorm:"column:model" json:"model"`
	Year           int                                     `gorm:"column:year" json:"year"`
	VehicleType    string                                  `gorm:"column:vehicle_type;not null" json:"vehicle_type"`
	Status         string                                  `gorm:"column:status;not null;default:active" json:"status"`
	Axles          int                                     `gorm:"column:axles;not null;default:2" json:"axles"`
	Km             float64                                 `gorm:"column:km;not null;default:0" json:"km"`
	HasComposition bool                                    `gorm:"column:has_composition;not null;default:false" json:"has_composition"`
	Composition    datatypes.JSONSlice[CompositionTrailer] `gorm:"column:composition" json:"composition"`
	SaleInfo       *SaleInfo                               `gorm:"column:sale_info;serializer:json" json:"sale_info,omitempty"`
	CompanyID      *uuid.UUID                              `gorm:"column:company_id;type:uuid" json:"company_id"`
	CreatedAt      time.Time                               `json:"createdAt"`
	UpdatedAt      time.Time                               `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt                          `gorm:"index" json:"-"`
}

func (Vehicle) TableName() string {
	return "Vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.VehicleID == uuid.Nil {
		v.VehicleID = uuid.New()
	}
	return nil
}

// Category derives traction/trailer from the vehicle type; it is never stored.
func (v *Vehicle) Category() string {
	return constants.VehicleCategory(v.VehicleType)
}

// CompositionPlates returns the linked trailer plates in link order.
func (v *Vehicle) CompositionPlates() []string {
	plates := make([]string, 0, len(v.Composition))
	for _, t := range v.Composition {
		plates = append(plates, t.Plate)
	}
	return plates
}

// CompositionAxles returns the linked trailer axle counts in link order.
func (v *Vehicle) CompositionAxles() []int {
	axles := make([]int, 0, len(v.Composition))
	for _, t := range v.Composition {
		axles = append(axles, t.Axles)
	}
	return axles
}

// TotalAxles is the tractor's own axles plus every composed trailer's.
// Derived on read, never stored.
func (v *Vehicle) TotalAxles() int {
	total := v.Axles
	for _, t := range v.Composition {
		total += t.Axles
	}
	return total
}
