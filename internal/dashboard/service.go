package dashboard

import (
	"context"
	"time"

	"frota-backend/internal/consumption"
	"frota-backend/internal/constants"
	"frota-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// Summary is the back-office landing page payload.
type Summary struct {
	VehiclesByStatus   map[string]int64 `json:"vehicles_by_status"`
	VehiclesByCategory map[string]int64 `json:"vehicles_by_category"`
	UnitsByStatus      map[string]int64 `json:"units_by_status"`
	MountedUnits       int64            `json:"mounted_units"`
	TotalRefuelings    int64            `json:"total_refuelings"`
	TotalLiters        float64          `json:"total_liters"`
	TotalFuelCost      float64          `json:"total_fuel_cost"`
	MonthRefuelings    int64            `json:"month_refuelings"`
	MonthLiters        float64          `json:"month_liters"`
	MonthFuelCost      float64          `json:"month_fuel_cost"`
}

// Summary aggregates fleet counts and fuel totals.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	out := &Summary{
		VehiclesByStatus:   map[string]int64{},
		VehiclesByCategory: map[string]int64{},
		UnitsByStatus:      map[string]int64{},
	}

	var vehicles []models.Vehicle
	if err := s.DB.WithContext(ctx).Find(&vehicles).Error; err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		out.VehiclesByStatus[v.Status]++
		if cat := v.Category(); cat != "" {
			out.VehiclesByCategory[cat]++
		}
	}

	var units []models.RefrigerationUnit
	if err := s.DB.WithContext(ctx).Find(&units).Error; err != nil {
		return nil, err
	}
	for _, u := range units {
		out.UnitsByStatus[u.Status]++
		if u.Linked() {
			out.MountedUnits++
		}
	}

	type fuelTotals struct {
		Count  int64
		Liters float64
		Cost   float64
	}
	var totals fuelTotals
	err := s.DB.WithContext(ctx).Model(&models.Refueling{}).
		Select("COUNT(*) AS count, COALESCE(SUM(liters), 0) AS liters, COALESCE(SUM(total_cost), 0) AS cost").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	out.TotalRefuelings = totals.Count
	out.TotalLiters = totals.Liters
	out.TotalFuelCost = totals.Cost

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var month fuelTotals
	err = s.DB.WithContext(ctx).Model(&models.Refueling{}).
		Where("date >= ?", monthStart).
		Select("COUNT(*) AS count, COALESCE(SUM(liters), 0) AS liters, COALESCE(SUM(total_cost), 0) AS cost").
		Scan(&month).Error
	if err != nil {
		return nil, err
	}
	out.MonthRefuelings = month.Count
	out.MonthLiters = month.Liters
	out.MonthFuelCost = month.Cost

	return out, nil
}

// RankVehicles computes the fleet-wide vehicle consumption ranking. Sold
// vehicles are excluded; dir picks best (highest km/l) or worst.
func (s *Service) RankVehicles(ctx context.Context, dir consumption.Direction, topN int) ([]consumption.RankedVehicle, error) {
	if !dir.Valid() {
		return nil, ErrInvalidDirection
	}
	var vehicles []models.Vehicle
	if err := s.DB.WithContext(ctx).Where("status <> ?", constants.StatusSold).Order("created_at ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	records, err := s.vehicleRecords(ctx)
	if err != nil {
		return nil, err
	}
	return consumption.RankVehicles(vehicles, records, dir, topN), nil
}

// RankUnits computes the refrigeration unit ranking. Units burn fuel per
// hour, so best means lowest l/h.
func (s *Service) RankUnits(ctx context.Context, dir consumption.Direction, topN int) ([]consumption.RankedUnit, error) {
	if !dir.Valid() {
		return nil, ErrInvalidDirection
	}
	var units []models.RefrigerationUnit
	if err := s.DB.WithContext(ctx).Where("status <> ?", constants.StatusSold).Order("created_at ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	records, err := s.unitRecords(ctx)
	if err != nil {
		return nil, err
	}
	return consumption.RankUnits(units, records, dir, topN), nil
}

func (s *Service) vehicleRecords(ctx context.Context) (map[uuid.UUID][]models.Refueling, error) {
	var all []models.Refueling
	if err := s.DB.WithContext(ctx).Where("vehicle_id IS NOT NULL").Order("date ASC").Find(&all).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID][]models.Refueling)
	for _, r := range all {
		byID[*r.VehicleID] = append(byID[*r.VehicleID], r)
	}
	return byID, nil
}

func (s *Service) unitRecords(ctx context.Context) (map[uuid.UUID][]models.Refueling, error) {
	var all []models.Refueling
	if err := s.DB.WithContext(ctx).Where("refrigeration_unit_id IS NOT NULL").Order("date ASC").Find(&all).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID][]models.Refueling)
	for _, r := range all {
		byID[*r.RefrigerationUnitID] = append(byID[*r.RefrigerationUnitID], r)
	}
	return byID, nil
}
