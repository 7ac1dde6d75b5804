package consumption

import (
	"sort"

	"frota-backend/internal/models"

	"github.com/google/uuid"
)

// Direction selects ranking order.
type Direction string

const (
	Best  Direction = "best"
	Worst Direction = "worst"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Best || d == Worst
}

// RankedVehicle is one vehicle ranking entry (km per liter).
type RankedVehicle struct {
	VehicleID   uuid.UUID `json:"vehicle_id"`
	Plate       string    `json:"plate"`
	Consumption float64   `json:"consumption"`
	CurrentKm   float64   `json:"current_km"`
}

// RankedUnit is one refrigeration unit ranking entry (liters per hour).
type RankedUnit struct {
	UnitID       uuid.UUID `json:"unit_id"`
	Identifier   string    `json:"identifier"`
	Consumption  float64   `json:"consumption"`
	CurrentHours float64   `json:"current_hours"`
}

// RankVehicles ranks vehicles by km/l. Best means highest km/l first.
// Vehicles with zero consumption (no signal) are dropped; ties keep input
// order; the result is truncated to topN (topN <= 0 returns all).
func RankVehicles(vehicles []models.Vehicle, recordsByID map[uuid.UUID][]models.Refueling, dir Direction, topN int) []RankedVehicle {
	out := make([]RankedVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		res := ForVehicle(recordsByID[v.VehicleID], v.Km)
		if res.Consumption == 0 {
			continue
		}
		out = append(out, RankedVehicle{
			VehicleID:   v.VehicleID,
			Plate:       v.Plate,
			Consumption: res.Consumption,
			CurrentKm:   res.CurrentReading,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Worst {
			return out[i].Consumption < out[j].Consumption
		}
		return out[i].Consumption > out[j].Consumption
	})
	return truncateVehicles(out, topN)
}

// RankUnits ranks refrigeration units by l/h. Polarity is inverted relative
// to vehicles: best means LOWEST liters per hour first.
func RankUnits(units []models.RefrigerationUnit, recordsByID map[uuid.UUID][]models.Refueling, dir Direction, topN int) []RankedUnit {
	out := make([]RankedUnit, 0, len(units))
	for _, u := range units {
		res := ForUnit(recordsByID[u.UnitID], float64(u.InitialUsageHours))
		if res.Consumption == 0 {
			continue
		}
		out = append(out, RankedUnit{
			UnitID:       u.UnitID,
			Identifier:   u.Identifier,
			Consumption:  res.Consumption,
			CurrentHours: res.CurrentReading,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Worst {
			return out[i].Consumption > out[j].Consumption
		}
		return out[i].Consumption < out[j].Consumption
	})
	return truncateUnits(out, topN)
}

func truncateVehicles(in []RankedVehicle, topN int) []RankedVehicle {
	if topN > 0 && len(in) > topN {
		return in[:topN]
	}
	return in
}

func truncateUnits(in []RankedUnit, topN int) []RankedUnit {
	if topN > 0 && len(in) > topN {
		return in[:topN]
	}
	return in
}
