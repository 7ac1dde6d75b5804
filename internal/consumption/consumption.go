// Package consumption holds the fleet efficiency math: pure functions over
// refueling series fetched ahead of time. Nothing here touches the database.
package consumption

import (
	"sort"

	"frota-backend/internal/models"
)

// Result of a consumption computation over one asset's refueling series.
// Consumption is km per liter for vehicles and liters per hour for
// refrigeration units. Zero means no signal, not free mileage.
type Result struct {
	CurrentReading float64 `json:"current_reading"`
	Consumption    float64 `json:"consumption"`
}

// SortByDate returns a copy of records sorted ascending by date. The sort is
// stable: same-day records keep their input order.
func SortByDate(records []models.Refueling) []models.Refueling {
	out := make([]models.Refueling, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// ForVehicle computes average km per liter from consecutive odometer deltas.
// Records need not be pre-sorted. Pairs with a non-positive km delta, missing
// odometer or non-positive liters contribute nothing and abort nothing.
// Fewer than two usable pairs yields zero consumption.
func ForVehicle(records []models.Refueling, initialKm float64) Result {
	ordered := SortByDate(records)
	if len(ordered) == 0 {
		return Result{CurrentReading: initialKm}
	}

	current := initialKm
	if last := ordered[len(ordered)-1]; last.Km != nil {
		current = *last.Km
	}

	var sum float64
	var pairs int
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if prev.Km == nil || cur.Km == nil {
			continue
		}
		kmDiff := *cur.Km - *prev.Km
		if kmDiff <= 0 || cur.Liters <= 0 {
			continue
		}
		sum += kmDiff / cur.Liters
		pairs++
	}
	if pairs == 0 {
		return Result{CurrentReading: current}
	}
	return Result{CurrentReading: current, Consumption: sum / float64(pairs)}
}

// ForUnit computes average liters per hour from consecutive horometer deltas,
// the same per-pair shape as ForVehicle. Pairs with a non-positive hours
// delta, missing horometer or non-positive liters are skipped.
func ForUnit(records []models.Refueling, initialHours float64) Result {
	ordered := SortByDate(records)
	if len(ordered) == 0 {
		return Result{CurrentReading: initialHours}
	}

	current := initialHours
	if last := ordered[len(ordered)-1]; last.UsageHours != nil {
		current = *last.UsageHours
	}

	var sum float64
	var pairs int
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if prev.UsageHours == nil || cur.UsageHours == nil {
			continue
		}
		hoursDiff := *cur.UsageHours - *prev.UsageHours
		if hoursDiff <= 0 || cur.Liters <= 0 {
			continue
		}
		sum += cur.Liters / hoursDiff
		pairs++
	}
	if pairs == 0 {
		return Result{CurrentReading: current}
	}
	return Result{CurrentReading: current, Consumption: sum / float64(pairs)}
}
