package consumption

import (
	"testing"

	"frota-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFleet() ([]models.Vehicle, map[uuid.UUID][]models.Refueling) {
	economical := models.Vehicle{VehicleID: uuid.New(), Plate: "ABC1D23"}
	thirsty := models.Vehicle{VehicleID: uuid.New(), Plate: "DEF4G56"}
	silent := models.Vehicle{VehicleID: uuid.New(), Plate: "HIJ7K89"} // no refuelings

	records := map[uuid.UUID][]models.Refueling{
		// 400 km on 40 L → 10 km/l
		economical.VehicleID: {kmRecord(1, 1000, 50), kmRecord(2, 1400, 40)},
		// 200 km on 100 L → 2 km/l
		thirsty.VehicleID: {kmRecord(1, 1000, 50), kmRecord(2, 1200, 100)},
	}
	return []models.Vehicle{economical, thirsty, silent}, records
}

// Best = highest km/l first; zero-consumption vehicles are dropped.
func TestRankVehicles_Best(t *testing.T) {
	vehicles, records := rankedFleet()
	ranked := RankVehicles(vehicles, records, Best, 10)
	require.Len(t, ranked, 2)
	assert.Equal(t, "ABC1D23", ranked[0].Plate)
	assert.InDelta(t, 10.0, ranked[0].Consumption, 1e-9)
	assert.Equal(t, "DEF4G56", ranked[1].Plate)
}

func TestRankVehicles_Worst(t *testing.T) {
	vehicles, records := rankedFleet()
	ranked := RankVehicles(vehicles, records, Worst, 10)
	require.Len(t, ranked, 2)
	assert.Equal(t, "DEF4G56", ranked[0].Plate)
}

func TestRankVehicles_TruncatesTopN(t *testing.T) {
	vehicles, records := rankedFleet()
	ranked := RankVehicles(vehicles, records, Best, 1)
	require.Len(t, ranked, 1)
	assert.Equal(t, "ABC1D23", ranked[0].Plate)
}

// Records keyed by an id no vehicle has are simply ignored.
func TestRankVehicles_IgnoresUnknownAssetRecords(t *testing.T) {
	vehicles, records := rankedFleet()
	records[uuid.New()] = []models.Refueling{kmRecord(1, 0, 10), kmRecord(2, 100, 10)}
	ranked := RankVehicles(vehicles, records, Best, 10)
	assert.Len(t, ranked, 2)
}

// Ties keep input order (stable sort, no documented tie-break).
func TestRankVehicles_StableOnTies(t *testing.T) {
	first := models.Vehicle{VehicleID: uuid.New(), Plate: "AAA1A11"}
	second := models.Vehicle{VehicleID: uuid.New(), Plate: "BBB2B22"}
	records := map[uuid.UUID][]models.Refueling{
		first.VehicleID:  {kmRecord(1, 0, 10), kmRecord(2, 400, 80)},
		second.VehicleID: {kmRecord(1, 0, 10), kmRecord(2, 200, 40)},
	}
	ranked := RankVehicles([]models.Vehicle{first, second}, records, Best, 10)
	require.Len(t, ranked, 2)
	assert.Equal(t, "AAA1A11", ranked[0].Plate)
	assert.Equal(t, "BBB2B22", ranked[1].Plate)
}

// Unit polarity is inverted: best = lowest liters per hour.
func TestRankUnits_BestIsLowestBurn(t *testing.T) {
	frugal := models.RefrigerationUnit{UnitID: uuid.New(), Identifier: "FRIO-01"}
	heavy := models.RefrigerationUnit{UnitID: uuid.New(), Identifier: "FRIO-02"}
	records := map[uuid.UUID][]models.Refueling{
		// 20 L over 10 h → 2 l/h
		frugal.UnitID: {hoursRecord(1, 100, 10), hoursRecord(2, 110, 20)},
		// 50 L over 10 h → 5 l/h
		heavy.UnitID: {hoursRecord(1, 100, 10), hoursRecord(2, 110, 50)},
	}
	units := []models.RefrigerationUnit{heavy, frugal}

	best := RankUnits(units, records, Best, 10)
	require.Len(t, best, 2)
	assert.Equal(t, "FRIO-01", best[0].Identifier)

	worst := RankUnits(units, records, Worst, 10)
	require.Len(t, worst, 2)
	assert.Equal(t, "FRIO-02", worst[0].Identifier)
}

func TestDirection_Valid(t *testing.T) {
	assert.True(t, Best.Valid())
	assert.True(t, Worst.Valid())
	assert.False(t, Direction("median").Valid())
}
