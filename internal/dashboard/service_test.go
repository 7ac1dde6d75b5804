package dashboard

import (
	"context"
	"testing"
	"time"

	"frota-backend/internal/consumption"
	"frota-backend/internal/constants"
	"frota-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDashboardTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Vehicle{}, &models.RefrigerationUnit{}, &models.Refueling{}))
	return &Service{DB: db}
}

func seedVehicle(t *testing.T, svc *Service, plate, vtype, status string) *models.Vehicle {
	v := models.Vehicle{Plate: plate, VehicleType: vtype, Status: status, Axles: 2}
	require.NoError(t, svc.DB.Create(&v).Error)
	return &v
}

func seedRefuelingAt(t *testing.T, svc *Service, v *models.Vehicle, date time.Time, km, liters float64) {
	r := models.Refueling{
		Date:      date,
		Liters:    liters,
		TotalCost: liters * 6,
		VehicleID: &v.VehicleID,
		Km:        &km,
	}
	require.NoError(t, svc.DB.Create(&r).Error)
}

func seedRefueling(t *testing.T, svc *Service, v *models.Vehicle, day int, km, liters float64) {
	seedRefuelingAt(t, svc, v, time.Date(2026, 4, day, 0, 0, 0, 0, time.UTC), km, liters)
}

func TestSummary_Counts(t *testing.T) {
	svc := setupDashboardTest(t)
	seedVehicle(t, svc, "AAA1A11", "Truck", constants.StatusActive)
	seedVehicle(t, svc, "BBB1B11", "Carreta", constants.StatusActive)
	seedVehicle(t, svc, "CCC1C11", "Truck", constants.StatusSold)
	v := seedVehicle(t, svc, "DDD1D11", "Cavalo Mecânico", constants.StatusMaintenance)
	seedRefuelingAt(t, svc, v, time.Now().AddDate(0, -2, 0), 1000, 50)
	seedRefuelingAt(t, svc, v, time.Now(), 1200, 30)

	u := models.RefrigerationUnit{Identifier: "FRIO-01", Status: constants.StatusActive, VehicleID: &v.VehicleID}
	require.NoError(t, svc.DB.Create(&u).Error)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.VehiclesByStatus[constants.StatusActive])
	assert.Equal(t, int64(1), summary.VehiclesByStatus[constants.StatusSold])
	assert.Equal(t, int64(3), summary.VehiclesByCategory[constants.CategoryTraction])
	assert.Equal(t, int64(1), summary.VehiclesByCategory[constants.CategoryTrailer])
	assert.Equal(t, int64(1), summary.MountedUnits)
	assert.Equal(t, int64(2), summary.TotalRefuelings)
	assert.Equal(t, 80.0, summary.TotalLiters)
	assert.Equal(t, 480.0, summary.TotalFuelCost)
	assert.Equal(t, int64(1), summary.MonthRefuelings)
	assert.Equal(t, 30.0, summary.MonthLiters)
	assert.Equal(t, 180.0, summary.MonthFuelCost)
}

func TestRankVehicles_BestAndWorst(t *testing.T) {
	svc := setupDashboardTest(t)
	efficient := seedVehicle(t, svc, "AAA1A11", "Truck", constants.StatusActive)
	thirsty := seedVehicle(t, svc, "BBB1B11", "Truck", constants.StatusActive)
	sold := seedVehicle(t, svc, "CCC1C11", "Truck", constants.StatusSold)
	seedVehicle(t, svc, "DDD1D11", "Truck", constants.StatusActive) // no refuelings

	// 4 km/l
	seedRefueling(t, svc, efficient, 1, 1000, 50)
	seedRefueling(t, svc, efficient, 2, 1200, 50)
	// 2 km/l
	seedRefueling(t, svc, thirsty, 1, 1000, 50)
	seedRefueling(t, svc, thirsty, 2, 1100, 50)
	// sold vehicles never rank
	seedRefueling(t, svc, sold, 1, 1000, 10)
	seedRefueling(t, svc, sold, 2, 1500, 10)

	best, err := svc.RankVehicles(context.Background(), consumption.Best, 5)
	require.NoError(t, err)
	require.Len(t, best, 2)
	assert.Equal(t, "AAA1A11", best[0].Plate)
	assert.Equal(t, 4.0, best[0].Consumption)

	worst, err := svc.RankVehicles(context.Background(), consumption.Worst, 1)
	require.NoError(t, err)
	require.Len(t, worst, 1)
	assert.Equal(t, "BBB1B11", worst[0].Plate)

	_, err = svc.RankVehicles(context.Background(), "median", 5)
	assert.Equal(t, ErrInvalidDirection, err)
}

func TestRankUnits_LowestIsBest(t *testing.T) {
	svc := setupDashboardTest(t)
	frugal := models.RefrigerationUnit{Identifier: "FRIO-01", Status: constants.StatusActive}
	hungry := models.RefrigerationUnit{Identifier: "FRIO-02", Status: constants.StatusActive}
	require.NoError(t, svc.DB.Create(&frugal).Error)
	require.NoError(t, svc.DB.Create(&hungry).Error)

	addUnitRefueling := func(u *models.RefrigerationUnit, day int, hours, liters float64) {
		r := models.Refueling{
			Date:                time.Date(2026, 4, day, 0, 0, 0, 0, time.UTC),
			Liters:              liters,
			RefrigerationUnitID: &u.UnitID,
			UsageHours:          &hours,
		}
		require.NoError(t, svc.DB.Create(&r).Error)
	}
	// 1 l/h
	addUnitRefueling(&frugal, 1, 100, 10)
	addUnitRefueling(&frugal, 2, 110, 10)
	// 3 l/h
	addUnitRefueling(&hungry, 1, 100, 30)
	addUnitRefueling(&hungry, 2, 110, 30)

	best, err := svc.RankUnits(context.Background(), consumption.Best, 5)
	require.NoError(t, err)
	require.Len(t, best, 2)
	assert.Equal(t, "FRIO-01", best[0].Identifier)
	assert.Equal(t, 1.0, best[0].Consumption)
	assert.Equal(t, "FRIO-02", best[1].Identifier)
}
