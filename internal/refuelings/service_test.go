package refuelings

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"frota-backend/internal/constants"
	"frota-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRefuelingsTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Vehicle{}, &models.RefrigerationUnit{}, &models.Refueling{}))
	return &Service{DB: db}
}

func seedVehicle(t *testing.T, svc *Service, km float64) *models.Vehicle {
	v := models.Vehicle{Plate: "ABC1D23", VehicleType: "Truck", Status: constants.StatusActive, Axles: 2, Km: km}
	require.NoError(t, svc.DB.Create(&v).Error)
	return &v
}

func seedUnit(t *testing.T, svc *Service, hours float64) *models.RefrigerationUnit {
	u := models.RefrigerationUnit{Identifier: "FRIO-01", Status: constants.StatusActive, UsageHours: hours}
	require.NoError(t, svc.DB.Create(&u).Error)
	return &u
}

func ptr(v float64) *float64 { return &v }

func TestCreateRefueling_VehicleBumpsKm(t *testing.T) {
	svc := setupRefuelingsTest(t)
	v := seedVehicle(t, svc, 1000)

	record, err := svc.Create(context.Background(), CreateRefuelingInput{
		VehicleID: &v.VehicleID,
		Liters:    60,
		Km:        ptr(1300),
	})
	require.NoError(t, err)
	assert.Equal(t, 60.0, record.Liters)
	assert.Equal(t, "Diesel S10", record.FuelType)
	assert.Nil(t, record.UsageHours)

	var reloaded models.Vehicle
	require.NoError(t, svc.DB.Where("vehicle_id = ?", v.VehicleID).First(&reloaded).Error)
	assert.Equal(t, 1300.0, reloaded.Km)
}

// A backdated reading lower than the current one must not rewind the odometer.
func TestCreateRefueling_LowerKmKeepsReading(t *testing.T) {
	svc := setupRefuelingsTest(t)
	v := seedVehicle(t, svc, 1500)

	_, err := svc.Create(context.Background(), CreateRefuelingInput{
		VehicleID: &v.VehicleID,
		Liters:    40,
		Km:        ptr(1200),
	})
	require.NoError(t, err)

	var reloaded models.Vehicle
	require.NoError(t, svc.DB.Where("vehicle_id = ?", v.VehicleID).First(&reloaded).Error)
	assert.Equal(t, 1500.0, reloaded.Km)
}

func TestCreateRefueling_UnitBumpsHours(t *testing.T) {
	svc := setupRefuelingsTest(t)
	u := seedUnit(t, svc, 100)

	record, err := svc.Create(context.Background(), CreateRefuelingInput{
		RefrigerationUnitID: &u.UnitID,
		Liters:              25,
		UsageHours:          ptr(140),
	})
	require.NoError(t, err)
	assert.Nil(t, record.Km)

	var reloaded models.RefrigerationUnit
	require.NoError(t, svc.DB.Where("unit_id = ?", u.UnitID).First(&reloaded).Error)
	assert.Equal(t, 140.0, reloaded.UsageHours)
}

func TestCreateRefueling_Rejections(t *testing.T) {
	svc := setupRefuelingsTest(t)
	v := seedVehicle(t, svc, 0)
	u := seedUnit(t, svc, 0)

	_, err := svc.Create(context.Background(), CreateRefuelingInput{Liters: 10})
	assert.Equal(t, ErrAssetRefRequired, err)

	_, err = svc.Create(context.Background(), CreateRefuelingInput{VehicleID: &v.VehicleID, RefrigerationUnitID: &u.UnitID, Liters: 10})
	assert.Equal(t, ErrAssetRefRequired, err)

	_, err = svc.Create(context.Background(), CreateRefuelingInput{VehicleID: &v.VehicleID, Liters: 0})
	assert.Equal(t, ErrLitersRequired, err)

	unknown := u.UnitID
	unknown[0] ^= 0xff
	_, err = svc.Create(context.Background(), CreateRefuelingInput{RefrigerationUnitID: &unknown, Liters: 10})
	assert.Equal(t, ErrUnitNotFound, err)
}

// Liters arrive as JSON numbers or as strings with either decimal separator.
func TestDecimal_FlexibleParsing(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`{"liters": 45.5}`, 45.5},
		{`{"liters": "45,5"}`, 45.5},
		{`{"liters": "45.5"}`, 45.5},
		{`{"liters": "abc"}`, 0},
		{`{"liters": null}`, 0},
	}
	for _, tc := range cases {
		var in CreateRefuelingInput
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &in), tc.raw)
		assert.Equal(t, tc.want, float64(in.Liters), tc.raw)
	}
}

func TestListByVehicle_OldestFirst(t *testing.T) {
	svc := setupRefuelingsTest(t)
	v := seedVehicle(t, svc, 0)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{2, 0, 1} {
		_, err := svc.Create(context.Background(), CreateRefuelingInput{
			VehicleID: &v.VehicleID,
			Liters:    Decimal(10 + offset),
			Date:      base.AddDate(0, 0, offset),
		})
		require.NoError(t, err)
	}

	records, err := svc.ListByVehicle(context.Background(), v.VehicleID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 10.0, records[0].Liters)
	assert.Equal(t, 11.0, records[1].Liters)
	assert.Equal(t, 12.0, records[2].Liters)
}

// A corrected reading advances the odometer like Create does, and a lower
// correction never rewinds it.
func TestUpdateRefueling_BumpsReading(t *testing.T) {
	svc := setupRefuelingsTest(t)
	v := seedVehicle(t, svc, 1000)

	record, err := svc.Create(context.Background(), CreateRefuelingInput{VehicleID: &v.VehicleID, Liters: 30, Km: ptr(1000)})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), record.RefuelingID, UpdateRefuelingInput{Km: ptr(1400)})
	require.NoError(t, err)

	var reloaded models.Vehicle
	require.NoError(t, svc.DB.Where("vehicle_id = ?", v.VehicleID).First(&reloaded).Error)
	assert.Equal(t, 1400.0, reloaded.Km)

	_, err = svc.Update(context.Background(), record.RefuelingID, UpdateRefuelingInput{Km: ptr(900)})
	require.NoError(t, err)

	require.NoError(t, svc.DB.Where("vehicle_id = ?", v.VehicleID).First(&reloaded).Error)
	assert.Equal(t, 1400.0, reloaded.Km)

	u := seedUnit(t, svc, 100)
	unitRecord, err := svc.Create(context.Background(), CreateRefuelingInput{RefrigerationUnitID: &u.UnitID, Liters: 20, UsageHours: ptr(100)})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), unitRecord.RefuelingID, UpdateRefuelingInput{UsageHours: ptr(160)})
	require.NoError(t, err)

	var reloadedUnit models.RefrigerationUnit
	require.NoError(t, svc.DB.Where("unit_id = ?", u.UnitID).First(&reloadedUnit).Error)
	assert.Equal(t, 160.0, reloadedUnit.UsageHours)
}

func TestUpdateAndDeleteRefueling(t *testing.T) {
	svc := setupRefuelingsTest(t)
	v := seedVehicle(t, svc, 0)

	record, err := svc.Create(context.Background(), CreateRefuelingInput{VehicleID: &v.VehicleID, Liters: 30})
	require.NoError(t, err)

	liters := Decimal(55)
	updated, err := svc.Update(context.Background(), record.RefuelingID, UpdateRefuelingInput{Liters: &liters})
	require.NoError(t, err)
	assert.Equal(t, 55.0, updated.Liters)

	bad := Decimal(0)
	_, err = svc.Update(context.Background(), record.RefuelingID, UpdateRefuelingInput{Liters: &bad})
	assert.Equal(t, ErrLitersRequired, err)

	require.NoError(t, svc.Delete(context.Background(), record.RefuelingID))
	assert.Equal(t, ErrRefuelingNotFound, svc.Delete(context.Background(), record.RefuelingID))
}
