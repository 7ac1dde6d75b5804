package sales

import (
	"context"
	"testing"

	"frota-backend/internal/constants"
	"frota-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSalesTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Vehicle{}, &models.RefrigerationUnit{}))
	return &Service{DB: db}
}

func seedVehicle(t *testing.T, svc *Service, plate, status string) *models.Vehicle {
	v := models.Vehicle{Plate: plate, VehicleType: "Truck", Status: status, Axles: 2, Km: 250000}
	require.NoError(t, svc.DB.Create(&v).Error)
	return &v
}

func seedUnit(t *testing.T, svc *Service, identifier, status string, vehicleID *models.Vehicle) *models.RefrigerationUnit {
	u := models.RefrigerationUnit{Identifier: identifier, Status: status, UsageHours: 1200}
	if vehicleID != nil {
		u.VehicleID = &vehicleID.VehicleID
	}
	require.NoError(t, svc.DB.Create(&u).Error)
	return &u
}

// sell → reverse restores the pre-sale status and clears the snapshot,
// for every non-sold status.
func TestSellVehicle_ReverseRoundTrip(t *testing.T) {
	for _, status := range []string{
		constants.StatusActive,
		constants.StatusDefective,
		constants.StatusMaintenance,
		constants.StatusInactive,
	} {
		svc := setupSalesTest(t)
		v := seedVehicle(t, svc, "ABC1D23", status)

		sold, err := svc.SellVehicle(context.Background(), v.VehicleID, SaleInput{Buyer: "Transportes Silva", Price: 180000})
		require.NoError(t, err, status)
		assert.Equal(t, constants.StatusSold, sold.Status)
		require.NotNil(t, sold.SaleInfo)
		assert.Equal(t, status, sold.SaleInfo.PreviousStatus)
		assert.Equal(t, 250000.0, sold.SaleInfo.ReadingAtSale)

		restored, err := svc.ReverseSaleVehicle(context.Background(), v.VehicleID)
		require.NoError(t, err, status)
		assert.Equal(t, status, restored.Status)
		assert.Nil(t, restored.SaleInfo)
	}
}

func TestSellVehicle_Rejections(t *testing.T) {
	svc := setupSalesTest(t)
	v := seedVehicle(t, svc, "ABC1D23", constants.StatusActive)

	_, err := svc.SellVehicle(context.Background(), v.VehicleID, SaleInput{})
	assert.Equal(t, ErrBuyerRequired, err)

	_, err = svc.SellVehicle(context.Background(), v.VehicleID, SaleInput{Buyer: "X"})
	require.NoError(t, err)
	_, err = svc.SellVehicle(context.Background(), v.VehicleID, SaleInput{Buyer: "Y"})
	assert.Equal(t, ErrAlreadySold, err)
}

func TestReverseSale_RequiresSoldWithSnapshot(t *testing.T) {
	svc := setupSalesTest(t)
	v := seedVehicle(t, svc, "ABC1D23", constants.StatusActive)

	_, err := svc.ReverseSaleVehicle(context.Background(), v.VehicleID)
	assert.Equal(t, ErrNotSold, err)
}

// Selling a composed tractor releases its trailers.
func TestSellVehicle_ClearsComposition(t *testing.T) {
	svc := setupSalesTest(t)
	v := seedVehicle(t, svc, "TRA1A11", constants.StatusActive)
	v.Composition = append(v.Composition, models.CompositionTrailer{Plate: "TRL1A11", Axles: 3})
	v.HasComposition = true
	require.NoError(t, svc.DB.Save(v).Error)

	sold, err := svc.SellVehicle(context.Background(), v.VehicleID, SaleInput{Buyer: "Comprador"})
	require.NoError(t, err)
	assert.False(t, sold.HasComposition)
	assert.Empty(t, sold.Composition)
}

// Selling a linked trailer removes its plate from the tractor's composition.
func TestSellVehicle_DetachesSoldTrailer(t *testing.T) {
	svc := setupSalesTest(t)
	tractor := seedVehicle(t, svc, "TRA1A11", constants.StatusActive)
	trailer := models.Vehicle{Plate: "TRL1A11", VehicleType: "Carreta", Status: constants.StatusActive, Axles: 3}
	require.NoError(t, svc.DB.Create(&trailer).Error)
	tractor.Composition = append(tractor.Composition, models.CompositionTrailer{Plate: trailer.Plate, Axles: trailer.Axles})
	tractor.HasComposition = true
	require.NoError(t, svc.DB.Save(tractor).Error)

	sold, err := svc.SellVehicle(context.Background(), trailer.VehicleID, SaleInput{Buyer: "Comprador"})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusSold, sold.Status)

	var reloaded models.Vehicle
	require.NoError(t, svc.DB.Where("vehicle_id = ?", tractor.VehicleID).First(&reloaded).Error)
	assert.Empty(t, reloaded.Composition)
	assert.False(t, reloaded.HasComposition)
	assert.Equal(t, reloaded.Axles, reloaded.TotalAxles())
}

// An explicit zero reading is recorded as given, not replaced by the
// asset's current odometer.
func TestSellVehicle_ExplicitZeroReading(t *testing.T) {
	svc := setupSalesTest(t)
	v := seedVehicle(t, svc, "ABC1D23", constants.StatusActive)

	zero := 0.0
	sold, err := svc.SellVehicle(context.Background(), v.VehicleID, SaleInput{Buyer: "Comprador", ReadingAtSale: &zero})
	require.NoError(t, err)
	require.NotNil(t, sold.SaleInfo)
	assert.Equal(t, 0.0, sold.SaleInfo.ReadingAtSale)
}

// CascadeUnit=true sells the mounted unit with its own snapshot.
func TestSellVehicle_CascadesUnit(t *testing.T) {
	svc := setupSalesTest(t)
	v := seedVehicle(t, svc, "ABC1D23", constants.StatusActive)
	u := seedUnit(t, svc, "FRIO-01", constants.StatusDefective, v)

	_, err := svc.SellVehicle(context.Background(), v.VehicleID, SaleInput{Buyer: "Comprador", CascadeUnit: true})
	require.NoError(t, err)

	var reloaded models.RefrigerationUnit
	require.NoError(t, svc.DB.Where("unit_id = ?", u.UnitID).First(&reloaded).Error)
	assert.Equal(t, constants.StatusSold, reloaded.Status)
	assert.Nil(t, reloaded.VehicleID)
	require.NotNil(t, reloaded.SaleInfo)
	assert.Equal(t, constants.StatusDefective, reloaded.SaleInfo.PreviousStatus)
}

// CascadeUnit=false just unmounts the unit, status untouched.
func TestSellVehicle_UnlinksUnitWithoutCascade(t *testing.T) {
	svc := setupSalesTest(t)
	v := seedVehicle(t, svc, "ABC1D23", constants.StatusActive)
	u := seedUnit(t, svc, "FRIO-01", constants.StatusActive, v)

	_, err := svc.SellVehicle(context.Background(), v.VehicleID, SaleInput{Buyer: "Comprador", CascadeUnit: false})
	require.NoError(t, err)

	var reloaded models.RefrigerationUnit
	require.NoError(t, svc.DB.Where("unit_id = ?", u.UnitID).First(&reloaded).Error)
	assert.Equal(t, constants.StatusActive, reloaded.Status)
	assert.Nil(t, reloaded.VehicleID)
	assert.Nil(t, reloaded.SaleInfo)
}

func TestSellUnit_RoundTripAndLinkedGuard(t *testing.T) {
	svc := setupSalesTest(t)
	v := seedVehicle(t, svc, "ABC1D23", constants.StatusActive)
	linked := seedUnit(t, svc, "FRIO-01", constants.StatusActive, v)
	free := seedUnit(t, svc, "FRIO-02", constants.StatusMaintenance, nil)

	_, err := svc.SellUnit(context.Background(), linked.UnitID, SaleInput{Buyer: "Comprador"})
	assert.Equal(t, ErrUnitLinked, err)

	sold, err := svc.SellUnit(context.Background(), free.UnitID, SaleInput{Buyer: "Comprador", Price: 30000})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusSold, sold.Status)
	require.NotNil(t, sold.SaleInfo)
	assert.Equal(t, constants.StatusMaintenance, sold.SaleInfo.PreviousStatus)
	assert.Equal(t, 1200.0, sold.SaleInfo.ReadingAtSale)

	restored, err := svc.ReverseSaleUnit(context.Background(), free.UnitID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusMaintenance, restored.Status)
	assert.Nil(t, restored.SaleInfo)
}
