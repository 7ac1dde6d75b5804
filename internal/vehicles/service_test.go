package vehicles

import (
	"context"
	"testing"

	"frota-backend/internal/constants"
	"frota-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupVehiclesTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Vehicle{}, &models.Refueling{}))
	return &Service{DB: db}
}

func createVehicle(t *testing.T, svc *Service, plate, vehicleType string, axles int) *models.Vehicle {
	v, err := svc.Create(context.Background(), CreateVehicleInput{
		Plate:       plate,
		VehicleType: vehicleType,
		Axles:       axles,
	})
	require.NoError(t, err)
	return v
}

func TestCreate_ClassifiesAndDefaults(t *testing.T) {
	svc := setupVehiclesTest(t)

	tractor := createVehicle(t, svc, "ABC1D23", "Cavalo Mecânico", 3)
	assert.Equal(t, constants.StatusActive, tractor.Status)
	assert.Equal(t, constants.CategoryTraction, tractor.Category())
	assert.False(t, tractor.HasComposition)

	trailer := createVehicle(t, svc, "DEF-4567", "Carreta", 3)
	assert.Equal(t, constants.CategoryTrailer, trailer.Category())
	assert.Equal(t, "DEF4567", trailer.Plate) // normalized
}

func TestCreate_RejectsUnknownTypeAndDuplicatePlate(t *testing.T) {
	svc := setupVehiclesTest(t)

	_, err := svc.Create(context.Background(), CreateVehicleInput{Plate: "ABC1D23", VehicleType: "Jet Ski", Axles: 2})
	assert.Equal(t, ErrInvalidVehicleType, err)

	createVehicle(t, svc, "ABC1D23", "Truck", 2)
	_, err = svc.Create(context.Background(), CreateVehicleInput{Plate: "abc-1d23", VehicleType: "Truck", Axles: 2})
	// same plate modulo normalization
	assert.Error(t, err)
}

func TestUpdate_TypeIsImmutable(t *testing.T) {
	svc := setupVehiclesTest(t)
	v := createVehicle(t, svc, "ABC1D23", "Truck", 2)

	other := "Carreta"
	_, err := svc.Update(context.Background(), v.VehicleID, UpdateVehicleInput{VehicleType: &other})
	assert.Equal(t, ErrTypeImmutable, err)

	same := "Truck"
	brand := "Volvo"
	updated, err := svc.Update(context.Background(), v.VehicleID, UpdateVehicleInput{VehicleType: &same, Brand: &brand})
	require.NoError(t, err)
	assert.Equal(t, "Volvo", updated.Brand)
}

func TestLinkTrailer_AppendsPairAndSetsFlag(t *testing.T) {
	svc := setupVehiclesTest(t)
	tractor := createVehicle(t, svc, "TRA1C23", "Cavalo Mecânico", 3)
	t1 := createVehicle(t, svc, "TRL1A11", "Carreta", 3)
	t2 := createVehicle(t, svc, "TRL2B22", "Graneleiro", 2)

	updated, err := svc.LinkTrailer(context.Background(), tractor.VehicleID, t1.VehicleID)
	require.NoError(t, err)
	updated, err = svc.LinkTrailer(context.Background(), tractor.VehicleID, t2.VehicleID)
	require.NoError(t, err)

	assert.True(t, updated.HasComposition)
	assert.Equal(t, []string{"TRL1A11", "TRL2B22"}, updated.CompositionPlates())
	assert.Equal(t, []int{3, 2}, updated.CompositionAxles())
	assert.Equal(t, 3+3+2, updated.TotalAxles())
}

func TestLinkTrailer_Rejections(t *testing.T) {
	svc := setupVehiclesTest(t)
	tractor := createVehicle(t, svc, "TRA1C23", "Truck", 3)
	trailer := createVehicle(t, svc, "TRL1A11", "Baú", 2)

	// Self link
	_, err := svc.LinkTrailer(context.Background(), tractor.VehicleID, tractor.VehicleID)
	assert.Equal(t, ErrSelfLink, err)

	// Trailer as tractor
	_, err = svc.LinkTrailer(context.Background(), trailer.VehicleID, tractor.VehicleID)
	assert.Equal(t, ErrNotTraction, err)

	// Tractor as trailer
	other := createVehicle(t, svc, "TRB2D34", "Bitruck", 3)
	_, err = svc.LinkTrailer(context.Background(), tractor.VehicleID, other.VehicleID)
	assert.Equal(t, ErrNotTrailer, err)

	// Trailer not active
	_, err = svc.UpdateStatus(context.Background(), trailer.VehicleID, constants.StatusMaintenance)
	require.NoError(t, err)
	_, err = svc.LinkTrailer(context.Background(), tractor.VehicleID, trailer.VehicleID)
	assert.Equal(t, ErrTrailerNotActive, err)

	// Unknown vehicle
	_, err = svc.LinkTrailer(context.Background(), tractor.VehicleID, uuid.New())
	assert.Equal(t, ErrVehicleNotFound, err)
}

// A trailer linked to tractor A cannot be linked to tractor B, and A's
// composition stays unchanged by the failed attempt.
func TestLinkTrailer_ExclusivityAcrossTractors(t *testing.T) {
	svc := setupVehiclesTest(t)
	a := createVehicle(t, svc, "TRA1A11", "Cavalo Mecânico", 3)
	b := createVehicle(t, svc, "TRB2B22", "Truck", 3)
	trailer := createVehicle(t, svc, "TRL1C33", "Carreta", 3)

	_, err := svc.LinkTrailer(context.Background(), a.VehicleID, trailer.VehicleID)
	require.NoError(t, err)

	_, err = svc.LinkTrailer(context.Background(), b.VehicleID, trailer.VehicleID)
	assert.Equal(t, ErrTrailerAlreadyLinked, err)

	// Double-link into the same tractor is also rejected by the same rule.
	_, err = svc.LinkTrailer(context.Background(), a.VehicleID, trailer.VehicleID)
	assert.Equal(t, ErrTrailerAlreadyLinked, err)

	reloadedA, err := svc.Get(context.Background(), a.VehicleID)
	require.NoError(t, err)
	assert.Equal(t, []string{"TRL1C33"}, reloadedA.CompositionPlates())

	reloadedB, err := svc.Get(context.Background(), b.VehicleID)
	require.NoError(t, err)
	assert.False(t, reloadedB.HasComposition)
}

func TestUnlinkTrailer_RemovesPairKeepsOrder(t *testing.T) {
	svc := setupVehiclesTest(t)
	tractor := createVehicle(t, svc, "TRA1A11", "Truck", 3)
	t1 := createVehicle(t, svc, "TRL1A11", "Carreta", 3)
	t2 := createVehicle(t, svc, "TRL2B22", "Sider", 2)
	t3 := createVehicle(t, svc, "TRL3C33", "Tanque", 3)
	for _, tr := range []*models.Vehicle{t1, t2, t3} {
		_, err := svc.LinkTrailer(context.Background(), tractor.VehicleID, tr.VehicleID)
		require.NoError(t, err)
	}

	updated, err := svc.UnlinkTrailer(context.Background(), tractor.VehicleID, "trl2-b22")
	require.NoError(t, err)
	assert.Equal(t, []string{"TRL1A11", "TRL3C33"}, updated.CompositionPlates())
	assert.Equal(t, []int{3, 3}, updated.CompositionAxles())
	assert.True(t, updated.HasComposition)

	_, err = svc.UnlinkTrailer(context.Background(), tractor.VehicleID, "TRL2B22")
	assert.Equal(t, ErrTrailerNotLinked, err)
}

func TestUnlinkTrailer_LastPairClearsFlag(t *testing.T) {
	svc := setupVehiclesTest(t)
	tractor := createVehicle(t, svc, "TRA1A11", "Truck", 3)
	trailer := createVehicle(t, svc, "TRL1A11", "Carreta", 3)
	_, err := svc.LinkTrailer(context.Background(), tractor.VehicleID, trailer.VehicleID)
	require.NoError(t, err)

	updated, err := svc.UnlinkTrailer(context.Background(), tractor.VehicleID, trailer.Plate)
	require.NoError(t, err)
	assert.False(t, updated.HasComposition)
	assert.Empty(t, updated.Composition)
}

// Tractor going to maintenance releases every linked trailer.
func TestUpdateStatus_TractorCascadeClearsComposition(t *testing.T) {
	svc := setupVehiclesTest(t)
	tractor := createVehicle(t, svc, "TRA1A11", "Cavalo Mecânico", 3)
	t1 := createVehicle(t, svc, "TRL1A11", "Carreta", 3)
	t2 := createVehicle(t, svc, "TRL2B22", "Baú", 2)
	for _, tr := range []*models.Vehicle{t1, t2} {
		_, err := svc.LinkTrailer(context.Background(), tractor.VehicleID, tr.VehicleID)
		require.NoError(t, err)
	}

	updated, err := svc.UpdateStatus(context.Background(), tractor.VehicleID, constants.StatusMaintenance)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusMaintenance, updated.Status)
	assert.False(t, updated.HasComposition)
	assert.Empty(t, updated.CompositionPlates())
	assert.Empty(t, updated.CompositionAxles())

	// The released trailers can be linked elsewhere again.
	other := createVehicle(t, svc, "TRB2B22", "Truck", 3)
	_, err = svc.LinkTrailer(context.Background(), other.VehicleID, t1.VehicleID)
	assert.NoError(t, err)
}

// Trailer going inactive while linked leaves its tractor's composition.
func TestUpdateStatus_TrailerCascadeLeavesComposition(t *testing.T) {
	svc := setupVehiclesTest(t)
	tractor := createVehicle(t, svc, "TRA1A11", "Truck", 3)
	t1 := createVehicle(t, svc, "TRL1A11", "Carreta", 3)
	t2 := createVehicle(t, svc, "TRL2B22", "Baú", 2)
	for _, tr := range []*models.Vehicle{t1, t2} {
		_, err := svc.LinkTrailer(context.Background(), tractor.VehicleID, tr.VehicleID)
		require.NoError(t, err)
	}

	_, err := svc.UpdateStatus(context.Background(), t1.VehicleID, constants.StatusInactive)
	require.NoError(t, err)

	reloaded, err := svc.Get(context.Background(), tractor.VehicleID)
	require.NoError(t, err)
	assert.Equal(t, []string{"TRL2B22"}, reloaded.CompositionPlates())
	assert.True(t, reloaded.HasComposition)
}

// Active/defective transitions do not touch the composition.
func TestUpdateStatus_OperationalChangeKeepsComposition(t *testing.T) {
	svc := setupVehiclesTest(t)
	tractor := createVehicle(t, svc, "TRA1A11", "Truck", 3)
	trailer := createVehicle(t, svc, "TRL1A11", "Carreta", 3)
	_, err := svc.LinkTrailer(context.Background(), tractor.VehicleID, trailer.VehicleID)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), tractor.VehicleID, constants.StatusDefective)
	require.NoError(t, err)
	assert.True(t, updated.HasComposition)
}

func TestUpdateStatus_SoldIsReservedForSales(t *testing.T) {
	svc := setupVehiclesTest(t)
	v := createVehicle(t, svc, "ABC1D23", "Truck", 2)

	_, err := svc.UpdateStatus(context.Background(), v.VehicleID, constants.StatusSold)
	assert.Equal(t, ErrStatusViaSale, err)

	_, err = svc.UpdateStatus(context.Background(), v.VehicleID, "scrapped")
	assert.Equal(t, ErrInvalidStatus, err)
}
