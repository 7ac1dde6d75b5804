package companies

import (
	"context"
	"testing"

	"frota-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCompaniesTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Company{}))
	return &Service{DB: db}
}

func TestCompanyCRUD(t *testing.T) {
	svc := setupCompaniesTest(t)

	co, err := svc.Create(context.Background(), CreateCompanyInput{Name: "Transportadora Norte", CNPJ: "99888777000166", City: "Manaus", State: "AM"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateCompanyInput{Name: "Clone", CNPJ: "99888777000166"})
	assert.Equal(t, ErrCNPJTaken, err)

	_, err = svc.Create(context.Background(), CreateCompanyInput{Name: " "})
	assert.Equal(t, ErrNameRequired, err)

	city := "Belém"
	state := "PA"
	updated, err := svc.Update(context.Background(), co.CompanyID, UpdateCompanyInput{City: &city, State: &state})
	require.NoError(t, err)
	assert.Equal(t, "Belém", updated.City)

	require.NoError(t, svc.Delete(context.Background(), co.CompanyID))
	assert.Equal(t, ErrCompanyNotFound, svc.Delete(context.Background(), co.CompanyID))
}
