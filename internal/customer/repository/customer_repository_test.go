package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palantir/internal/domain"
	"palantir/internal/errors"
	"palantir/internal/testutil"
)

func strPtr(s string) *string { return &s }

// Unit Tests

func TestNewMySQLCustomerRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLCustomerRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestCustomerRepository_CreateAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	ctx := context.Background()

	customer, err := domain.NewCustomer("Maria", "maria@example.com", strPtr("529.982.247-25"), strPtr("+55 11 99999-0000"))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, customer))

	byID, err := repo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", byID.Name)
	require.NotNil(t, byID.CPF)
	assert.Equal(t, "52998224725", byID.CPF.String())

	byCPF, err := repo.FindByCPF(ctx, *customer.CPF)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, byCPF.ID)

	byEmail, err := repo.FindByEmail(ctx, customer.Email)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, byEmail.ID)
}

func TestCustomerRepository_Create_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	ctx := context.Background()

	first, err := domain.NewCustomer("Maria", "maria@example.com", nil, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := domain.NewCustomer("Other", "maria@example.com", nil, nil)
	require.NoError(t, err)

	err = repo.Create(ctx, second)
	_, ok := errors.IsAlreadyExistsError(err)
	assert.True(t, ok)
}

func TestCustomerRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	customer, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, customer)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
