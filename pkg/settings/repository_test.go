package settings

import (
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/timelogger/timelogger/internal/test_utils"
)

var container *postgres.PostgresContainer
var openDB func() *pgxpool.Pool

func TestMain(m *testing.M) {
	container, openDB = test_utils.TestWithDB()
	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func setupTestRepository(t *testing.T) Repository {
	require.NoError(t, test_utils.ResetDB(container))
	db := openDB()
	t.Cleanup(db.Close)
	return NewRepository(db)
}

func TestRepositoryImpl_Get_NotConfigured(t *testing.T) {
	// given
	repo := setupTestRepository(t)

	// when
	_, err := repo.Get(ctx)

	// then
	assert.ErrorIs(t, err, ErrSettingsNotConfigured)
}

func TestRepositoryImpl_Update_UpsertsSingleRow(t *testing.T) {
	// given
	repo := setupTestRepository(t)
	first, err := repo.Update(ctx, validSettings())
	require.NoError(t, err)
	assert.Nil(t, first.ModifiedDate)

	changed := validSettings()
	changed.HourlyRateEur = decimal.RequireFromString("162.50")
	modified := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	changed.ModifiedDate = &modified

	// when
	_, err = repo.Update(ctx, changed)
	require.NoError(t, err)
	stored, err := repo.Get(ctx)

	// then
	require.NoError(t, err)
	assert.Equal(t, "162.5", stored.HourlyRateEur.String())
	assert.Equal(t, "11.36", stored.SekToEurRate.String())
	assert.Equal(t, "0.25", stored.KmCost.String())
	assert.Equal(t, first.CreatedDate, stored.CreatedDate)
	require.NotNil(t, stored.ModifiedDate)
	assert.True(t, modified.Equal(*stored.ModifiedDate))
}
