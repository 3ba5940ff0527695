package receipt

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/timelogger/timelogger/internal/test_utils"
	"github.com/timelogger/timelogger/pkg/currency"
)

var container *postgres.PostgresContainer
var openDB func() *pgxpool.Pool

func TestMain(m *testing.M) {
	container, openDB = test_utils.TestWithDB()
	code := m.Run()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestRepositoryImpl_FetchReceipts(t *testing.T) {
	// given
	require.NoError(t, test_utils.ResetDB(container))
	db := openDB()
	defer db.Close()
	ctx := context.Background()
	repo := NewRepository(db)
	fx := test_utils.NewFixtures(t, db)

	customer := fx.Customer("Volvo")
	project := fx.Project(customer, "P-1", "Brakes", true, false)
	other := fx.Project(customer, "P-2", "Axles", true, false)
	hotel := fx.ReceiptType("Hotel")
	fx.Receipt(project, hotel, day(1).AddDate(0, 0, -1), "before.pdf", "10", "EUR")
	late := fx.Receipt(project, hotel, day(31), "late.pdf", "1136.00", "SEK")
	early := fx.Receipt(project, hotel, day(1), "early.pdf", "89.90", "EUR")
	fx.Receipt(other, hotel, day(5), "other.pdf", "20", "EUR")

	// when
	receipts, err := repo.FetchReceipts(ctx, project, day(1), day(31))

	// then
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, early, receipts[0].Id)
	assert.Equal(t, late, receipts[1].Id)
	assert.Equal(t, "Hotel", receipts[0].ReceiptTypeName)
	assert.Equal(t, "early.pdf", receipts[0].FileName)
	assert.Equal(t, "89.9", receipts[0].Cost.String())
	assert.Equal(t, currency.EUR, receipts[0].Currency)
	assert.Equal(t, currency.SEK, receipts[1].Currency)
	assert.Equal(t, "1136", receipts[1].Cost.String())
}
