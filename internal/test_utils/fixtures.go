package test_utils

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Fixtures inserts rows the way the CRUD layer would, so repositories can be read-tested.
type Fixtures struct {
	t  *testing.T
	db *pgxpool.Pool
}

func NewFixtures(t *testing.T, db *pgxpool.Pool) *Fixtures {
	return &Fixtures{t: t, db: db}
}

func (f *Fixtures) Customer(name string) int {
	return f.insert(`INSERT INTO customer (name) VALUES ($1) RETURNING id`, name)
}

func (f *Fixtures) Project(customerId int, number, name string, active, excludeFromInvoice bool) int {
	return f.insert(
		`INSERT INTO project (customer_id, project_number, name, is_active, exclude_from_invoice) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		customerId, number, name, active, excludeFromInvoice,
	)
}

func (f *Fixtures) TimeCode(code int, description string) int {
	return f.insert(`INSERT INTO time_code (code, description) VALUES ($1, $2) RETURNING id`, code, description)
}

// HoursEntry inserts an entry using the decimal hours family. Hours, travel hours and km are passed as strings.
func (f *Fixtures) HoursEntry(projectId, timeCodeId int, date time.Time, hours string, onSite bool, travelHours, travelKm any) int {
	return f.insert(
		`INSERT INTO time_entry (project_id, time_code_id, date, hours, is_on_site, travel_hours, travel_km, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 'fixture') RETURNING id`,
		projectId, timeCodeId, date, hours, onSite, travelHours, travelKm,
	)
}

// RangeEntry inserts an entry using the start/end family, times given as "HH:MM".
func (f *Fixtures) RangeEntry(projectId, timeCodeId int, date time.Time, start, end string, onSite bool) int {
	return f.insert(
		`INSERT INTO time_entry (project_id, time_code_id, date, start_time, end_time, is_on_site)
		 VALUES ($1, $2, $3, $4::time, $5::time, $6) RETURNING id`,
		projectId, timeCodeId, date, start, end, onSite,
	)
}

func (f *Fixtures) ReceiptType(name string) int {
	return f.insert(`INSERT INTO receipt_type (name) VALUES ($1) RETURNING id`, name)
}

func (f *Fixtures) Receipt(projectId, receiptTypeId int, date time.Time, fileName, cost, currency string) int {
	return f.insert(
		`INSERT INTO receipt (project_id, receipt_type_id, date, file_name, cost, currency) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		projectId, receiptTypeId, date, fileName, cost, currency,
	)
}

func (f *Fixtures) insert(query string, args ...any) int {
	f.t.Helper()
	var id int
	err := f.db.QueryRow(context.Background(), query, args...).Scan(&id)
	require.NoError(f.t, err)
	return id
}
