package timeentry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/database"
)

type Repository interface {
	FetchTimeEntries(ctx context.Context, filter Filter) ([]TimeEntry, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const selectEntries = `SELECT
			te.id,
			te.project_id,
			p.project_number,
			p.name,
			p.exclude_from_invoice,
			c.id,
			c.name,
			tc.id,
			tc.code,
			tc.description,
			te.date,
			te.hours,
			te.start_time,
			te.end_time,
			te.description,
			te.is_on_site,
			te.travel_hours,
			te.travel_km,
			te.created_date,
			te.modified_date
		FROM time_entry te
		JOIN project p ON p.id = te.project_id
		JOIN customer c ON c.id = p.customer_id
		JOIN time_code tc ON tc.id = te.time_code_id`

func (r *RepositoryImpl) FetchTimeEntries(ctx context.Context, filter Filter) ([]TimeEntry, error) {
	var conditions []string
	var args []any
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conditions = append(conditions, fmt.Sprintf("te.date >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conditions = append(conditions, fmt.Sprintf("te.date <= $%d", len(args)))
	}
	if filter.ProjectId != 0 {
		args = append(args, filter.ProjectId)
		conditions = append(conditions, fmt.Sprintf("te.project_id = $%d", len(args)))
	}
	if filter.CustomerId != 0 {
		args = append(args, filter.CustomerId)
		conditions = append(conditions, fmt.Sprintf("p.customer_id = $%d", len(args)))
	}

	query := selectEntries
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY te.date, c.name, p.project_number, te.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query time entries: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	entries := make([]TimeEntry, 0)
	for rows.Next() {
		var (
			entry        TimeEntry
			hours        pgtype.Numeric
			startTime    pgtype.Time
			endTime      pgtype.Time
			description  pgtype.Text
			travelHours  pgtype.Numeric
			travelKm     pgtype.Numeric
			modifiedDate pgtype.Timestamptz
		)
		err := rows.Scan(
			&entry.Id,
			&entry.ProjectId,
			&entry.ProjectNumber,
			&entry.ProjectName,
			&entry.ExcludeFromInvoice,
			&entry.CustomerId,
			&entry.CustomerName,
			&entry.TimeCodeId,
			&entry.TimeCode,
			&entry.TimeCodeDescription,
			&entry.Date,
			&hours,
			&startTime,
			&endTime,
			&description,
			&entry.IsOnSite,
			&travelHours,
			&travelKm,
			&entry.CreatedDate,
			&modifiedDate,
		)
		if err != nil {
			err := fmt.Errorf("error scanning time entry row: %w", err)
			log.Error(err)
			return nil, err
		}
		entry.Hours = database.Decimal(hours)
		entry.StartTime = database.TimeOfDay(startTime)
		entry.EndTime = database.TimeOfDay(endTime)
		entry.Description = description.String
		entry.TravelHours = database.Decimal(travelHours)
		entry.TravelKm = database.Decimal(travelKm)
		if modifiedDate.Valid {
			modified := modifiedDate.Time
			entry.ModifiedDate = &modified
		}
		entry.Date = time.Date(entry.Date.Year(), entry.Date.Month(), entry.Date.Day(), 0, 0, 0, 0, time.UTC)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating time entry rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return entries, nil
}
