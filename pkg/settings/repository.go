package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/database"
)

type Repository interface {
	// Get returns ErrSettingsNotConfigured when no settings were saved yet.
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, settings Settings) (Settings, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Get(ctx context.Context) (Settings, error) {
	query := `SELECT sek_to_eur_rate, hourly_rate_eur, travel_hourly_rate_eur, km_cost, created_date, modified_date
			  FROM settings WHERE id = 1`
	return r.scan(r.db.QueryRow(ctx, query))
}

func (r *RepositoryImpl) Update(ctx context.Context, settings Settings) (Settings, error) {
	query := `INSERT INTO settings (id, sek_to_eur_rate, hourly_rate_eur, travel_hourly_rate_eur, km_cost, modified_date)
			  VALUES (1, $1, $2, $3, $4, $5)
			  ON CONFLICT (id) DO UPDATE SET
			      sek_to_eur_rate = EXCLUDED.sek_to_eur_rate,
			      hourly_rate_eur = EXCLUDED.hourly_rate_eur,
			      travel_hourly_rate_eur = EXCLUDED.travel_hourly_rate_eur,
			      km_cost = EXCLUDED.km_cost,
			      modified_date = EXCLUDED.modified_date
			  RETURNING sek_to_eur_rate, hourly_rate_eur, travel_hourly_rate_eur, km_cost, created_date, modified_date`
	return r.scan(r.db.QueryRow(ctx, query,
		settings.SekToEurRate.String(),
		settings.HourlyRateEur.String(),
		settings.TravelHourlyRateEur.String(),
		settings.KmCost.String(),
		settings.ModifiedDate,
	))
}

func (r *RepositoryImpl) scan(row pgx.Row) (Settings, error) {
	var (
		settings     Settings
		sekToEur     pgtype.Numeric
		hourly       pgtype.Numeric
		travelHourly pgtype.Numeric
		kmCost       pgtype.Numeric
		modifiedDate pgtype.Timestamptz
	)
	err := row.Scan(&sekToEur, &hourly, &travelHourly, &kmCost, &settings.CreatedDate, &modifiedDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Settings{}, ErrSettingsNotConfigured
		}
		err := fmt.Errorf("could not read settings: %w", err)
		log.Error(err)
		return Settings{}, err
	}
	settings.SekToEurRate = database.RequiredDecimal(sekToEur)
	settings.HourlyRateEur = database.RequiredDecimal(hourly)
	settings.TravelHourlyRateEur = database.RequiredDecimal(travelHourly)
	settings.KmCost = database.RequiredDecimal(kmCost)
	if modifiedDate.Valid {
		modified := modifiedDate.Time
		settings.ModifiedDate = &modified
	}
	return settings, nil
}
