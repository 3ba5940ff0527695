package receipt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/database"
	"github.com/timelogger/timelogger/pkg/currency"
)

type Repository interface {
	// FetchReceipts returns the receipts of a project dated within [from, to], ordered by date.
	FetchReceipts(ctx context.Context, projectId int, from, to time.Time) ([]Receipt, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) FetchReceipts(ctx context.Context, projectId int, from, to time.Time) ([]Receipt, error) {
	query := `SELECT r.id, r.project_id, rt.id, rt.name, r.date, r.file_name, r.cost, r.currency, r.created_date, r.modified_date
			  FROM receipt r
			  JOIN receipt_type rt ON rt.id = r.receipt_type_id
			  WHERE r.project_id = $1 AND r.date >= $2 AND r.date <= $3
			  ORDER BY r.date, r.id`

	rows, err := r.db.Query(ctx, query, projectId, from, to)
	if err != nil {
		err := fmt.Errorf("could not query receipts: %w", err)
		log.Error(err)
		return nil, err
	}

	receipts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Receipt, error) {
		var (
			receipt      Receipt
			cost         pgtype.Numeric
			code         string
			modifiedDate pgtype.Timestamptz
		)
		err := row.Scan(
			&receipt.Id,
			&receipt.ProjectId,
			&receipt.ReceiptTypeId,
			&receipt.ReceiptTypeName,
			&receipt.Date,
			&receipt.FileName,
			&cost,
			&code,
			&receipt.CreatedDate,
			&modifiedDate,
		)
		if err != nil {
			return Receipt{}, err
		}
		receipt.Cost = database.RequiredDecimal(cost)
		receipt.Currency = currency.Code(strings.TrimSpace(code))
		if modifiedDate.Valid {
			modified := modifiedDate.Time
			receipt.ModifiedDate = &modified
		}
		return receipt, nil
	})
	if err != nil {
		err := fmt.Errorf("error scanning receipt rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return receipts, nil
}
