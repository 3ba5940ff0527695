package project

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// FetchProjects lists projects ordered by customer name and project number.
	// customerId 0 means all customers.
	FetchProjects(ctx context.Context, customerId int, includeInactive bool) ([]Project, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) FetchProjects(ctx context.Context, customerId int, includeInactive bool) ([]Project, error) {
	query := `SELECT p.id, p.customer_id, c.name, p.project_number, p.name, p.is_active, p.exclude_from_invoice, p.created_date
			  FROM project p
			  JOIN customer c ON c.id = p.customer_id
			  WHERE ($1 = 0 OR p.customer_id = $1)
			    AND ($2 OR p.is_active)
			  ORDER BY c.name, p.project_number, p.id`

	rows, err := r.db.Query(ctx, query, customerId, includeInactive)
	if err != nil {
		err := fmt.Errorf("could not query projects: %w", err)
		log.Error(err)
		return nil, err
	}

	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Project, error) {
		var p Project
		err := row.Scan(&p.Id, &p.CustomerId, &p.CustomerName, &p.ProjectNumber, &p.Name, &p.IsActive, &p.ExcludeFromInvoice, &p.CreatedDate)
		return p, err
	})
	if err != nil {
		err := fmt.Errorf("error scanning project rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return projects, nil
}
