package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Company, error)
	// FindByIDs resolves many companies in one query. Missing IDs are
	// simply absent from the returned map.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]job.Company, error)
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Company, error) {
	var c job.Company
	row := r.db.QueryRow(ctx,
		`SELECT id, name, location, website FROM companies WHERE id = $1`, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Location, &c.Website); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Company{}, ErrCompanyNotFound
		}
		return job.Company{}, err
	}
	return c, nil
}

func (r *PostgresCompanyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]job.Company, error) {
	out := make(map[uuid.UUID]job.Company, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, location, website FROM companies WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c job.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Website); err != nil {
			return nil, err
		}
		out[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
