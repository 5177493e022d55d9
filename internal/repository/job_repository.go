package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// JobSearchFilter narrows the catalog's text search. Query matches title
// and description case-insensitively; the optional fields are exact-ish
// SQL filters, not scoring inputs.
type JobSearchFilter struct {
	Location string
	JobType  string
	Limit    int
	Offset   int
}

type JobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	// ListJobs returns the whole catalog, active and inactive; callers
	// apply the IsActive gate themselves.
	ListJobs(ctx context.Context) ([]job.Job, error)
	Search(ctx context.Context, query string, filter JobSearchFilter) ([]job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, company_id, title, description, required_skills, experience_level,
	salary_min, salary_max, location, job_type, is_active, posted_at, created_at`

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY posted_at DESC NULLS LAST, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) Search(ctx context.Context, query string, filter JobSearchFilter) ([]job.Job, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	clauses := []string{"is_active = TRUE"}
	args := []any{}

	query = strings.TrimSpace(query)
	if query != "" {
		args = append(args, "%"+query+"%")
		clauses = append(clauses, "(title ILIKE $1 OR description ILIKE $1)")
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		args = append(args, "%"+loc+"%")
		clauses = append(clauses, "location ILIKE $"+strconv.Itoa(len(args)))
	}
	if jt := strings.TrimSpace(filter.JobType); jt != "" {
		args = append(args, jt)
		clauses = append(clauses, "lower(job_type) = lower($"+strconv.Itoa(len(args))+")")
	}

	args = append(args, limit)
	limitPos := strconv.Itoa(len(args))
	args = append(args, offset)
	offsetPos := strconv.Itoa(len(args))

	sql := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + strings.Join(clauses, " AND ") +
		` ORDER BY posted_at DESC NULLS LAST, created_at DESC LIMIT $` + limitPos + ` OFFSET $` + offsetPos

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.RequiredSkills,
		&j.ExperienceLevel, &j.SalaryMin, &j.SalaryMax, &j.Location, &j.JobType,
		&j.IsActive, &j.PostedAt, &j.CreatedAt)
	return j, err
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.RequiredSkills,
			&j.ExperienceLevel, &j.SalaryMin, &j.SalaryMax, &j.Location, &j.JobType,
			&j.IsActive, &j.PostedAt, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
