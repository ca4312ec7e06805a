package postgres

import (
	"context"
	"errors"

	"recruitment-portal-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `
		SELECT id, recruiter_user_id, title, description, skills, location, created_at, updated_at
		FROM jobs
		WHERE id = $1`

	var job domain.Job
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.RecruiterUserID, &job.Title, &job.Description,
		pq.Array(&skills), &job.Location, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Skills = skills
	return &job, nil
}

func (r *jobRepo) GetAll(ctx context.Context) ([]domain.Job, error) {
	query := `
		SELECT id, recruiter_user_id, title, description, skills, location, created_at, updated_at
		FROM jobs
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var skills []string
		if err := rows.Scan(
			&job.ID, &job.RecruiterUserID, &job.Title, &job.Description,
			pq.Array(&skills), &job.Location, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		job.Skills = skills
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
