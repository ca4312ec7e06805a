package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-portal-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// GetByID retrieves an application with the joined candidate and job data
// the scheduling engine needs for emails and notifications
func (r *applicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.candidate_user_id, a.status,
			a.resume_key, a.resume_filename, a.created_at, a.updated_at,
			COALESCE(u.full_name, u.email) AS candidate_name,
			u.email AS candidate_email,
			j.title AS job_title
		FROM applications a
		JOIN users u ON a.candidate_user_id = u.id
		JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.CandidateUserID, &app.Status,
		&app.ResumeKey, &app.ResumeFilename, &app.CreatedAt, &app.UpdatedAt,
		&app.CandidateName, &app.CandidateEmail, &app.JobTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByCandidateID retrieves all applications for a candidate with job titles
func (r *applicationRepo) GetByCandidateID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.candidate_user_id, a.status,
			a.resume_key, a.resume_filename, a.created_at, a.updated_at,
			j.title AS job_title
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.candidate_user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateUserID, &app.Status,
			&app.ResumeKey, &app.ResumeFilename, &app.CreatedAt, &app.UpdatedAt,
			&app.JobTitle,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatus updates the status of an application and sets updated_at
func (r *applicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
