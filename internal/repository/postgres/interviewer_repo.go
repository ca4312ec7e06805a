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

type interviewerRepo struct {
	db *pgxpool.Pool
}

// NewInterviewerRepository creates a new interviewer repository
func NewInterviewerRepository(db *pgxpool.Pool) domain.InterviewerRepository {
	return &interviewerRepo{db: db}
}

func (r *interviewerRepo) Create(ctx context.Context, interviewer *domain.Interviewer) error {
	query := `
		INSERT INTO interviewers (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)`

	interviewer.ID = uuid.New()
	interviewer.CreatedAt = time.Now()

	_, err := r.db.Exec(ctx, query,
		interviewer.ID, interviewer.Name, interviewer.Email, interviewer.CreatedAt,
	)
	return err
}

func (r *interviewerRepo) GetAll(ctx context.Context) ([]domain.Interviewer, error) {
	query := `SELECT id, name, email, created_at FROM interviewers ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviewers []domain.Interviewer
	for rows.Next() {
		var iv domain.Interviewer
		if err := rows.Scan(&iv.ID, &iv.Name, &iv.Email, &iv.CreatedAt); err != nil {
			return nil, err
		}
		interviewers = append(interviewers, iv)
	}
	return interviewers, rows.Err()
}

func (r *interviewerRepo) GetByEmail(ctx context.Context, email string) (*domain.Interviewer, error) {
	query := `SELECT id, name, email, created_at FROM interviewers WHERE email = $1`

	var iv domain.Interviewer
	err := r.db.QueryRow(ctx, query, email).Scan(&iv.ID, &iv.Name, &iv.Email, &iv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &iv, nil
}
