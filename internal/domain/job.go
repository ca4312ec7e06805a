package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Job struct {
	ID              uuid.UUID `json:"id"`
	RecruiterUserID string    `json:"recruiter_user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Skills          []string  `json:"skills"`
	Location        *string   `json:"location,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type JobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	GetAll(ctx context.Context) ([]Job, error)
}

type JobUsecase interface {
	ListJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*Job, error)
}
