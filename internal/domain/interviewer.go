package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Interviewer is a person who can be assigned to interviews. Assignments
// are attached at scheduling time and immutable afterwards.
type Interviewer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type InterviewerRepository interface {
	Create(ctx context.Context, interviewer *Interviewer) error
	GetAll(ctx context.Context) ([]Interviewer, error)
	GetByEmail(ctx context.Context, email string) (*Interviewer, error)
}

type InterviewerUsecase interface {
	ListInterviewers(ctx context.Context) ([]Interviewer, error)
	CreateInterviewer(ctx context.Context, name, email string) (*Interviewer, error)
}
