package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Application pipeline statuses
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusInterview   = "interview"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusOffer       = "offer"
)

// Application represents a candidate's submission for a job, carrying the
// pipeline status. Once it reaches shortlisted, only the scheduling engine
// moves it forward.
type Application struct {
	ID              uuid.UUID `json:"id"`
	JobID           uuid.UUID `json:"job_id"`
	CandidateUserID string    `json:"candidate_user_id"`
	Status          string    `json:"status"`
	ResumeKey       *string   `json:"-"` // blob store key, never exposed
	ResumeFilename  *string   `json:"resume_filename,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined data for emails and list responses
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateEmail string `json:"-"`
	JobTitle       string `json:"job_title,omitempty"`
}

type ApplicationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Application, error)
	GetByCandidateID(ctx context.Context, userID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type ApplicationUsecase interface {
	// Candidate operations
	GetMyApplications(ctx context.Context) ([]Application, error)

	// Recruiter operations. Interview-stage transitions belong to the
	// scheduling engine; this only covers shortlisting and offers.
	UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, status string) (*Application, error)
}
