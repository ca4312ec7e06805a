package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Interview statuses
const (
	InterviewStatusScheduled   = "scheduled"
	InterviewStatusRescheduled = "rescheduled"
	InterviewStatusCancelled   = "cancelled"
)

// Interview types
const (
	InterviewTypeOnline    = "online"
	InterviewTypeOffline   = "offline"
	InterviewTypeTelephone = "telephone"
)

// Scheduling modes
const (
	ScheduleModeDirect    = "direct"
	ScheduleModeSlotOffer = "slot_offer"
)

// Scheduling state machine violations. The repository and usecase layers
// map these to conflict responses.
var (
	ErrNotShortlisted      = errors.New("candidate must be shortlisted")
	ErrInterviewExists     = errors.New("interview already exists for this application")
	ErrNotInInterviewStage = errors.New("application is not in the interview stage")
	ErrAlreadyConfirmed    = errors.New("interview time is already confirmed")
)

// Interview is the single scheduled interview instance attached to an
// Application. ScheduledAt stays nil while slots are offered and none has
// been chosen.
type Interview struct {
	ID            uuid.UUID     `json:"id"`
	ApplicationID uuid.UUID     `json:"application_id"`
	Mode          string        `json:"schedule_mode"`  // direct | slot_offer
	InterviewType string        `json:"interview_type"` // online | offline | telephone
	MeetingLink   *string       `json:"meeting_link,omitempty"`
	Location      *string       `json:"location,omitempty"`
	ScheduledAt   *time.Time    `json:"scheduled_at,omitempty"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Interviewers  []Interviewer `json:"interviewers,omitempty"`
}

// InterviewSlot is a recruiter-proposed time window the candidate may pick
// when the exact time is not fixed upfront. At most one slot per interview
// carries IsSelected.
type InterviewSlot struct {
	ID          uuid.UUID `json:"id"`
	InterviewID uuid.UUID `json:"interview_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsSelected  bool      `json:"is_selected"`
}

// CanScheduleInterview reports whether a new interview may be created for
// the application: it must be shortlisted and not already have one.
func CanScheduleInterview(app *Application, hasInterview bool) error {
	if app.Status != ApplicationStatusShortlisted {
		return ErrNotShortlisted
	}
	if hasInterview {
		return ErrInterviewExists
	}
	return nil
}

// CanReschedule reports whether the interview may move to a new time. Only
// interviews on applications still in the interview stage qualify.
func (i *Interview) CanReschedule(app *Application) error {
	if app.Status != ApplicationStatusInterview {
		return ErrNotInInterviewStage
	}
	return nil
}

// CanConfirmSlot reports whether a slot selection is still possible.
// A non-nil ScheduledAt means the time was fixed already, either directly
// or by a prior selection, and a second confirmation would double-book.
func (i *Interview) CanConfirmSlot() error {
	if i.ScheduledAt != nil {
		return ErrAlreadyConfirmed
	}
	return nil
}

// Reschedule moves the interview to a new time.
func (i *Interview) Reschedule(at time.Time) {
	i.ScheduledAt = &at
	i.Status = InterviewStatusRescheduled
}

// Cancel marks the interview cancelled and clears the confirmed time.
// Policy: any cancellation, by either party, rejects the application; the
// caller persists the application transition alongside this one.
func (i *Interview) Cancel() {
	i.Status = InterviewStatusCancelled
	i.ScheduledAt = nil
}

// ConfirmSlot commits the chosen slot's start time as the interview time.
func (i *Interview) ConfirmSlot(slot *InterviewSlot) {
	at := slot.StartTime
	i.ScheduledAt = &at
}

// ScheduleInterviewInput carries a recruiter's scheduling request.
// ScheduledAt is required in direct mode only.
type ScheduleInterviewInput struct {
	ApplicationID  uuid.UUID   `json:"application_id" validate:"required"`
	ScheduleMode   string      `json:"schedule_mode" validate:"required,oneof=direct slot_offer"`
	InterviewType  string      `json:"interview_type" validate:"required,oneof=online offline telephone"`
	MeetingLink    *string     `json:"meeting_link,omitempty"`
	Location       *string     `json:"location,omitempty"`
	ScheduledAt    *time.Time  `json:"scheduled_at,omitempty"`
	InterviewerIDs []uuid.UUID `json:"interviewer_ids"`
}

// SlotInput is one proposed wall-clock window, combined with the batch date
// by the usecase. Times use HH:MM.
type SlotInput struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type InterviewRepository interface {
	// Create inserts the interview, attaches interviewers and moves the
	// application to the interview stage in one transaction.
	Create(ctx context.Context, interview *Interview, interviewerIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Interview, error)
	GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*Interview, error)
	ExistsForApplication(ctx context.Context, applicationID uuid.UUID) (bool, error)
	// Reschedule persists the new time only while the application is still
	// in the interview stage; returns ErrNotInInterviewStage otherwise.
	Reschedule(ctx context.Context, id uuid.UUID, at time.Time) error
	// Cancel marks the interview cancelled and rejects the application in
	// one transaction.
	Cancel(ctx context.Context, id uuid.UUID, applicationID uuid.UUID) error
	// ReplaceSlots clears any prior batch and inserts the new one.
	ReplaceSlots(ctx context.Context, interviewID uuid.UUID, slots []InterviewSlot) error
	GetSlots(ctx context.Context, interviewID uuid.UUID) ([]InterviewSlot, error)
	GetSlot(ctx context.Context, slotID uuid.UUID) (*InterviewSlot, error)
	// SelectSlot atomically commits the slot's start time as the interview
	// time. The update is conditional on scheduled_at still being null, so
	// concurrent selections cannot both win; the loser gets
	// ErrAlreadyConfirmed.
	SelectSlot(ctx context.Context, slot *InterviewSlot) error
	GetInterviewers(ctx context.Context, interviewID uuid.UUID) ([]Interviewer, error)
}

type InterviewUsecase interface {
	// Recruiter operations
	Schedule(ctx context.Context, input *ScheduleInterviewInput) (*Interview, error)
	Reschedule(ctx context.Context, applicationID uuid.UUID, newScheduledAt string) (*Interview, error)
	CancelByRecruiter(ctx context.Context, applicationID uuid.UUID) (*Interview, error)
	OfferSlots(ctx context.Context, interviewID uuid.UUID, date string, slots []SlotInput) error

	// Candidate operations
	ListSlots(ctx context.Context, applicationID uuid.UUID) ([]InterviewSlot, error)
	SelectSlot(ctx context.Context, slotID uuid.UUID) (*Interview, error)
	CancelByCandidate(ctx context.Context, applicationID uuid.UUID) (*Interview, error)
}
