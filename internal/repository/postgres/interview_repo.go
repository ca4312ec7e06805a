package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-portal-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

// Create inserts the interview, attaches the interviewers and moves the
// application to the interview stage in a single transaction. A unique
// index on interviews.application_id backs the one-interview-per-
// application invariant even under concurrent creates.
func (r *interviewRepo) Create(ctx context.Context, iv *domain.Interview, interviewerIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	iv.ID = uuid.New()
	iv.CreatedAt = now
	iv.UpdatedAt = now
	if iv.Status == "" {
		iv.Status = domain.InterviewStatusScheduled
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO interviews (id, application_id, mode, interview_type, meeting_link, location, scheduled_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		iv.ID, iv.ApplicationID, iv.Mode, iv.InterviewType, iv.MeetingLink, iv.Location,
		iv.ScheduledAt, iv.Status, iv.CreatedAt, iv.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrInterviewExists
		}
		return err
	}

	for _, interviewerID := range interviewerIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO interview_interviewers (interview_id, interviewer_id)
			VALUES ($1, $2)`,
			iv.ID, interviewerID,
		); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `
		UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`,
		iv.ApplicationID, domain.ApplicationStatusInterview, now,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *interviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Interview, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *interviewRepo) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*domain.Interview, error) {
	return r.getOne(ctx, `WHERE application_id = $1`, applicationID)
}

func (r *interviewRepo) getOne(ctx context.Context, where string, arg any) (*domain.Interview, error) {
	query := `
		SELECT id, application_id, mode, interview_type, meeting_link, location, scheduled_at, status, created_at, updated_at
		FROM interviews ` + where

	var iv domain.Interview
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&iv.ID, &iv.ApplicationID, &iv.Mode, &iv.InterviewType, &iv.MeetingLink, &iv.Location,
		&iv.ScheduledAt, &iv.Status, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	iv.Interviewers, err = r.GetInterviewers(ctx, iv.ID)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) ExistsForApplication(ctx context.Context, applicationID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM interviews WHERE application_id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, applicationID).Scan(&exists)
	return exists, err
}

// Reschedule persists the new time only while the owning application is
// still in the interview stage, closing the race with a concurrent cancel.
func (r *interviewRepo) Reschedule(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE interviews i
		SET scheduled_at = $2, status = $3, updated_at = $4
		FROM applications a
		WHERE i.id = $1 AND a.id = i.application_id AND a.status = $5`

	tag, err := r.db.Exec(ctx, query,
		id, at, domain.InterviewStatusRescheduled, time.Now(), domain.ApplicationStatusInterview,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotInInterviewStage
	}
	return nil
}

// Cancel marks the interview cancelled and rejects the application in one
// transaction. Cancellation is terminal by policy.
func (r *interviewRepo) Cancel(ctx context.Context, id uuid.UUID, applicationID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	tag, err := tx.Exec(ctx, `
		UPDATE interviews SET status = $2, scheduled_at = NULL, updated_at = $3 WHERE id = $1`,
		id, domain.InterviewStatusCancelled, now,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `
		UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`,
		applicationID, domain.ApplicationStatusRejected, now,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ReplaceSlots discards any prior batch for the interview and inserts the
// new one. Offers are a full overwrite, never a merge.
func (r *interviewRepo) ReplaceSlots(ctx context.Context, interviewID uuid.UUID, slots []domain.InterviewSlot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM interview_slots WHERE interview_id = $1`, interviewID); err != nil {
		return err
	}

	for i := range slots {
		slots[i].ID = uuid.New()
		slots[i].InterviewID = interviewID
		if _, err := tx.Exec(ctx, `
			INSERT INTO interview_slots (id, interview_id, start_time, end_time, is_selected)
			VALUES ($1, $2, $3, $4, false)`,
			slots[i].ID, interviewID, slots[i].StartTime, slots[i].EndTime,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *interviewRepo) GetSlots(ctx context.Context, interviewID uuid.UUID) ([]domain.InterviewSlot, error) {
	query := `
		SELECT id, interview_id, start_time, end_time, is_selected
		FROM interview_slots
		WHERE interview_id = $1
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, interviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []domain.InterviewSlot
	for rows.Next() {
		var s domain.InterviewSlot
		if err := rows.Scan(&s.ID, &s.InterviewID, &s.StartTime, &s.EndTime, &s.IsSelected); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *interviewRepo) GetSlot(ctx context.Context, slotID uuid.UUID) (*domain.InterviewSlot, error) {
	query := `
		SELECT id, interview_id, start_time, end_time, is_selected
		FROM interview_slots
		WHERE id = $1`

	var s domain.InterviewSlot
	err := r.db.QueryRow(ctx, query, slotID).Scan(&s.ID, &s.InterviewID, &s.StartTime, &s.EndTime, &s.IsSelected)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// SelectSlot commits the slot's start time as the interview time. The
// interview update is conditional on scheduled_at still being NULL, which
// is the optimistic guard: two racing selections cannot both pass it, and
// the loser observes zero rows and gets ErrAlreadyConfirmed.
func (r *interviewRepo) SelectSlot(ctx context.Context, slot *domain.InterviewSlot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE interviews
		SET scheduled_at = $2, updated_at = $3
		WHERE id = $1 AND scheduled_at IS NULL`,
		slot.InterviewID, slot.StartTime, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyConfirmed
	}

	if _, err := tx.Exec(ctx, `
		UPDATE interview_slots SET is_selected = (id = $2) WHERE interview_id = $1`,
		slot.InterviewID, slot.ID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *interviewRepo) GetInterviewers(ctx context.Context, interviewID uuid.UUID) ([]domain.Interviewer, error) {
	query := `
		SELECT i.id, i.name, i.email, i.created_at
		FROM interviewers i
		JOIN interview_interviewers ii ON ii.interviewer_id = i.id
		WHERE ii.interview_id = $1
		ORDER BY i.name`

	rows, err := r.db.Query(ctx, query, interviewID)
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
