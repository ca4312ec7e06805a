package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/internal/usecase"
	"recruitment-portal-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, iv *domain.Interview, interviewerIDs []uuid.UUID) error {
	return m.Called(ctx, iv, interviewerIDs).Error(0)
}
func (m *MockInterviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*domain.Interview, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) ExistsForApplication(ctx context.Context, applicationID uuid.UUID) (bool, error) {
	args := m.Called(ctx, applicationID)
	return args.Bool(0), args.Error(1)
}
func (m *MockInterviewRepo) Reschedule(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}
func (m *MockInterviewRepo) Cancel(ctx context.Context, id uuid.UUID, applicationID uuid.UUID) error {
	return m.Called(ctx, id, applicationID).Error(0)
}
func (m *MockInterviewRepo) ReplaceSlots(ctx context.Context, interviewID uuid.UUID, slots []domain.InterviewSlot) error {
	return m.Called(ctx, interviewID, slots).Error(0)
}
func (m *MockInterviewRepo) GetSlots(ctx context.Context, interviewID uuid.UUID) ([]domain.InterviewSlot, error) {
	args := m.Called(ctx, interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewSlot), args.Error(1)
}
func (m *MockInterviewRepo) GetSlot(ctx context.Context, slotID uuid.UUID) (*domain.InterviewSlot, error) {
	args := m.Called(ctx, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewSlot), args.Error(1)
}
func (m *MockInterviewRepo) SelectSlot(ctx context.Context, slot *domain.InterviewSlot) error {
	return m.Called(ctx, slot).Error(0)
}
func (m *MockInterviewRepo) GetInterviewers(ctx context.Context, interviewID uuid.UUID) ([]domain.Interviewer, error) {
	args := m.Called(ctx, interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interviewer), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByCandidateID(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

// Fake collaborators

type sentEmail struct {
	To       string
	Subject  string
	Filename string
}

type fakeMailer struct {
	sent []sentEmail
	fail bool
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject})
	return nil
}

func (f *fakeMailer) SendWithAttachment(to, subject, body string, file []byte, filename string) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Filename: filename})
	return nil
}

type fakeResumeStore struct {
	data map[string][]byte
}

func (f *fakeResumeStore) FetchBytes(ctx context.Context, key string) ([]byte, error) {
	if b, ok := f.data[key]; ok {
		return b, nil
	}
	return nil, errors.New("object not found")
}

// Helpers

func ctxAs(role, userID string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserRole, role)
	return context.WithValue(ctx, domain.KeyUserID, userID)
}

type engineFixture struct {
	interviewRepo *MockInterviewRepo
	appRepo       *MockApplicationRepo
	notifRepo     *MockNotificationRepo
	mailer        *fakeMailer
	resumes       *fakeResumeStore
	uc            domain.InterviewUsecase
}

func newEngine() *engineFixture {
	f := &engineFixture{
		interviewRepo: new(MockInterviewRepo),
		appRepo:       new(MockApplicationRepo),
		notifRepo:     new(MockNotificationRepo),
		mailer:        &fakeMailer{},
		resumes:       &fakeResumeStore{data: map[string][]byte{}},
	}
	f.uc = usecase.NewInterviewUsecase(
		f.interviewRepo, f.appRepo, f.notifRepo,
		f.mailer, f.resumes,
		validator.New(), "http://localhost:8501",
	)
	return f
}

func shortlistedApp(id uuid.UUID) *domain.Application {
	return &domain.Application{
		ID:              id,
		JobID:           uuid.New(),
		CandidateUserID: "cand-1",
		Status:          domain.ApplicationStatusShortlisted,
		CandidateName:   "Asha Rao",
		CandidateEmail:  "asha@example.com",
		JobTitle:        "Backend Engineer",
	}
}

func strPtr(s string) *string { return &s }

// Tests

func TestScheduleDirect(t *testing.T) {
	appID := uuid.New()
	at := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("schedules, notifies and emails invites", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		resumeKey := "resumes/asha.pdf"
		app.ResumeKey = &resumeKey
		app.ResumeFilename = strPtr("asha-rao.pdf")
		f.resumes.data[resumeKey] = []byte("%PDF-1.4")

		var persisted *domain.Interview
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.interviewRepo.On("ExistsForApplication", mock.Anything, appID).Return(false, nil)
		f.interviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview"), mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*domain.Interview)
		})
		f.interviewRepo.On("GetInterviewers", mock.Anything, mock.Anything).Return([]domain.Interviewer{
			{Name: "Ravi", Email: "ravi@example.com"},
		}, nil)
		f.notifRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)

		iv, err := f.uc.Schedule(ctxAs(domain.RoleRecruiter, "rec-1"), &domain.ScheduleInterviewInput{
			ApplicationID: appID,
			ScheduleMode:  domain.ScheduleModeDirect,
			InterviewType: domain.InterviewTypeOnline,
			MeetingLink:   strPtr("https://meet.example.com/abc"),
			ScheduledAt:   &at,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusScheduled, iv.Status)
		assert.Equal(t, at, *iv.ScheduledAt)
		// The mode reaches persistence, not just the response
		assert.Equal(t, domain.ScheduleModeDirect, persisted.Mode)
		assert.Len(t, iv.Interviewers, 1)
		assert.Equal(t, "Ravi", iv.Interviewers[0].Name)

		f.notifRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == "cand-1" && n.Title == "Interview Scheduled"
		}))

		// resume copy + ics to candidate, ics to interviewer
		assert.Len(t, f.mailer.sent, 3)
		assert.Equal(t, "asha-rao.pdf", f.mailer.sent[0].Filename)
		assert.Equal(t, "interview.ics", f.mailer.sent[1].Filename)
		assert.Equal(t, "ravi@example.com", f.mailer.sent[2].To)
	})

	t.Run("slot-offer mode leaves scheduled_at nil and sends no invite", func(t *testing.T) {
		f := newEngine()
		var persisted *domain.Interview
		f.appRepo.On("GetByID", mock.Anything, appID).Return(shortlistedApp(appID), nil)
		f.interviewRepo.On("ExistsForApplication", mock.Anything, appID).Return(false, nil)
		f.interviewRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*domain.Interview)
		})
		f.interviewRepo.On("GetInterviewers", mock.Anything, mock.Anything).Return([]domain.Interviewer{}, nil)
		f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		iv, err := f.uc.Schedule(ctxAs(domain.RoleRecruiter, "rec-1"), &domain.ScheduleInterviewInput{
			ApplicationID: appID,
			ScheduleMode:  domain.ScheduleModeSlotOffer,
			InterviewType: domain.InterviewTypeTelephone,
		})

		assert.NoError(t, err)
		assert.Nil(t, iv.ScheduledAt)
		assert.Equal(t, domain.ScheduleModeSlotOffer, persisted.Mode)
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("fails for non-recruiters", func(t *testing.T) {
		f := newEngine()
		_, err := f.uc.Schedule(ctxAs(domain.RoleCandidate, "cand-1"), &domain.ScheduleInterviewInput{
			ApplicationID: appID,
			ScheduleMode:  domain.ScheduleModeDirect,
			InterviewType: domain.InterviewTypeTelephone,
			ScheduledAt:   &at,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only recruiters")
	})

	t.Run("fails when application is missing", func(t *testing.T) {
		f := newEngine()
		f.appRepo.On("GetByID", mock.Anything, appID).Return(nil, domain.ErrNotFound)

		_, err := f.uc.Schedule(ctxAs(domain.RoleRecruiter, "rec-1"), &domain.ScheduleInterviewInput{
			ApplicationID: appID,
			ScheduleMode:  domain.ScheduleModeDirect,
			InterviewType: domain.InterviewTypeTelephone,
			ScheduledAt:   &at,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Application not found")
	})

	t.Run("fails when application is not shortlisted", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusApplied
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.interviewRepo.On("ExistsForApplication", mock.Anything, appID).Return(false, nil)

		_, err := f.uc.Schedule(ctxAs(domain.RoleRecruiter, "rec-1"), &domain.ScheduleInterviewInput{
			ApplicationID: appID,
			ScheduleMode:  domain.ScheduleModeDirect,
			InterviewType: domain.InterviewTypeTelephone,
			ScheduledAt:   &at,
		})
		assert.ErrorContains(t, err, "shortlisted")
		f.interviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails when an interview already exists", func(t *testing.T) {
		f := newEngine()
		f.appRepo.On("GetByID", mock.Anything, appID).Return(shortlistedApp(appID), nil)
		f.interviewRepo.On("ExistsForApplication", mock.Anything, appID).Return(true, nil)

		_, err := f.uc.Schedule(ctxAs(domain.RoleRecruiter, "rec-1"), &domain.ScheduleInterviewInput{
			ApplicationID: appID,
			ScheduleMode:  domain.ScheduleModeDirect,
			InterviewType: domain.InterviewTypeTelephone,
			ScheduledAt:   &at,
		})
		assert.ErrorContains(t, err, "already exists")
	})

	t.Run("requires meeting link for online interviews", func(t *testing.T) {
		f := newEngine()
		_, err := f.uc.Schedule(ctxAs(domain.RoleRecruiter, "rec-1"), &domain.ScheduleInterviewInput{
			ApplicationID: appID,
			ScheduleMode:  domain.ScheduleModeDirect,
			InterviewType: domain.InterviewTypeOnline,
			ScheduledAt:   &at,
		})
		assert.ErrorContains(t, err, "meeting_link")
	})

	t.Run("state change survives notification and mail failures", func(t *testing.T) {
		f := newEngine()
		f.mailer.fail = true
		f.appRepo.On("GetByID", mock.Anything, appID).Return(shortlistedApp(appID), nil)
		f.interviewRepo.On("ExistsForApplication", mock.Anything, appID).Return(false, nil)
		f.interviewRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.interviewRepo.On("GetInterviewers", mock.Anything, mock.Anything).Return([]domain.Interviewer{}, nil)
		f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		iv, err := f.uc.Schedule(ctxAs(domain.RoleRecruiter, "rec-1"), &domain.ScheduleInterviewInput{
			ApplicationID: appID,
			ScheduleMode:  domain.ScheduleModeDirect,
			InterviewType: domain.InterviewTypeTelephone,
			ScheduledAt:   &at,
		})

		assert.NoError(t, err)
		assert.NotNil(t, iv)
	})
}

func TestReschedule(t *testing.T) {
	appID := uuid.New()
	ivID := uuid.New()

	interview := func() *domain.Interview {
		return &domain.Interview{
			ID:            ivID,
			ApplicationID: appID,
			InterviewType: domain.InterviewTypeOnline,
			MeetingLink:   strPtr("https://meet.example.com/abc"),
			Status:        domain.InterviewStatusScheduled,
		}
	}

	t.Run("moves to new time and marks rescheduled", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetByApplicationID", mock.Anything, appID).Return(interview(), nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.interviewRepo.On("Reschedule", mock.Anything, ivID, mock.AnythingOfType("time.Time")).Return(nil)
		f.interviewRepo.On("GetInterviewers", mock.Anything, ivID).Return([]domain.Interviewer{}, nil)
		f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		iv, err := f.uc.Reschedule(ctxAs(domain.RoleRecruiter, "rec-1"), appID, "2025-04-01T14:00:00")

		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusRescheduled, iv.Status)
		assert.Equal(t, time.Date(2025, 4, 1, 14, 0, 0, 0, time.UTC), *iv.ScheduledAt)
		// candidate gets the updated invite
		assert.NotEmpty(t, f.mailer.sent)
		assert.Equal(t, "interview.ics", f.mailer.sent[0].Filename)
	})

	t.Run("fails outside the interview stage", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusRejected

		f.interviewRepo.On("GetByApplicationID", mock.Anything, appID).Return(interview(), nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)

		_, err := f.uc.Reschedule(ctxAs(domain.RoleRecruiter, "rec-1"), appID, "2025-04-01T14:00:00")
		assert.ErrorContains(t, err, "interview stage")
		f.interviewRepo.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails on unparseable datetime", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetByApplicationID", mock.Anything, appID).Return(interview(), nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)

		_, err := f.uc.Reschedule(ctxAs(domain.RoleRecruiter, "rec-1"), appID, "next tuesday")
		assert.ErrorContains(t, err, "Invalid datetime")
	})

	t.Run("fails when no interview exists", func(t *testing.T) {
		f := newEngine()
		f.interviewRepo.On("GetByApplicationID", mock.Anything, appID).Return(nil, domain.ErrNotFound)

		_, err := f.uc.Reschedule(ctxAs(domain.RoleRecruiter, "rec-1"), appID, "2025-04-01T14:00:00")
		assert.ErrorContains(t, err, "Interview not found")
	})
}

func TestCancel(t *testing.T) {
	appID := uuid.New()
	ivID := uuid.New()
	at := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	confirmed := func() *domain.Interview {
		return &domain.Interview{
			ID:            ivID,
			ApplicationID: appID,
			InterviewType: domain.InterviewTypeTelephone,
			ScheduledAt:   &at,
			Status:        domain.InterviewStatusScheduled,
		}
	}

	t.Run("candidate cancel rejects the application", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetByApplicationID", mock.Anything, appID).Return(confirmed(), nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.interviewRepo.On("Cancel", mock.Anything, ivID, appID).Return(nil)
		f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		iv, err := f.uc.CancelByCandidate(ctxAs(domain.RoleCandidate, "cand-1"), appID)

		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusCancelled, iv.Status)
		assert.Nil(t, iv.ScheduledAt)

		f.interviewRepo.AssertCalled(t, "Cancel", mock.Anything, ivID, appID)
		f.notifRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Title == "Interview Cancelled" && n.UserID == "cand-1"
		}))
	})

	t.Run("candidate cannot cancel someone else's interview", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetByApplicationID", mock.Anything, appID).Return(confirmed(), nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)

		_, err := f.uc.CancelByCandidate(ctxAs(domain.RoleCandidate, "cand-other"), appID)
		assert.ErrorContains(t, err, "your own interview")
		f.interviewRepo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("recruiter cancel works for any application", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetByApplicationID", mock.Anything, appID).Return(confirmed(), nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.interviewRepo.On("Cancel", mock.Anything, ivID, appID).Return(nil)
		f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		iv, err := f.uc.CancelByRecruiter(ctxAs(domain.RoleRecruiter, "rec-1"), appID)
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusCancelled, iv.Status)
	})

	t.Run("wrong role on each path is rejected", func(t *testing.T) {
		f := newEngine()
		_, err := f.uc.CancelByRecruiter(ctxAs(domain.RoleCandidate, "cand-1"), appID)
		assert.ErrorContains(t, err, "Only recruiters")

		_, err = f.uc.CancelByCandidate(ctxAs(domain.RoleRecruiter, "rec-1"), appID)
		assert.ErrorContains(t, err, "Only candidates")
	})
}

func TestOfferSlots(t *testing.T) {
	appID := uuid.New()
	ivID := uuid.New()

	pending := func() *domain.Interview {
		return &domain.Interview{
			ID:            ivID,
			ApplicationID: appID,
			InterviewType: domain.InterviewTypeOnline,
			MeetingLink:   strPtr("https://meet.example.com/abc"),
			Status:        domain.InterviewStatusScheduled,
		}
	}

	inputs := []domain.SlotInput{
		{StartTime: "09:00", EndTime: "09:30"},
		{StartTime: "10:00", EndTime: "10:30"},
		{StartTime: "11:00", EndTime: "11:30"},
	}

	t.Run("combines date with wall-clock pairs and replaces the batch", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		var captured []domain.InterviewSlot
		f.interviewRepo.On("GetByID", mock.Anything, ivID).Return(pending(), nil)
		f.interviewRepo.On("ReplaceSlots", mock.Anything, ivID, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			captured = args.Get(2).([]domain.InterviewSlot)
		})
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		err := f.uc.OfferSlots(ctxAs(domain.RoleRecruiter, "rec-1"), ivID, "2025-03-12", inputs)

		assert.NoError(t, err)
		assert.Len(t, captured, 3)
		assert.Equal(t, time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), captured[1].StartTime)
		assert.Equal(t, time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC), captured[1].EndTime)
		assert.False(t, captured[1].IsSelected)

		// plain email, no calendar artifact before a time is fixed
		assert.Len(t, f.mailer.sent, 1)
		assert.Empty(t, f.mailer.sent[0].Filename)
		assert.Contains(t, f.mailer.sent[0].Subject, "Select Interview Slot")
	})

	t.Run("overlapping pairs are accepted as-is", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetByID", mock.Anything, ivID).Return(pending(), nil)
		f.interviewRepo.On("ReplaceSlots", mock.Anything, ivID, mock.Anything).Return(nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		err := f.uc.OfferSlots(ctxAs(domain.RoleRecruiter, "rec-1"), ivID, "2025-03-12", []domain.SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "09:30", EndTime: "09:00"}, // out of order, still stored
		})
		assert.NoError(t, err)
	})

	t.Run("empty batch clears the offer", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetByID", mock.Anything, ivID).Return(pending(), nil)
		f.interviewRepo.On("ReplaceSlots", mock.Anything, ivID, mock.MatchedBy(func(slots []domain.InterviewSlot) bool {
			return len(slots) == 0
		})).Return(nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		assert.NoError(t, f.uc.OfferSlots(ctxAs(domain.RoleRecruiter, "rec-1"), ivID, "2025-03-12", nil))
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		f := newEngine()
		f.interviewRepo.On("GetByID", mock.Anything, ivID).Return(pending(), nil)

		err := f.uc.OfferSlots(ctxAs(domain.RoleRecruiter, "rec-1"), ivID, "2025-03-12", []domain.SlotInput{
			{StartTime: "quarter past nine", EndTime: "09:30"},
		})
		assert.ErrorContains(t, err, "start_time")
	})

	t.Run("only recruiters may offer", func(t *testing.T) {
		f := newEngine()
		err := f.uc.OfferSlots(ctxAs(domain.RoleCandidate, "cand-1"), ivID, "2025-03-12", inputs)
		assert.ErrorContains(t, err, "Only recruiters")
	})
}

func TestSelectSlot(t *testing.T) {
	appID := uuid.New()
	ivID := uuid.New()
	slotID := uuid.New()

	start := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC)

	slot := func() *domain.InterviewSlot {
		return &domain.InterviewSlot{ID: slotID, InterviewID: ivID, StartTime: start, EndTime: end}
	}
	pending := func() *domain.Interview {
		return &domain.Interview{
			ID:            ivID,
			ApplicationID: appID,
			InterviewType: domain.InterviewTypeOnline,
			MeetingLink:   strPtr("https://meet.example.com/abc"),
			Status:        domain.InterviewStatusScheduled,
		}
	}

	t.Run("confirms the slot and fixes the interview time", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetSlot", mock.Anything, slotID).Return(slot(), nil)
		f.interviewRepo.On("GetByID", mock.Anything, ivID).Return(pending(), nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.interviewRepo.On("SelectSlot", mock.Anything, mock.AnythingOfType("*domain.InterviewSlot")).Return(nil)
		f.interviewRepo.On("GetInterviewers", mock.Anything, ivID).Return([]domain.Interviewer{
			{Name: "Ravi", Email: "ravi@example.com"},
		}, nil)
		f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		iv, err := f.uc.SelectSlot(ctxAs(domain.RoleCandidate, "cand-1"), slotID)

		assert.NoError(t, err)
		assert.Equal(t, start, *iv.ScheduledAt)

		// confirmation invite to candidate and interviewer
		assert.Len(t, f.mailer.sent, 2)
		assert.Equal(t, "interview.ics", f.mailer.sent[0].Filename)
		assert.Equal(t, "ravi@example.com", f.mailer.sent[1].To)
	})

	t.Run("fails once the interview is already confirmed", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview
		iv := pending()
		iv.ScheduledAt = &start

		f.interviewRepo.On("GetSlot", mock.Anything, slotID).Return(slot(), nil)
		f.interviewRepo.On("GetByID", mock.Anything, ivID).Return(iv, nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)

		_, err := f.uc.SelectSlot(ctxAs(domain.RoleCandidate, "cand-1"), slotID)
		assert.ErrorContains(t, err, "already confirmed")
		f.interviewRepo.AssertNotCalled(t, "SelectSlot", mock.Anything, mock.Anything)
	})

	t.Run("losing a concurrent selection surfaces the conflict", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetSlot", mock.Anything, slotID).Return(slot(), nil)
		f.interviewRepo.On("GetByID", mock.Anything, ivID).Return(pending(), nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.interviewRepo.On("SelectSlot", mock.Anything, mock.Anything).Return(domain.ErrAlreadyConfirmed)

		_, err := f.uc.SelectSlot(ctxAs(domain.RoleCandidate, "cand-1"), slotID)
		assert.ErrorContains(t, err, "already confirmed")
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("fails when the slot does not exist", func(t *testing.T) {
		f := newEngine()
		f.interviewRepo.On("GetSlot", mock.Anything, slotID).Return(nil, domain.ErrNotFound)

		_, err := f.uc.SelectSlot(ctxAs(domain.RoleCandidate, "cand-1"), slotID)
		assert.ErrorContains(t, err, "Slot not found")
	})

	t.Run("foreign candidate cannot select", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetSlot", mock.Anything, slotID).Return(slot(), nil)
		f.interviewRepo.On("GetByID", mock.Anything, ivID).Return(pending(), nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)

		_, err := f.uc.SelectSlot(ctxAs(domain.RoleCandidate, "cand-other"), slotID)
		assert.ErrorContains(t, err, "your own interview")
	})
}

func TestListSlots(t *testing.T) {
	appID := uuid.New()
	ivID := uuid.New()

	t.Run("returns the candidate's offered slots", func(t *testing.T) {
		f := newEngine()
		app := shortlistedApp(appID)
		app.Status = domain.ApplicationStatusInterview

		f.interviewRepo.On("GetByApplicationID", mock.Anything, appID).Return(&domain.Interview{ID: ivID, ApplicationID: appID}, nil)
		f.appRepo.On("GetByID", mock.Anything, appID).Return(app, nil)
		f.interviewRepo.On("GetSlots", mock.Anything, ivID).Return([]domain.InterviewSlot{
			{ID: uuid.New(), InterviewID: ivID},
			{ID: uuid.New(), InterviewID: ivID},
		}, nil)

		slots, err := f.uc.ListSlots(ctxAs(domain.RoleCandidate, "cand-1"), appID)
		assert.NoError(t, err)
		assert.Len(t, slots, 2)
	})

	t.Run("recruiters cannot use the candidate listing", func(t *testing.T) {
		f := newEngine()
		_, err := f.uc.ListSlots(ctxAs(domain.RoleRecruiter, "rec-1"), appID)
		assert.ErrorContains(t, err, "Only candidates")
	})
}
