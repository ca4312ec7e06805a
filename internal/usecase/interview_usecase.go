package usecase

import (
	"context"
	"fmt"
	"time"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
	"recruitment-portal-backend/pkg/calendar"
	"recruitment-portal-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const slotTimeLayout = "15:04"

type interviewUsecase struct {
	interviewRepo    domain.InterviewRepository
	applicationRepo  domain.ApplicationRepository
	notificationRepo domain.NotificationRepository
	mailer           domain.Mailer
	resumeStore      domain.ResumeStore
	validate         *validator.Validate
	portalURL        string
}

// NewInterviewUsecase creates the scheduling engine. All collaborators are
// injected so tests can substitute fakes.
func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	applicationRepo domain.ApplicationRepository,
	notificationRepo domain.NotificationRepository,
	mailer domain.Mailer,
	resumeStore domain.ResumeStore,
	validate *validator.Validate,
	portalURL string,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo:    interviewRepo,
		applicationRepo:  applicationRepo,
		notificationRepo: notificationRepo,
		mailer:           mailer,
		resumeStore:      resumeStore,
		validate:         validate,
		portalURL:        portalURL,
	}
}

// requireRole returns the caller's user id when the verified role matches,
// or a Forbidden error otherwise.
func requireRole(ctx context.Context, role, reason string) (string, error) {
	ctxRole, _ := ctx.Value(domain.KeyUserRole).(string)
	if ctxRole != role {
		return "", apperror.Forbidden(reason)
	}
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return userID, nil
}

// mapStateErr converts state machine violations to conflict responses.
func mapStateErr(err error) error {
	return apperror.Conflict(err.Error())
}

// Schedule creates the single interview for a shortlisted application, in
// direct mode (time fixed now) or slot-offer mode (time deferred to the
// candidate's choice), and moves the application to the interview stage.
func (uc *interviewUsecase) Schedule(ctx context.Context, input *domain.ScheduleInterviewInput) (*domain.Interview, error) {
	if _, err := requireRole(ctx, domain.RoleRecruiter, "Only recruiters can schedule interviews"); err != nil {
		return nil, err
	}

	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if input.ScheduleMode == domain.ScheduleModeDirect && input.ScheduledAt == nil {
		return nil, apperror.BadRequest("scheduled_at is required for direct scheduling")
	}
	if input.InterviewType == domain.InterviewTypeOnline && input.MeetingLink == nil {
		return nil, apperror.BadRequest("meeting_link is required for online interviews")
	}
	if input.InterviewType == domain.InterviewTypeOffline && input.Location == nil {
		return nil, apperror.BadRequest("location is required for offline interviews")
	}

	app, err := uc.applicationRepo.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}

	exists, err := uc.interviewRepo.ExistsForApplication(ctx, input.ApplicationID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := domain.CanScheduleInterview(app, exists); err != nil {
		return nil, mapStateErr(err)
	}

	iv := &domain.Interview{
		ApplicationID: input.ApplicationID,
		Mode:          input.ScheduleMode,
		InterviewType: input.InterviewType,
		MeetingLink:   input.MeetingLink,
		Location:      input.Location,
		Status:        domain.InterviewStatusScheduled,
	}
	if input.ScheduleMode == domain.ScheduleModeDirect {
		iv.ScheduledAt = input.ScheduledAt
	}

	if err := uc.interviewRepo.Create(ctx, iv, input.InterviewerIDs); err != nil {
		if err == domain.ErrInterviewExists {
			return nil, mapStateErr(err)
		}
		return nil, apperror.Internal(err)
	}

	// Transition is committed; everything below is best-effort.
	if interviewers, err := uc.interviewRepo.GetInterviewers(ctx, iv.ID); err != nil {
		logger.Log.Warn("interviewer lookup failed", "interview_id", iv.ID, "error", err)
	} else {
		iv.Interviewers = interviewers
	}

	uc.notify(ctx, app.CandidateUserID, "Interview Scheduled",
		fmt.Sprintf("Your interview for '%s' has been scheduled.", app.JobTitle))

	if iv.ScheduledAt != nil {
		subject := fmt.Sprintf("Interview Scheduled – %s", app.JobTitle)
		body := uc.scheduledEmailBody(app, iv)
		uc.dispatchInviteEmails(ctx, app, iv, subject, body, true)
	}

	return iv, nil
}

// Reschedule moves an interview-stage application's interview to a new
// time. The datetime is accepted in RFC3339 or naive ISO form.
func (uc *interviewUsecase) Reschedule(ctx context.Context, applicationID uuid.UUID, newScheduledAt string) (*domain.Interview, error) {
	if _, err := requireRole(ctx, domain.RoleRecruiter, "Only recruiters can reschedule interviews"); err != nil {
		return nil, err
	}

	iv, err := uc.interviewRepo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	if err := iv.CanReschedule(app); err != nil {
		return nil, mapStateErr(err)
	}

	newDt, err := parseDateTime(newScheduledAt)
	if err != nil {
		return nil, apperror.BadRequest("Invalid datetime format")
	}

	if err := uc.interviewRepo.Reschedule(ctx, iv.ID, newDt); err != nil {
		if err == domain.ErrNotInInterviewStage {
			return nil, mapStateErr(err)
		}
		return nil, apperror.Internal(err)
	}
	iv.Reschedule(newDt)

	uc.notify(ctx, app.CandidateUserID, "Interview Rescheduled",
		fmt.Sprintf("Your interview for '%s' has been rescheduled to %s.",
			app.JobTitle, newDt.Format("02 Jan 2006, 03:04 PM")))

	subject := fmt.Sprintf("Interview Rescheduled – %s", app.JobTitle)
	body := uc.rescheduledEmailBody(app, iv, newDt)
	uc.dispatchInviteEmails(ctx, app, iv, subject, body, false)

	return iv, nil
}

// CancelByRecruiter cancels the interview and rejects the application.
func (uc *interviewUsecase) CancelByRecruiter(ctx context.Context, applicationID uuid.UUID) (*domain.Interview, error) {
	userID, err := requireRole(ctx, domain.RoleRecruiter, "Only recruiters can cancel interviews")
	if err != nil {
		return nil, err
	}
	return uc.cancel(ctx, applicationID, userID, domain.RoleRecruiter)
}

// CancelByCandidate cancels the candidate's own interview and rejects the
// application.
func (uc *interviewUsecase) CancelByCandidate(ctx context.Context, applicationID uuid.UUID) (*domain.Interview, error) {
	userID, err := requireRole(ctx, domain.RoleCandidate, "Only candidates can cancel interviews")
	if err != nil {
		return nil, err
	}
	return uc.cancel(ctx, applicationID, userID, domain.RoleCandidate)
}

// cancel implements the shared cancellation path. Policy: any
// cancellation, by either party, rejects the application outright.
func (uc *interviewUsecase) cancel(ctx context.Context, applicationID uuid.UUID, userID, cancelledBy string) (*domain.Interview, error) {
	iv, err := uc.interviewRepo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	if cancelledBy == domain.RoleCandidate && app.CandidateUserID != userID {
		return nil, apperror.Forbidden("You can only cancel your own interview")
	}

	if err := uc.interviewRepo.Cancel(ctx, iv.ID, iv.ApplicationID); err != nil {
		return nil, apperror.Internal(err)
	}
	iv.Cancel()

	uc.notify(ctx, app.CandidateUserID, "Interview Cancelled",
		fmt.Sprintf("Your interview was cancelled by the %s. Your application has been marked as rejected.", cancelledBy))

	return iv, nil
}

// OfferSlots replaces the interview's slot batch with a new one built from
// a calendar date and HH:MM wall-clock pairs. Offers are a full overwrite;
// overlapping or out-of-order pairs are accepted as-is.
func (uc *interviewUsecase) OfferSlots(ctx context.Context, interviewID uuid.UUID, date string, slots []domain.SlotInput) error {
	if _, err := requireRole(ctx, domain.RoleRecruiter, "Only recruiters can offer interview slots"); err != nil {
		return err
	}

	iv, err := uc.interviewRepo.GetByID(ctx, interviewID)
	if err != nil {
		return apperror.NotFound("Interview not found")
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return apperror.BadRequest("Invalid date format, expected YYYY-MM-DD")
	}

	batch := make([]domain.InterviewSlot, 0, len(slots))
	for _, s := range slots {
		start, err := time.Parse(slotTimeLayout, s.StartTime)
		if err != nil {
			return apperror.BadRequest("Invalid start_time, expected HH:MM")
		}
		end, err := time.Parse(slotTimeLayout, s.EndTime)
		if err != nil {
			return apperror.BadRequest("Invalid end_time, expected HH:MM")
		}
		batch = append(batch, domain.InterviewSlot{
			StartTime: combine(day, start),
			EndTime:   combine(day, end),
		})
	}

	if err := uc.interviewRepo.ReplaceSlots(ctx, interviewID, batch); err != nil {
		return apperror.Internal(err)
	}

	app, err := uc.applicationRepo.GetByID(ctx, iv.ApplicationID)
	if err != nil {
		logger.Log.Warn("slot offer committed but application lookup failed", "interview_id", interviewID, "error", err)
		return nil
	}

	uc.notify(ctx, app.CandidateUserID, "Interview Slots Offered",
		fmt.Sprintf("The recruiter has shared interview time slots for '%s'. Please select one.", app.JobTitle))

	// No calendar artifact yet since no time is fixed
	uc.sendMail(app.CandidateEmail,
		fmt.Sprintf("Select Interview Slot – %s", app.JobTitle),
		uc.slotOfferEmailBody(app, iv))

	return nil
}

// ListSlots returns the offered slots for the candidate's own application.
func (uc *interviewUsecase) ListSlots(ctx context.Context, applicationID uuid.UUID) ([]domain.InterviewSlot, error) {
	userID, err := requireRole(ctx, domain.RoleCandidate, "Only candidates can view interview slots")
	if err != nil {
		return nil, err
	}

	iv, err := uc.interviewRepo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	if app.CandidateUserID != userID {
		return nil, apperror.Forbidden("You can only view your own interview slots")
	}

	slots, err := uc.interviewRepo.GetSlots(ctx, iv.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return slots, nil
}

// SelectSlot confirms one offered slot as the interview time. Fails once
// the interview is confirmed, whether by direct scheduling or a prior
// selection; a concurrent duplicate selection loses on the conditional
// update inside the repository.
func (uc *interviewUsecase) SelectSlot(ctx context.Context, slotID uuid.UUID) (*domain.Interview, error) {
	userID, err := requireRole(ctx, domain.RoleCandidate, "Only candidates can select slots")
	if err != nil {
		return nil, err
	}

	slot, err := uc.interviewRepo.GetSlot(ctx, slotID)
	if err != nil {
		return nil, apperror.NotFound("Slot not found")
	}

	iv, err := uc.interviewRepo.GetByID(ctx, slot.InterviewID)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}

	app, err := uc.applicationRepo.GetByID(ctx, iv.ApplicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	if app.CandidateUserID != userID {
		return nil, apperror.Forbidden("You can only select slots for your own interview")
	}

	if err := iv.CanConfirmSlot(); err != nil {
		return nil, mapStateErr(err)
	}

	if err := uc.interviewRepo.SelectSlot(ctx, slot); err != nil {
		if err == domain.ErrAlreadyConfirmed {
			return nil, mapStateErr(err)
		}
		return nil, apperror.Internal(err)
	}
	iv.ConfirmSlot(slot)
	slot.IsSelected = true

	uc.notify(ctx, app.CandidateUserID, "Interview Confirmed",
		fmt.Sprintf("Your interview slot for '%s' has been confirmed.", app.JobTitle))

	subject := fmt.Sprintf("Interview Confirmed – %s", app.JobTitle)
	body := uc.confirmedEmailBody(app, iv)
	uc.dispatchInviteEmails(ctx, app, iv, subject, body, true)

	return iv, nil
}

// ---- side-effect dispatch (post-commit, best-effort) ----

// notify writes an in-app notification; failures are logged, never
// propagated into the already-committed operation.
func (uc *interviewUsecase) notify(ctx context.Context, userID, title, message string) {
	n := &domain.Notification{UserID: userID, Title: title, Message: message}
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		logger.Log.Warn("notification write failed", "user_id", userID, "title", title, "error", err)
	}
}

func (uc *interviewUsecase) sendMail(to, subject, body string) {
	if err := uc.mailer.Send(to, subject, body); err != nil {
		logger.Log.Warn("email send failed", "to", to, "subject", subject, "error", err)
	}
}

func (uc *interviewUsecase) sendMailWithAttachment(to, subject, body string, file []byte, filename string) {
	if err := uc.mailer.SendWithAttachment(to, subject, body, file, filename); err != nil {
		logger.Log.Warn("email send failed", "to", to, "subject", subject, "attachment", filename, "error", err)
	}
}

// dispatchInviteEmails sends the calendar invite to the candidate and to
// every assigned interviewer. When attachResume is set and the application
// carries a resume, its bytes go to the candidate's copy only.
func (uc *interviewUsecase) dispatchInviteEmails(ctx context.Context, app *domain.Application, iv *domain.Interview, subject, body string, attachResume bool) {
	if iv.ScheduledAt == nil {
		return
	}

	ics := calendar.InterviewInvite(
		fmt.Sprintf("Interview – %s", app.JobTitle),
		fmt.Sprintf("Interview Type: %s\nMeeting: %s", iv.InterviewType, meetingDetails(iv)),
		*iv.ScheduledAt,
	)

	if attachResume && app.ResumeKey != nil {
		resumeBytes, err := uc.resumeStore.FetchBytes(ctx, *app.ResumeKey)
		if err != nil {
			logger.Log.Warn("resume fetch failed", "key", *app.ResumeKey, "error", err)
		} else {
			filename := "resume.pdf"
			if app.ResumeFilename != nil {
				filename = *app.ResumeFilename
			}
			uc.sendMailWithAttachment(app.CandidateEmail, subject, body, resumeBytes, filename)
		}
	}

	uc.sendMailWithAttachment(app.CandidateEmail, subject, body, []byte(ics), "interview.ics")

	interviewers, err := uc.interviewRepo.GetInterviewers(ctx, iv.ID)
	if err != nil {
		logger.Log.Warn("interviewer lookup failed", "interview_id", iv.ID, "error", err)
		return
	}
	for _, interviewer := range interviewers {
		uc.sendMailWithAttachment(interviewer.Email, subject, body, []byte(ics), "interview.ics")
	}
}

// ---- email bodies ----

func (uc *interviewUsecase) scheduledEmailBody(app *domain.Application, iv *domain.Interview) string {
	return fmt.Sprintf(`Hi %s,

Your interview has been scheduled.

Job Role: %s
Interview Type: %s
Date & Time: %s

Meeting Details:
%s

Calendar invite is attached.

Regards,
Recruitment Team
`, app.CandidateName, app.JobTitle, iv.InterviewType, iv.ScheduledAt.Format("02 Jan 2006, 03:04 PM"), meetingDetails(iv))
}

func (uc *interviewUsecase) rescheduledEmailBody(app *domain.Application, iv *domain.Interview, newDt time.Time) string {
	return fmt.Sprintf(`Hi %s,

Your interview for the position of "%s" has been rescheduled.

Interview Type: %s
New Date & Time: %s

Meeting Details:
%s

The updated calendar invite is attached to this email.

Regards,
Recruitment Team
`, app.CandidateName, app.JobTitle, iv.InterviewType, newDt.Format("02 Jan 2006, 03:04 PM"), meetingDetails(iv))
}

func (uc *interviewUsecase) confirmedEmailBody(app *domain.Application, iv *domain.Interview) string {
	return fmt.Sprintf(`Hi %s,

Your interview slot has been confirmed.

Job Role: %s
Interview Type: %s
Date & Time: %s

Calendar invite is attached.

Regards,
Recruitment Team
`, app.CandidateName, app.JobTitle, iv.InterviewType, iv.ScheduledAt.Format("02 Jan 2006, 03:04 PM"))
}

func (uc *interviewUsecase) slotOfferEmailBody(app *domain.Application, iv *domain.Interview) string {
	return fmt.Sprintf(`Hi %s,

You have been shortlisted for the position of %s.

The recruiter has shared multiple interview time slots.
Please log in to the portal and select one convenient slot.

%s/my-applications

Interview Type: %s

Regards,
Recruitment Team
`, app.CandidateName, app.JobTitle, uc.portalURL, iv.InterviewType)
}

// ---- helpers ----

func meetingDetails(iv *domain.Interview) string {
	if iv.MeetingLink != nil {
		return *iv.MeetingLink
	}
	if iv.Location != nil {
		return *iv.Location
	}
	return ""
}

func parseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

func combine(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, day.Location())
}
