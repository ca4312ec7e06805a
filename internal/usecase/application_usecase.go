package usecase

import (
	"context"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
	"recruitment-portal-backend/pkg/logger"

	"github.com/google/uuid"
)

type applicationUsecase struct {
	applicationRepo  domain.ApplicationRepository
	notificationRepo domain.NotificationRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	notificationRepo domain.NotificationRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo:  applicationRepo,
		notificationRepo: notificationRepo,
	}
}

// GetMyApplications returns all applications for the current candidate
func (uc *applicationUsecase) GetMyApplications(ctx context.Context) ([]domain.Application, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return uc.applicationRepo.GetByCandidateID(ctx, userID)
}

// UpdateApplicationStatus moves an application through the stages the
// scheduling engine does not own: shortlisted, offer, or a pre-interview
// rejection. Interview-stage transitions belong to the engine alone.
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, status string) (*domain.Application, error) {
	if _, err := requireRole(ctx, domain.RoleRecruiter, "Only recruiters can update application status"); err != nil {
		return nil, err
	}

	validStatuses := map[string]bool{
		domain.ApplicationStatusShortlisted: true,
		domain.ApplicationStatusOffer:       true,
		domain.ApplicationStatusRejected:    true,
	}
	if !validStatuses[status] {
		return nil, apperror.BadRequest("Invalid status. Must be: shortlisted, offer, or rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}

	// Once an interview exists the pipeline is driven by interview events
	if app.Status == domain.ApplicationStatusInterview {
		return nil, apperror.Conflict("Application is in the interview stage; use the interview endpoints")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, apperror.Internal(err)
	}
	app.Status = status

	n := &domain.Notification{
		UserID:  app.CandidateUserID,
		Title:   "Application Updated",
		Message: "Your application for '" + app.JobTitle + "' is now " + status + ".",
	}
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		logger.Log.Warn("notification write failed", "user_id", app.CandidateUserID, "error", err)
	}

	return app, nil
}
