package usecase

import (
	"context"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"

	"github.com/google/uuid"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

func (uc *notificationUsecase) GetMyNotifications(ctx context.Context) ([]domain.Notification, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return uc.notificationRepo.GetByUserID(ctx, userID)
}

// MarkRead flags one of the caller's notifications read. Marking a missing
// or foreign notification is a silent no-op.
func (uc *notificationUsecase) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	return uc.notificationRepo.MarkRead(ctx, id, userID)
}
