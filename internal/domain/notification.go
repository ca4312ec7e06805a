package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Notification is a short in-app message for a user. Writes are
// fire-and-forget; a failed insert never fails the operation that
// triggered it.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	GetByUserID(ctx context.Context, userID string) ([]Notification, error)
	// MarkRead flags the notification read when it belongs to the user;
	// a missing or foreign id is a silent no-op.
	MarkRead(ctx context.Context, id uuid.UUID, userID string) error
}

type NotificationUsecase interface {
	GetMyNotifications(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}
