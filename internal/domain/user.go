package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID         string    `json:"id"` // internal UUID
	CognitoSub string    `json:"-"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"` // candidate | recruiter
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetBySub(ctx context.Context, sub string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	// GetCurrentUser resolves the verified token subject to the local user
	// record carrying the authoritative role.
	GetCurrentUser(ctx context.Context, sub string) (*User, error)
}
