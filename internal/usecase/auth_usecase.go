package usecase

import (
	"context"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// GetCurrentUser resolves the verified token subject to the local user
// record. The role always comes from the database, never from token
// claims.
func (uc *authUsecase) GetCurrentUser(ctx context.Context, sub string) (*domain.User, error) {
	user, err := uc.userRepo.GetBySub(ctx, sub)
	if err != nil {
		return nil, apperror.Unauthorized("User not found")
	}
	return user, nil
}
