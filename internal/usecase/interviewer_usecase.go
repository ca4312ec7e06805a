package usecase

import (
	"context"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
)

type interviewerUsecase struct {
	interviewerRepo domain.InterviewerRepository
}

// NewInterviewerUsecase creates a new interviewer usecase
func NewInterviewerUsecase(interviewerRepo domain.InterviewerRepository) domain.InterviewerUsecase {
	return &interviewerUsecase{interviewerRepo: interviewerRepo}
}

func (uc *interviewerUsecase) ListInterviewers(ctx context.Context) ([]domain.Interviewer, error) {
	return uc.interviewerRepo.GetAll(ctx)
}

func (uc *interviewerUsecase) CreateInterviewer(ctx context.Context, name, email string) (*domain.Interviewer, error) {
	if _, err := requireRole(ctx, domain.RoleRecruiter, "Only recruiters can add interviewers"); err != nil {
		return nil, err
	}
	if name == "" || email == "" {
		return nil, apperror.BadRequest("Name and email are required")
	}

	existing, err := uc.interviewerRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperror.Conflict("Interviewer with this email already exists")
	}

	interviewer := &domain.Interviewer{Name: name, Email: email}
	if err := uc.interviewerRepo.Create(ctx, interviewer); err != nil {
		return nil, apperror.Internal(err)
	}
	return interviewer, nil
}
