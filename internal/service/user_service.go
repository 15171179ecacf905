package service

import (
	"context"

	"lifehub-be/internal/apperror"
	"lifehub-be/internal/dto"
	"lifehub-be/internal/pkg/timeutil"
	"lifehub-be/internal/repository/specification"
	"lifehub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	Me(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	DeleteAccount(ctx context.Context, userId uuid.UUID) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) Me(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	return &dto.ProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FirstName: user.FirstName,
		CreatedAt: timeutil.FormatStamp(user.CreatedAt),
	}, nil
}

// DeleteAccount removes the user and everything the user owns in one
// transaction: notes, calendar events, and roadmap goals.
func (s *userService) DeleteAccount(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.CalendarEventRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.RoadmapGoalRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return err
	}

	return uow.Commit()
}
