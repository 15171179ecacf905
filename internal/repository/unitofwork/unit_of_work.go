package unitofwork

import (
	"context"

	"lifehub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	CalendarEventRepository() contract.CalendarEventRepository
	RoadmapGoalRepository() contract.RoadmapGoalRepository
}
