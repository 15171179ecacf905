package contract

import (
	"context"

	"lifehub-be/internal/entity"
	"lifehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RoadmapGoalRepository interface {
	Create(ctx context.Context, goal *entity.RoadmapGoal) error
	Update(ctx context.Context, goal *entity.RoadmapGoal) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoadmapGoal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoadmapGoal, error)
	// MaxPosition returns the highest position among a user's goals,
	// or 0 when the user has none.
	MaxPosition(ctx context.Context, userId uuid.UUID) (int, error)
}
