package contract

import (
	"context"

	"lifehub-be/internal/entity"
	"lifehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CalendarEventRepository interface {
	Create(ctx context.Context, event *entity.CalendarEvent) error
	Update(ctx context.Context, event *entity.CalendarEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CalendarEvent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CalendarEvent, error)
}
