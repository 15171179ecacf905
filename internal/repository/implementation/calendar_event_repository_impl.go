package implementation

import (
	"context"
	"errors"

	"lifehub-be/internal/entity"
	"lifehub-be/internal/mapper"
	"lifehub-be/internal/model"
	"lifehub-be/internal/repository/contract"
	"lifehub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalendarEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CalendarEventMapper
}

func NewCalendarEventRepository(db *gorm.DB) contract.CalendarEventRepository {
	return &CalendarEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewCalendarEventMapper(),
	}
}

func (r *CalendarEventRepositoryImpl) Create(ctx context.Context, event *entity.CalendarEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *CalendarEventRepositoryImpl) Update(ctx context.Context, event *entity.CalendarEvent) error {
	m := r.mapper.ToModel(event)
	// Save skips nil pointer columns, so cleared times must be written
	// explicitly. Updates with a full column list keeps "set to NULL"
	// distinct from "leave alone" at this layer.
	err := r.db.WithContext(ctx).Model(&model.CalendarEvent{}).
		Where("id = ?", m.Id).
		Select("title", "description", "event_date", "start_time", "end_time", "color", "note_id").
		Updates(m).Error
	if err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *CalendarEventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CalendarEvent{}, id).Error
}

func (r *CalendarEventRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.CalendarEvent{}).Error
}

func (r *CalendarEventRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CalendarEvent, error) {
	var m model.CalendarEvent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CalendarEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CalendarEvent, error) {
	var models []*model.CalendarEvent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
