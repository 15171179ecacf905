package mapper

import (
	"time"

	"lifehub-be/internal/entity"
	"lifehub-be/internal/model"

	"gorm.io/datatypes"
)

type CalendarEventMapper struct{}

func NewCalendarEventMapper() *CalendarEventMapper {
	return &CalendarEventMapper{}
}

func (m *CalendarEventMapper) ToEntity(e *model.CalendarEvent) *entity.CalendarEvent {
	if e == nil {
		return nil
	}
	return &entity.CalendarEvent{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   time.Time(e.EventDate),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Color:       e.Color,
		CreatedAt:   e.CreatedAt,
		UserId:      e.UserId,
		NoteId:      e.NoteId,
	}
}

func (m *CalendarEventMapper) ToModel(e *entity.CalendarEvent) *model.CalendarEvent {
	if e == nil {
		return nil
	}
	return &model.CalendarEvent{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   datatypes.Date(e.EventDate),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Color:       e.Color,
		CreatedAt:   e.CreatedAt,
		UserId:      e.UserId,
		NoteId:      e.NoteId,
	}
}

func (m *CalendarEventMapper) ToEntities(events []*model.CalendarEvent) []*entity.CalendarEvent {
	entities := make([]*entity.CalendarEvent, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
