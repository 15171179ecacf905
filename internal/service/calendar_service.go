package service

import (
	"context"
	"fmt"
	"time"

	"lifehub-be/internal/apperror"
	"lifehub-be/internal/dto"
	"lifehub-be/internal/entity"
	"lifehub-be/internal/pkg/timeutil"
	"lifehub-be/internal/repository/specification"
	"lifehub-be/internal/repository/unitofwork"
	pktNats "lifehub-be/pkg/nats"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Limits mirror the column widths so overflow fails as a 400 instead
// of a database error.
const (
	noteContentPreviewLength  = 200
	maxEventTitleLength       = 200
	maxEventDescriptionLength = 1000
)

type ICalendarService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.EventListItemResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error)
	Get(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EventDetailResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEventRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Stats(ctx context.Context, userId uuid.UUID) (*dto.CalendarStatsResponse, error)
}

type calendarService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	statsCache       *gocache.Cache
}

func NewCalendarService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	statsCache *gocache.Cache,
) ICalendarService {
	return &calendarService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		statsCache:       statsCache,
	}
}

func calendarStatsKey(userId uuid.UUID) string {
	return fmt.Sprintf("calendar_stats:%s", userId)
}

func (s *calendarService) invalidateStats(userId uuid.UUID) {
	if s.statsCache != nil {
		s.statsCache.Delete(calendarStatsKey(userId))
	}
}

// fetchOwned resolves an event and applies the ownership guard.
func (s *calendarService) fetchOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.CalendarEvent, error) {
	event, err := uow.CalendarEventRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NotFound("Event not found")
	}
	if event.UserId != userId {
		return nil, apperror.Forbidden("Unauthorized")
	}
	return event, nil
}

func (s *calendarService) List(ctx context.Context, userId uuid.UUID) ([]*dto.EventListItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	events, err := uow.CalendarEventRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	items := make([]*dto.EventListItemResponse, 0, len(events))
	for _, event := range events {
		items = append(items, s.buildListItem(ctx, uow, event))
	}

	return items, nil
}

// buildListItem assembles one calendar item. A dangling note link is
// rendered without note content instead of failing the whole list.
func (s *calendarService) buildListItem(ctx context.Context, uow unitofwork.UnitOfWork, event *entity.CalendarEvent) *dto.EventListItemResponse {
	title := event.Title
	if title == "" {
		title = "Untitled"
	}
	color := event.Color
	if color == "" {
		color = entity.DefaultEventColor
	}

	item := &dto.EventListItemResponse{
		Id:    event.Id,
		Title: title,
		Color: color,
		ExtendedProps: dto.EventExtendedProps{
			Description: event.Description,
			NoteId:      event.NoteId,
			HasNote:     event.NoteId != nil,
		},
	}

	startDate := timeutil.FormatDate(event.EventDate)
	if event.StartTime != nil {
		item.Start = startDate + "T" + timeutil.ClockWithSeconds(*event.StartTime)
		item.ExtendedProps.StartTime = *event.StartTime
	} else {
		item.Start = startDate
		item.AllDay = true
	}

	if event.EndTime != nil {
		item.End = startDate + "T" + timeutil.ClockWithSeconds(*event.EndTime)
		item.ExtendedProps.EndTime = *event.EndTime
	}

	if event.NoteId != nil {
		note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: *event.NoteId})
		if err == nil && note != nil {
			item.ExtendedProps.NoteContent = timeutil.Truncate(note.Data, noteContentPreviewLength)
		}
	}

	return item
}

func (s *calendarService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error) {
	if req.Title == "" || req.Date == "" {
		return nil, apperror.Validation("Title and date required")
	}
	if len([]rune(req.Title)) > maxEventTitleLength {
		return nil, apperror.Validation("Title exceeds maximum length")
	}
	if len([]rune(req.Description)) > maxEventDescriptionLength {
		return nil, apperror.Validation("Description exceeds maximum length")
	}

	eventDate, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	var startTime, endTime *string
	if req.StartTime != "" {
		clock, err := timeutil.ParseClock(req.StartTime)
		if err != nil {
			return nil, apperror.Validation(err.Error())
		}
		startTime = &clock
	}
	if req.EndTime != "" {
		clock, err := timeutil.ParseClock(req.EndTime)
		if err != nil {
			return nil, apperror.Validation(err.Error())
		}
		endTime = &clock
	}

	color := req.Color
	if color == "" {
		color = entity.DefaultEventColor
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	event := entity.CalendarEvent{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Color:       color,
		CreatedAt:   time.Now(),
		UserId:      userId,
		// No existence check: a link to a vanished note is legal.
		NoteId: req.NoteId,
	}

	if err := uow.CalendarEventRepository().Create(ctx, &event); err != nil {
		return nil, err
	}

	s.invalidateStats(userId)
	publishActivity(ctx, s.publisherService, s.eventPublisher, activityEventCreated, userId, event.Id, event.Title)

	return &dto.CreateEventResponse{Id: event.Id}, nil
}

func (s *calendarService) Get(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EventDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	event, err := s.fetchOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.EventDetailResponse{
		Id:          event.Id,
		Title:       event.Title,
		Description: event.Description,
		Date:        timeutil.FormatDate(event.EventDate),
		Color:       event.Color,
		NoteId:      event.NoteId,
	}
	if event.StartTime != nil {
		detail.StartTime = *event.StartTime
	}
	if event.EndTime != nil {
		detail.EndTime = *event.EndTime
	}

	return detail, nil
}

func (s *calendarService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEventRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	event, err := s.fetchOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return err
	}

	if req.Title != nil {
		if len([]rune(*req.Title)) > maxEventTitleLength {
			return apperror.Validation("Title exceeds maximum length")
		}
		event.Title = *req.Title
	}
	if req.Description != nil {
		if len([]rune(*req.Description)) > maxEventDescriptionLength {
			return apperror.Validation("Description exceeds maximum length")
		}
		event.Description = *req.Description
	}
	if req.Date != nil {
		eventDate, err := timeutil.ParseDate(*req.Date)
		if err != nil {
			return apperror.Validation(err.Error())
		}
		event.EventDate = eventDate
	}
	if req.StartTime != nil {
		if *req.StartTime == "" {
			event.StartTime = nil
		} else {
			clock, err := timeutil.ParseClock(*req.StartTime)
			if err != nil {
				return apperror.Validation(err.Error())
			}
			event.StartTime = &clock
		}
	}
	if req.EndTime != nil {
		if *req.EndTime == "" {
			event.EndTime = nil
		} else {
			clock, err := timeutil.ParseClock(*req.EndTime)
			if err != nil {
				return apperror.Validation(err.Error())
			}
			event.EndTime = &clock
		}
	}
	if req.Color != nil {
		event.Color = *req.Color
	}
	if req.NoteId != nil {
		if *req.NoteId == "" {
			event.NoteId = nil
		} else {
			noteId, err := uuid.Parse(*req.NoteId)
			if err != nil {
				return apperror.Validation("Invalid noteId")
			}
			event.NoteId = &noteId
		}
	}

	if err := uow.CalendarEventRepository().Update(ctx, event); err != nil {
		return err
	}

	s.invalidateStats(userId)
	return nil
}

func (s *calendarService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	event, err := s.fetchOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.CalendarEventRepository().Delete(ctx, event.Id); err != nil {
		return err
	}

	s.invalidateStats(userId)
	return nil
}

func (s *calendarService) Stats(ctx context.Context, userId uuid.UUID) (*dto.CalendarStatsResponse, error) {
	if s.statsCache != nil {
		if cached, ok := s.statsCache.Get(calendarStatsKey(userId)); ok {
			return cached.(*dto.CalendarStatsResponse), nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	events, err := uow.CalendarEventRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	today := timeutil.Today()
	stats := &dto.CalendarStatsResponse{Total: len(events)}
	for _, event := range events {
		if event.EventDate.Year() == today.Year() && event.EventDate.Month() == today.Month() {
			stats.Month++
			if event.EventDate.Day() == today.Day() {
				stats.Today++
			}
		}
	}

	if s.statsCache != nil {
		s.statsCache.Set(calendarStatsKey(userId), stats, gocache.DefaultExpiration)
	}

	return stats, nil
}
