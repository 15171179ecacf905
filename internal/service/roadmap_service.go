package service

import (
	"context"
	"fmt"
	"math"
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
	maxGoalTitleLength       = 200
	maxGoalDescriptionLength = 1000
)

type IRoadmapService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.GoalResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateGoalRequest) (*dto.CreateGoalResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateGoalRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderGoalsRequest) error
	Stats(ctx context.Context, userId uuid.UUID) (*dto.RoadmapStatsResponse, error)
}

type roadmapService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	statsCache       *gocache.Cache
}

func NewRoadmapService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	statsCache *gocache.Cache,
) IRoadmapService {
	return &roadmapService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		statsCache:       statsCache,
	}
}

func roadmapStatsKey(userId uuid.UUID) string {
	return fmt.Sprintf("roadmap_stats:%s", userId)
}

func (s *roadmapService) invalidateStats(userId uuid.UUID) {
	if s.statsCache != nil {
		s.statsCache.Delete(roadmapStatsKey(userId))
	}
}

func (s *roadmapService) fetchOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.RoadmapGoal, error) {
	goal, err := uow.RoadmapGoalRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, apperror.NotFound("Goal not found")
	}
	if goal.UserId != userId {
		return nil, apperror.Forbidden("Unauthorized")
	}
	return goal, nil
}

func (s *roadmapService) List(ctx context.Context, userId uuid.UUID) ([]*dto.GoalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	goals, err := uow.RoadmapGoalRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, err
	}

	today := timeutil.Today()
	items := make([]*dto.GoalResponse, 0, len(goals))
	for _, goal := range goals {
		items = append(items, buildGoalResponse(goal, today))
	}

	return items, nil
}

func buildGoalResponse(goal *entity.RoadmapGoal, today time.Time) *dto.GoalResponse {
	item := &dto.GoalResponse{
		Id:          goal.Id,
		Title:       goal.Title,
		Description: goal.Description,
		Position:    goal.Position,
		IsCompleted: goal.IsCompleted,
		CreatedAt:   timeutil.FormatStamp(goal.CreatedAt),
	}

	if goal.Deadline != nil {
		d := timeutil.FormatDate(*goal.Deadline)
		item.Deadline = &d

		remaining := timeutil.DaysUntil(*goal.Deadline, today)
		if remaining > 0 {
			item.DaysRemaining = remaining
		}
		item.IsOverdue = remaining < 0 && !goal.IsCompleted
	}

	if goal.CompletedAt != nil {
		c := timeutil.FormatStamp(*goal.CompletedAt)
		item.CompletedAt = &c
	}

	return item
}

func (s *roadmapService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateGoalRequest) (*dto.CreateGoalResponse, error) {
	if req.Title == "" {
		return nil, apperror.Validation("Title is required")
	}
	if len([]rune(req.Title)) > maxGoalTitleLength {
		return nil, apperror.Validation("Title exceeds maximum length")
	}
	if len([]rune(req.Description)) > maxGoalDescriptionLength {
		return nil, apperror.Validation("Description exceeds maximum length")
	}

	var deadline *time.Time
	if req.Deadline != "" {
		d, err := timeutil.ParseDate(req.Deadline)
		if err != nil {
			return nil, apperror.Validation("Invalid date format. Use YYYY-MM-DD")
		}
		deadline = &d
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	maxPosition, err := uow.RoadmapGoalRepository().MaxPosition(ctx, userId)
	if err != nil {
		return nil, err
	}

	goal := entity.RoadmapGoal{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Position:    maxPosition + 1,
		Deadline:    deadline,
		IsCompleted: false,
		CreatedAt:   time.Now(),
		UserId:      userId,
	}

	if err := uow.RoadmapGoalRepository().Create(ctx, &goal); err != nil {
		return nil, err
	}

	s.invalidateStats(userId)
	publishActivity(ctx, s.publisherService, s.eventPublisher, activityGoalCreated, userId, goal.Id, goal.Title)

	return &dto.CreateGoalResponse{Id: goal.Id}, nil
}

func (s *roadmapService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateGoalRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	goal, err := s.fetchOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return err
	}

	if req.Title != nil {
		if len([]rune(*req.Title)) > maxGoalTitleLength {
			return apperror.Validation("Title exceeds maximum length")
		}
		goal.Title = *req.Title
	}
	if req.Description != nil {
		if len([]rune(*req.Description)) > maxGoalDescriptionLength {
			return apperror.Validation("Description exceeds maximum length")
		}
		goal.Description = *req.Description
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			goal.Deadline = nil
		} else {
			d, err := timeutil.ParseDate(*req.Deadline)
			if err != nil {
				return apperror.Validation("Invalid date format. Use YYYY-MM-DD")
			}
			goal.Deadline = &d
		}
	}
	completed := false
	if req.IsCompleted != nil {
		goal.IsCompleted = *req.IsCompleted
		if *req.IsCompleted {
			now := time.Now()
			goal.CompletedAt = &now
			completed = true
		} else {
			goal.CompletedAt = nil
		}
	}
	// Raw position writes are honored without renumbering; only delete
	// and reorder restore the dense 1..N range.
	if req.Position != nil {
		goal.Position = *req.Position
	}

	if err := uow.RoadmapGoalRepository().Update(ctx, goal); err != nil {
		return err
	}

	s.invalidateStats(userId)
	if completed {
		publishActivity(ctx, s.publisherService, s.eventPublisher, activityGoalCompleted, userId, goal.Id, goal.Title)
	}
	return nil
}

func (s *roadmapService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	goal, err := s.fetchOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.RoadmapGoalRepository().Delete(ctx, goal.Id); err != nil {
		return err
	}

	if err := s.renumber(ctx, uow, userId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.invalidateStats(userId)
	return nil
}

// renumber reloads the user's goals in position order and reassigns
// 1..N, restoring the dense-range invariant after a deletion.
func (s *roadmapService) renumber(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) error {
	goals, err := uow.RoadmapGoalRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return err
	}

	for i, goal := range goals {
		if goal.Position == i+1 {
			continue
		}
		goal.Position = i + 1
		if err := uow.RoadmapGoalRepository().Update(ctx, goal); err != nil {
			return err
		}
	}

	return nil
}

// Reorder assigns position index+1 for each id in the requested order.
// Malformed ids, unknown ids, and goals owned by someone else are
// skipped silently; an incomplete list is the caller's responsibility.
func (s *roadmapService) Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderGoalsRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for i, idStr := range req.Order {
		id, err := uuid.Parse(idStr)
		if err != nil {
			continue
		}
		goal, err := uow.RoadmapGoalRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return err
		}
		if goal == nil || goal.UserId != userId {
			continue
		}
		goal.Position = i + 1
		if err := uow.RoadmapGoalRepository().Update(ctx, goal); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.invalidateStats(userId)
	return nil
}

func (s *roadmapService) Stats(ctx context.Context, userId uuid.UUID) (*dto.RoadmapStatsResponse, error) {
	if s.statsCache != nil {
		if cached, ok := s.statsCache.Get(roadmapStatsKey(userId)); ok {
			return cached.(*dto.RoadmapStatsResponse), nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	goals, err := uow.RoadmapGoalRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	today := timeutil.Today()
	stats := &dto.RoadmapStatsResponse{Total: len(goals)}
	for _, goal := range goals {
		if goal.IsCompleted {
			stats.Completed++
		} else if goal.Deadline != nil && goal.Deadline.Before(today) {
			stats.Overdue++
		}
	}
	stats.Pending = stats.Total - stats.Completed

	if stats.Total > 0 {
		rate := float64(stats.Completed) / float64(stats.Total) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
	}

	if s.statsCache != nil {
		s.statsCache.Set(roadmapStatsKey(userId), stats, gocache.DefaultExpiration)
	}

	return stats, nil
}
