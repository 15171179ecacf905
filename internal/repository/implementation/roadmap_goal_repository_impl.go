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

type RoadmapGoalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoadmapGoalMapper
}

func NewRoadmapGoalRepository(db *gorm.DB) contract.RoadmapGoalRepository {
	return &RoadmapGoalRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoadmapGoalMapper(),
	}
}

func (r *RoadmapGoalRepositoryImpl) Create(ctx context.Context, goal *entity.RoadmapGoal) error {
	m := r.mapper.ToModel(goal)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*goal = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoadmapGoalRepositoryImpl) Update(ctx context.Context, goal *entity.RoadmapGoal) error {
	m := r.mapper.ToModel(goal)
	// Full column list so a cleared deadline or completed_at reaches
	// the database as NULL.
	err := r.db.WithContext(ctx).Model(&model.RoadmapGoal{}).
		Where("id = ?", m.Id).
		Select("title", "description", "position", "deadline", "is_completed", "completed_at").
		Updates(m).Error
	if err != nil {
		return err
	}
	*goal = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoadmapGoalRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RoadmapGoal{}, id).Error
}

func (r *RoadmapGoalRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.RoadmapGoal{}).Error
}

func (r *RoadmapGoalRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoadmapGoal, error) {
	var m model.RoadmapGoal
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoadmapGoalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoadmapGoal, error) {
	var models []*model.RoadmapGoal
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RoadmapGoalRepositoryImpl) MaxPosition(ctx context.Context, userId uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&model.RoadmapGoal{}).
		Where("user_id = ?", userId).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
