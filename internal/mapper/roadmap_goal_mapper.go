package mapper

import (
	"time"

	"lifehub-be/internal/entity"
	"lifehub-be/internal/model"

	"gorm.io/datatypes"
)

type RoadmapGoalMapper struct{}

func NewRoadmapGoalMapper() *RoadmapGoalMapper {
	return &RoadmapGoalMapper{}
}

func (m *RoadmapGoalMapper) ToEntity(g *model.RoadmapGoal) *entity.RoadmapGoal {
	if g == nil {
		return nil
	}
	var deadline *time.Time
	if g.Deadline != nil {
		t := time.Time(*g.Deadline)
		deadline = &t
	}
	return &entity.RoadmapGoal{
		Id:          g.Id,
		Title:       g.Title,
		Description: g.Description,
		Position:    g.Position,
		Deadline:    deadline,
		IsCompleted: g.IsCompleted,
		CreatedAt:   g.CreatedAt,
		CompletedAt: g.CompletedAt,
		UserId:      g.UserId,
	}
}

func (m *RoadmapGoalMapper) ToModel(g *entity.RoadmapGoal) *model.RoadmapGoal {
	if g == nil {
		return nil
	}
	var deadline *datatypes.Date
	if g.Deadline != nil {
		d := datatypes.Date(*g.Deadline)
		deadline = &d
	}
	return &model.RoadmapGoal{
		Id:          g.Id,
		Title:       g.Title,
		Description: g.Description,
		Position:    g.Position,
		Deadline:    deadline,
		IsCompleted: g.IsCompleted,
		CreatedAt:   g.CreatedAt,
		CompletedAt: g.CompletedAt,
		UserId:      g.UserId,
	}
}

func (m *RoadmapGoalMapper) ToEntities(goals []*model.RoadmapGoal) []*entity.RoadmapGoal {
	entities := make([]*entity.RoadmapGoal, len(goals))
	for i, g := range goals {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
