package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RoadmapGoal struct {
	Id          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:varchar(1000)"`
	Position    int             `gorm:"not null;default:0;index"`
	Deadline    *datatypes.Date `gorm:""`
	IsCompleted bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	CompletedAt *time.Time      `gorm:""`
	UserId      uuid.UUID       `gorm:"type:uuid;not null;index"`
}

func (RoadmapGoal) TableName() string {
	return "roadmap_goals"
}
