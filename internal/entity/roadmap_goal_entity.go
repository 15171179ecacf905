package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoadmapGoal is an ordered goal. Positions within one user's set are
// kept dense (1..N); delete and reorder restore that invariant.
type RoadmapGoal struct {
	Id          uuid.UUID
	Title       string
	Description string
	Position    int
	Deadline    *time.Time
	IsCompleted bool
	CreatedAt   time.Time
	CompletedAt *time.Time
	UserId      uuid.UUID
}
