package dto

import "github.com/google/uuid"

type GoalResponse struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Position      int       `json:"position"`
	Deadline      *string   `json:"deadline"`
	IsCompleted   bool      `json:"is_completed"`
	CreatedAt     string    `json:"created_at"`
	CompletedAt   *string   `json:"completed_at"`
	DaysRemaining int       `json:"days_remaining"`
	IsOverdue     bool      `json:"is_overdue"`
}

type CreateGoalRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

type CreateGoalResponse struct {
	Id uuid.UUID `json:"goalId"`
}

// UpdateGoalRequest applies only the fields present in the body.
// A present-but-empty Deadline clears it. Position writes are taken
// as-is; only delete and reorder renumber.
type UpdateGoalRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Deadline    *string   `json:"deadline"`
	IsCompleted *bool     `json:"is_completed"`
	Position    *int      `json:"position"`
}

// ReorderGoalsRequest carries ids as strings: malformed or foreign ids
// are skipped rather than failing the whole reorder.
type ReorderGoalsRequest struct {
	Order []string `json:"order"`
}

type RoadmapStatsResponse struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completion_rate"`
}
