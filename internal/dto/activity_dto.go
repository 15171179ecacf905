package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityMessage is the payload published on the activity topic after
// a mutation. Auxiliary only: request handling never depends on it.
type ActivityMessage struct {
	Type       string    `json:"type"`
	UserId     uuid.UUID `json:"user_id"`
	RecordId   uuid.UUID `json:"record_id"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurred_at"`
}
