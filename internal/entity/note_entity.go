package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is a free-text record. Date tracks the last modification,
// not only creation, matching the edit semantics of the API.
type Note struct {
	Id     uuid.UUID
	Data   string
	Date   time.Time
	UserId uuid.UUID
}
