package entity

import (
	"time"

	"github.com/google/uuid"
)

const DefaultEventColor = "#007bff"

// CalendarEvent is a dated event with optional HH:MM start/end clocks.
// An event without a start clock is an all-day event. NoteId may point
// at a note that no longer exists; readers must tolerate that.
type CalendarEvent struct {
	Id          uuid.UUID
	Title       string
	Description string
	EventDate   time.Time
	StartTime   *string
	EndTime     *string
	Color       string
	CreatedAt   time.Time
	UserId      uuid.UUID
	NoteId      *uuid.UUID
}
