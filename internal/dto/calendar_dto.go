package dto

import "github.com/google/uuid"

// EventExtendedProps nests the non-positional event fields the way the
// calendar frontend consumes them.
type EventExtendedProps struct {
	Description string     `json:"description"`
	NoteId      *uuid.UUID `json:"noteId"`
	HasNote     bool       `json:"hasNote"`
	StartTime   string     `json:"startTime,omitempty"`
	EndTime     string     `json:"endTime,omitempty"`
	NoteContent string     `json:"noteContent,omitempty"`
}

// EventListItemResponse is one element of GET /calendar/events.
// Start is either a bare date (all-day) or a combined date-time.
type EventListItemResponse struct {
	Id            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	Color         string             `json:"color"`
	Start         string             `json:"start"`
	End           string             `json:"end,omitempty"`
	AllDay        bool               `json:"allDay,omitempty"`
	ExtendedProps EventExtendedProps `json:"extendedProps"`
}

type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required"`
	Date        string     `json:"date" validate:"required"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	NoteId      *uuid.UUID `json:"noteId"`
}

type CreateEventResponse struct {
	Id uuid.UUID `json:"eventId"`
}

type EventDetailResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	Color       string     `json:"color"`
	NoteId      *uuid.UUID `json:"noteId"`
}

// UpdateEventRequest applies only the fields present in the request
// body; nil means "leave alone". A present-but-empty StartTime or
// EndTime clears the field, and an empty NoteId clears the link.
type UpdateEventRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Date        *string   `json:"date"`
	StartTime   *string   `json:"startTime"`
	EndTime     *string   `json:"endTime"`
	Color       *string   `json:"color"`
	NoteId      *string   `json:"noteId"`
}

type CalendarStatsResponse struct {
	Total int `json:"total"`
	Today int `json:"today"`
	Month int `json:"month"`
}
