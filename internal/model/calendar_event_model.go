package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CalendarEvent struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:varchar(1000)"`
	EventDate   datatypes.Date `gorm:"not null"`
	StartTime   *string        `gorm:"type:varchar(5)"`
	EndTime     *string        `gorm:"type:varchar(5)"`
	Color       string         `gorm:"type:varchar(20);default:'#007bff'"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	// Intentionally no FK constraint: a deleted note leaves a dangling
	// reference that readers resolve best-effort.
	NoteId *uuid.UUID `gorm:"type:uuid"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
