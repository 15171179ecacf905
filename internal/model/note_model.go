package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Data   string    `gorm:"type:varchar(10000)"`
	Date   time.Time `gorm:"autoCreateTime"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (Note) TableName() string {
	return "notes"
}
