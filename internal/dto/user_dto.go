package dto

import "github.com/google/uuid"

type ProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	CreatedAt string    `json:"created_at"`
}
