package dto

import "github.com/google/uuid"

type CreateNoteRequest struct {
	Data string `json:"note" form:"note"`
}

type CreateNoteResponse struct {
	Id uuid.UUID `json:"noteId"`
}

type DeleteNoteRequest struct {
	NoteId string `json:"noteId"`
}

type EditNoteRequest struct {
	NoteId  string `json:"noteId"`
	NewData string `json:"newData"`
}

// EditNoteResponse carries the refreshed content and timestamp so the
// client can update in place without a follow-up read.
type EditNoteResponse struct {
	NoteId  uuid.UUID `json:"noteId"`
	NewData string    `json:"newData"`
	NewDate string    `json:"newDate"`
}

// NotePreviewResponse is the shape of GET /calendar/notes items.
type NotePreviewResponse struct {
	Id          uuid.UUID `json:"id"`
	Content     string    `json:"content"`
	FullContent string    `json:"fullContent"`
	CreatedAt   string    `json:"created_at"`
}
