package dto

import (
	"time"
)

// NotePayload carries a full note from the caller. Update replaces title,
// content and updated_at on the existing record; other fields are ignored on
// the full-update path.
type NotePayload struct {
	Id         int64      `json:"id"`
	Title      string     `json:"title" validate:"required,max=255"`
	Content    string     `json:"content" validate:"max=5000"`
	CreatedAt  *time.Time `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
	OwnerName  string     `json:"owner_name" validate:"max=255"`
	OwnerEmail string     `json:"owner_email" validate:"omitempty,email,max=255"`
}

// PatchNotePayload carries a partial note. A nil field means "leave
// unchanged"; there is no way to clear a field to empty through patch.
type PatchNotePayload struct {
	Title      *string    `json:"title" validate:"omitempty,max=255"`
	Content    *string    `json:"content" validate:"omitempty,max=5000"`
	UpdatedAt  *time.Time `json:"updated_at"`
	OwnerName  *string    `json:"owner_name" validate:"omitempty,max=255"`
	OwnerEmail *string    `json:"owner_email" validate:"omitempty,email,max=255"`
}

type CreateNoteRequest struct {
	Auth AuthRequest `json:"auth" validate:"required"`
	Note NotePayload `json:"note" validate:"required"`
}

type BulkNotesRequest struct {
	Auth  AuthRequest   `json:"auth" validate:"required"`
	Notes []NotePayload `json:"notes" validate:"required,dive"`
}

type UpdateNoteRequest struct {
	Auth AuthRequest `json:"auth" validate:"required"`
	Note NotePayload `json:"note" validate:"required"`
}

type PatchNoteRequest struct {
	Auth AuthRequest      `json:"auth" validate:"required"`
	Note PatchNotePayload `json:"note"`
}

type NoteResponse struct {
	Id         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
	OwnerName  string     `json:"owner_name,omitempty"`
	OwnerEmail string     `json:"owner_email,omitempty"`
}
