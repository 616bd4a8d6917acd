package contract

import (
	"context"

	"notes-backend/internal/entity"
)

// NoteRepository is a key-addressed note store. Save assigns the Id on first
// insert and writes a new copy on every call (upsert). FindById returns
// (nil, nil) when no record exists under the id; DeleteById on an absent id
// is not an error.
type NoteRepository interface {
	Save(ctx context.Context, note *entity.Note) error
	SaveAll(ctx context.Context, notes []*entity.Note) error
	FindById(ctx context.Context, id int64) (*entity.Note, error)
	FindAll(ctx context.Context) ([]*entity.Note, error)
	DeleteById(ctx context.Context, id int64) error
}
