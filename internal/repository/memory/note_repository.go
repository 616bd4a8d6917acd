package memory

import (
	"context"
	"sync"
	"time"

	"notes-backend/internal/entity"
	"notes-backend/internal/repository/contract"

	"golang.org/x/sync/errgroup"
)

var _ contract.NoteRepository = (*NoteRepository)(nil)

// NoteRepository is the in-process note store: a single mutex guards the
// whole map, which is the only serialization this store promises. The
// read-modify-write sequence in the service layer is not isolated, so two
// concurrent writers to the same id can still lose an update.
type NoteRepository struct {
	mu     sync.RWMutex
	nextId int64
	notes  map[int64]entity.Note
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		nextId: 1,
		notes:  make(map[int64]entity.Note),
	}
}

func (r *NoteRepository) Save(ctx context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if note.Id == 0 {
		note.Id = r.nextId
		r.nextId++
	} else if note.Id >= r.nextId {
		r.nextId = note.Id + 1
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	r.notes[note.Id] = *note
	return nil
}

// SaveAll persists each note as an independent operation; completions are
// unordered but the slice keeps its input order.
func (r *NoteRepository) SaveAll(ctx context.Context, notes []*entity.Note) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, note := range notes {
		note := note
		g.Go(func() error {
			return r.Save(ctx, note)
		})
	}
	return g.Wait()
}

func (r *NoteRepository) FindById(ctx context.Context, id int64) (*entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, exists := r.notes[id]
	if !exists {
		return nil, nil
	}
	return &note, nil
}

func (r *NoteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*entity.Note, 0, len(r.notes))
	for _, note := range r.notes {
		n := note
		notes = append(notes, &n)
	}
	return notes, nil
}

// DeleteById removes the record if present. Deleting an absent id succeeds.
func (r *NoteRepository) DeleteById(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.notes, id)
	return nil
}
