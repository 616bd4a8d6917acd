package memory

import (
	"context"
	"fmt"
	"testing"

	"notes-backend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRepository_SaveAssignsIds(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	first := &entity.Note{Title: "first"}
	second := &entity.Note{Title: "second"}

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	assert.Equal(t, int64(1), first.Id)
	assert.Equal(t, int64(2), second.Id)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestNoteRepository_SaveKeepsCallerIds(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Note{Id: 10, Title: "explicit"}))

	// The sequence moves past caller-supplied ids.
	next := &entity.Note{Title: "auto"}
	require.NoError(t, repo.Save(ctx, next))
	assert.Equal(t, int64(11), next.Id)
}

func TestNoteRepository_FindByIdMissing(t *testing.T) {
	repo := NewNoteRepository()

	note, err := repo.FindById(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, note)
}

func TestNoteRepository_FindByIdReturnsCopy(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Note{Id: 1, Title: "original"}))

	got, err := repo.FindById(ctx, 1)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := repo.FindById(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)
}

func TestNoteRepository_DeleteByIdAbsent(t *testing.T) {
	repo := NewNoteRepository()
	assert.NoError(t, repo.DeleteById(context.Background(), 999))
}

func TestNoteRepository_SaveAllConcurrent(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	notes := make([]*entity.Note, 100)
	for i := range notes {
		notes[i] = &entity.Note{Title: fmt.Sprintf("bulk-%d", i)}
	}

	require.NoError(t, repo.SaveAll(ctx, notes))

	seen := make(map[int64]bool, len(notes))
	for i, note := range notes {
		assert.Equal(t, fmt.Sprintf("bulk-%d", i), note.Title)
		assert.NotZero(t, note.Id)
		assert.False(t, seen[note.Id], "duplicate id %d", note.Id)
		seen[note.Id] = true
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(notes))
}
