package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"notes-backend/internal/dto"
	"notes-backend/internal/pkg/apperror"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNoteService() INoteService {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	return NewNoteService(
		memory.NewNoteRepository(),
		NewPublisherService(pubSub, "RECORD_EVENTS"),
		nil,
		logger.NewNopLogger(),
	)
}

func strPtr(s string) *string { return &s }

func TestNoteService_CreateAndGet(t *testing.T) {
	svc := newTestNoteService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.NotePayload{
		Title:      "Groceries",
		Content:    "milk, eggs",
		OwnerName:  "alice",
		OwnerEmail: "alice@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)

	got, err := svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, "milk, eggs", got.Content)
	assert.Equal(t, "alice", got.OwnerName)
	assert.Equal(t, "alice@example.com", got.OwnerEmail)
}

func TestNoteService_GetMissing(t *testing.T) {
	svc := newTestNoteService()

	_, err := svc.Get(context.Background(), 9999)
	require.Error(t, err)

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestNoteService_UpdateReplacesContentOnly(t *testing.T) {
	svc := newTestNoteService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.NotePayload{
		Title:      "Old title",
		Content:    "old content",
		OwnerName:  "bob",
		OwnerEmail: "bob@example.com",
	})
	require.NoError(t, err)

	now := time.Now()
	updated, err := svc.Update(ctx, created.Id, &dto.NotePayload{
		Title:      "New title",
		Content:    "new content",
		UpdatedAt:  &now,
		OwnerName:  "intruder",
		OwnerEmail: "intruder@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "new content", updated.Content)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, now.Unix(), updated.UpdatedAt.Unix())

	// The full-update path never touches ownership or creation time.
	assert.Equal(t, "bob", updated.OwnerName)
	assert.Equal(t, "bob@example.com", updated.OwnerEmail)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestNoteService_UpdateMissing(t *testing.T) {
	svc := newTestNoteService()

	_, err := svc.Update(context.Background(), 42, &dto.NotePayload{Title: "x"})
	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestNoteService_PatchMergesOnlySuppliedFields(t *testing.T) {
	svc := newTestNoteService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.NotePayload{
		Title:      "Title",
		Content:    "Content",
		OwnerName:  "carol",
		OwnerEmail: "carol@example.com",
	})
	require.NoError(t, err)

	t.Run("single field", func(t *testing.T) {
		patched, err := svc.Patch(ctx, created.Id, &dto.PatchNotePayload{
			Content: strPtr("patched content"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Title", patched.Title)
		assert.Equal(t, "patched content", patched.Content)
		assert.Equal(t, "carol", patched.OwnerName)
	})

	t.Run("owner fields", func(t *testing.T) {
		patched, err := svc.Patch(ctx, created.Id, &dto.PatchNotePayload{
			OwnerName:  strPtr("dave"),
			OwnerEmail: strPtr("dave@example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "dave", patched.OwnerName)
		assert.Equal(t, "dave@example.com", patched.OwnerEmail)
		// Untouched by this patch.
		assert.Equal(t, "patched content", patched.Content)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		patched, err := svc.Patch(ctx, created.Id, &dto.PatchNotePayload{})
		require.NoError(t, err)
		assert.Equal(t, "Title", patched.Title)
		assert.Equal(t, "patched content", patched.Content)
		assert.Equal(t, "dave", patched.OwnerName)
	})
}

func TestNoteService_PatchMissing(t *testing.T) {
	svc := newTestNoteService()

	_, err := svc.Patch(context.Background(), 42, &dto.PatchNotePayload{Title: strPtr("x")})
	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestNoteService_DeleteIsIdempotent(t *testing.T) {
	svc := newTestNoteService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.NotePayload{Title: "bye"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.Id))

	_, err = svc.Get(ctx, created.Id)
	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	// Deleting again, or deleting an id that never existed, still succeeds.
	assert.NoError(t, svc.Delete(ctx, created.Id))
	assert.NoError(t, svc.Delete(ctx, 123456))
}

func TestNoteService_CreateBulkKeepsInputOrder(t *testing.T) {
	svc := newTestNoteService()
	ctx := context.Background()

	payloads := make([]*dto.NotePayload, 50)
	for i := range payloads {
		payloads[i] = &dto.NotePayload{Title: fmt.Sprintf("note-%03d", i)}
	}

	notes, err := svc.CreateBulk(ctx, payloads)
	require.NoError(t, err)
	require.Len(t, notes, len(payloads))

	for i, note := range notes {
		assert.Equal(t, fmt.Sprintf("note-%03d", i), note.Title)
		assert.NotZero(t, note.Id)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(payloads))
}
