package service

import (
	"context"
	"testing"

	"notes-backend/internal/dto"
	"notes-backend/internal/entity"
	"notes-backend/internal/pkg/hasher"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/repository/contract"
	"notes-backend/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService() (IUserService, contract.UserRepository) {
	repo := memory.NewUserRepository()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	svc := NewUserService(
		repo,
		hasher.NewBcryptHasher(),
		NewPublisherService(pubSub, "RECORD_EVENTS"),
		nil,
		logger.NewNopLogger(),
	)
	return svc, repo
}

func boolPtr(b bool) *bool { return &b }

func TestUserService_CreateHashesPassword(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	user, err := svc.Create(ctx, &dto.UserPayload{
		Name:     "alice",
		Password: "s3cret-pass",
		Role:     "ADMIN",
		Active:   boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, entity.UserRoleAdmin, user.Role)
	assert.True(t, user.Active)

	stored, err := repo.FindByName(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
}

func TestUserService_GetMissingReturnsNil(t *testing.T) {
	svc, _ := newTestUserService()

	user, err := svc.GetByName(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_UpdateUpsertsMissingUser(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	// Unlike notes, updating an absent user writes a fresh record.
	user, err := svc.Update(ctx, "newcomer", &dto.UserPayload{
		Name:     "newcomer",
		Password: "password123",
		Role:     "USER",
		Active:   boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "newcomer", user.Name)
	assert.Equal(t, entity.UserRoleUser, user.Role)
	assert.False(t, user.Active)

	got, err := svc.GetByName(ctx, "newcomer")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestUserService_UpdateReplacesExisting(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.UserPayload{
		Name:     "bob",
		Password: "original-pass",
		Role:     "USER",
		Active:   boolPtr(true),
	})
	require.NoError(t, err)

	before, err := repo.FindByName(ctx, "bob")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "bob", &dto.UserPayload{
		Name:     "bob",
		Password: "rotated-pass",
		Role:     "ADMIN",
		Active:   boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleAdmin, updated.Role)
	assert.False(t, updated.Active)

	after, err := repo.FindByName(ctx, "bob")
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
}

func TestUserService_Delete(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.UserPayload{
		Name:     "temp",
		Password: "password123",
		Role:     "USER",
		Active:   boolPtr(true),
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, "temp")
	require.NoError(t, err)
	assert.True(t, deleted)

	// A second delete reports that nothing was removed.
	deleted, err = svc.Delete(ctx, "temp")
	require.NoError(t, err)
	assert.False(t, deleted)
}
