package service

import (
	"context"
	"testing"

	"notes-backend/internal/dto"
	"notes-backend/internal/pkg/hasher"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) IAuthService {
	t.Helper()

	repo := memory.NewUserRepository()
	bcrypt := hasher.NewBcryptHasher()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	users := NewUserService(repo, bcrypt, NewPublisherService(pubSub, "RECORD_EVENTS"), nil, logger.NewNopLogger())

	active := true
	_, err := users.Create(context.Background(), &dto.UserPayload{
		Name:     "alice",
		Password: "correct-horse",
		Role:     "USER",
		Active:   &active,
	})
	require.NoError(t, err)

	return NewAuthService(repo, bcrypt, logger.NewNopLogger())
}

func TestAuthService_Validate(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	t.Run("correct pair is accepted", func(t *testing.T) {
		assert.True(t, svc.Validate(ctx, "alice", "correct-horse"))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		assert.False(t, svc.Validate(ctx, "alice", "wrong-horse"))
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		assert.False(t, svc.Validate(ctx, "mallory", "correct-horse"))
	})

	t.Run("empty pair is rejected", func(t *testing.T) {
		assert.False(t, svc.Validate(ctx, "", ""))
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, ok := svc.Authenticate(ctx, "alice", "correct-horse")
	require.True(t, ok)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Name)

	user, ok = svc.Authenticate(ctx, "alice", "nope")
	assert.False(t, ok)
	assert.Nil(t, user)
}
