package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"notes-backend/internal/entity"
	"notes-backend/internal/model"
	"notes-backend/internal/repository/implementation"
	"notes-backend/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormNoteRepository(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	require.NoError(t, database.Migrate(gormDB, &model.Note{}))

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	repo := implementation.NewNoteRepository(gormDB)
	ctx := context.Background()

	t.Run("Save and FindById", func(t *testing.T) {
		note := &entity.Note{
			Title:      "integration note",
			Content:    "written by the integration test",
			OwnerName:  "integration",
			OwnerEmail: "integration@example.com",
		}
		require.NoError(t, repo.Save(ctx, note))
		require.NotZero(t, note.Id)
		defer repo.DeleteById(ctx, note.Id)

		got, err := repo.FindById(ctx, note.Id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "integration note", got.Title)
	})

	t.Run("FindById missing returns nil", func(t *testing.T) {
		got, err := repo.FindById(ctx, -1)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("SaveAll batch", func(t *testing.T) {
		now := time.Now()
		notes := []*entity.Note{
			{Title: "batch-a", CreatedAt: now},
			{Title: "batch-b", CreatedAt: now},
			{Title: "batch-c", CreatedAt: now},
		}
		require.NoError(t, repo.SaveAll(ctx, notes))
		for _, n := range notes {
			assert.NotZero(t, n.Id)
			defer repo.DeleteById(ctx, n.Id)
		}
	})

	t.Run("Delete absent id succeeds", func(t *testing.T) {
		assert.NoError(t, repo.DeleteById(ctx, -1))
	})
}
