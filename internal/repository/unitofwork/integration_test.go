package unitofwork_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"lifehub-be/internal/entity"
	"lifehub-be/internal/repository/specification"
	"lifehub-be/internal/repository/unitofwork"
	"lifehub-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUnitOfWork(t *testing.T) {
	if err := godotenv.Load("../../../.env"); err != nil {
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

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	ctx := context.Background()
	userId := uuid.New()
	user := &entity.User{
		Id:           userId,
		Email:        "test-integration-" + uuid.NewString() + "@example.com",
		PasswordHash: "x",
		FirstName:    "Integration",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	defer uow.UserRepository().Delete(ctx, userId)

	t.Run("Note round trip", func(t *testing.T) {
		note := &entity.Note{
			Id:     uuid.New(),
			Data:   "integration note",
			Date:   time.Now(),
			UserId: userId,
		}
		require.NoError(t, uow.NoteRepository().Create(ctx, note))

		found, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "integration note", found.Data)

		missing, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: uuid.New()})
		require.NoError(t, err)
		assert.Nil(t, missing)

		require.NoError(t, uow.NoteRepository().Delete(ctx, note.Id))
	})

	t.Run("Goal max position and ordering", func(t *testing.T) {
		max, err := uow.RoadmapGoalRepository().MaxPosition(ctx, userId)
		require.NoError(t, err)
		assert.Equal(t, 0, max)

		for i := 1; i <= 2; i++ {
			goal := &entity.RoadmapGoal{
				Id:        uuid.New(),
				Title:     "integration goal",
				Position:  i,
				CreatedAt: time.Now(),
				UserId:    userId,
			}
			require.NoError(t, uow.RoadmapGoalRepository().Create(ctx, goal))
		}
		defer uow.RoadmapGoalRepository().DeleteAllByUserId(ctx, userId)

		max, err = uow.RoadmapGoalRepository().MaxPosition(ctx, userId)
		require.NoError(t, err)
		assert.Equal(t, 2, max)

		goals, err := uow.RoadmapGoalRepository().FindAll(ctx,
			specification.OwnedBy{UserID: userId},
			specification.OrderBy{Field: "position"},
		)
		require.NoError(t, err)
		require.Len(t, goals, 2)
		assert.Equal(t, 1, goals[0].Position)
	})

	t.Run("Transaction rollback", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))

		note := &entity.Note{
			Id:     uuid.New(),
			Data:   "rolled back",
			Date:   time.Now(),
			UserId: userId,
		}
		require.NoError(t, txUow.NoteRepository().Create(ctx, note))
		require.NoError(t, txUow.Rollback())

		found, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
