package repository

import (
	"context"
	"testing"
	"time"

	"prospector/domain/entities"
	"prospector/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalRepository_ReplaceAndGet(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGoalRepository(testDB.DB)
	ctx := context.Background()
	today := time.Now().UTC()

	t.Run("empty set for unknown user", func(t *testing.T) {
		goals, err := repo.GetByUser(ctx, 999999)
		require.NoError(t, err)
		assert.Empty(t, goals)
	})

	t.Run("stores and reads a goal set", func(t *testing.T) {
		set := []*entities.GoalInstance{
			testutil.CreateTestGoal(123456, "work", 5, today),
			testutil.CreateTestGoal(123456, "lotto", 2, today),
		}
		set[0].Progress = 3

		require.NoError(t, repo.ReplaceForUser(ctx, 123456, set))

		goals, err := repo.GetByUser(ctx, 123456)
		require.NoError(t, err)
		require.Len(t, goals, 2)

		// Ordered by goal id
		assert.Equal(t, "lotto", goals[0].GoalID)
		assert.Equal(t, "work", goals[1].GoalID)
		assert.Equal(t, int64(3), goals[1].Progress)
		assert.Equal(t, int64(5), goals[1].Target)
		assert.True(t, goals[0].IsForDay(today))
	})

	t.Run("replace discards the previous set", func(t *testing.T) {
		tomorrow := today.AddDate(0, 0, 1)
		fresh := []*entities.GoalInstance{
			testutil.CreateTestGoal(123456, "gift", 1, tomorrow),
		}

		require.NoError(t, repo.ReplaceForUser(ctx, 123456, fresh))

		goals, err := repo.GetByUser(ctx, 123456)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, "gift", goals[0].GoalID)
		assert.True(t, goals[0].IsForDay(tomorrow))
	})

	t.Run("users do not see each other's goals", func(t *testing.T) {
		require.NoError(t, repo.ReplaceForUser(ctx, 777, []*entities.GoalInstance{
			testutil.CreateTestGoal(777, "work", 5, today),
		}))

		goals, err := repo.GetByUser(ctx, 123456)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, int64(123456), goals[0].UserID)
	})
}

func TestGoalRepository_DayRoundTripsAsUTCDate(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGoalRepository(testDB.DB)
	ctx := context.Background()

	// A timestamp deep into the day must come back as the same calendar day
	afternoon := time.Date(2026, 8, 28, 15, 42, 0, 0, time.UTC)
	require.NoError(t, repo.ReplaceForUser(ctx, 123456, []*entities.GoalInstance{
		testutil.CreateTestGoal(123456, "work", 5, afternoon),
	}))

	goals, err := repo.GetByUser(ctx, 123456)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, entities.UTCDay(afternoon), goals[0].Day)
}
