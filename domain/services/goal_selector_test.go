package services

import (
	"context"
	"testing"
	"time"

	"prospector/config"
	"prospector/domain/catalog"
	"prospector/domain/entities"
	"prospector/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGoalSelector_ReturnsStoredSetForSameDay(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	today := time.Now().UTC()

	mockGoalRepo := new(testhelpers.MockGoalRepository)
	selector := newGoalSelector(mockGoalRepo, catalog.NewDefaultGoalRegistry())

	actor := entities.NewAccount(123456, 10000)
	stored := []*entities.GoalInstance{
		entities.NewGoalInstance(123456, "work", 5, today),
	}
	stored[0].Progress = 3

	mockGoalRepo.On("GetByUser", ctx, int64(123456)).Return(stored, nil)

	goals, err := selector.SelectOrRefresh(ctx, actor, 123456, today)
	require.NoError(t, err)

	// Same day: the stored set comes back with progress intact
	assert.Equal(t, stored, goals)
	mockGoalRepo.AssertNotCalled(t, "ReplaceForUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestGoalSelector_RefreshesStaleSet(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	today := time.Now().UTC()
	yesterday := today.AddDate(0, 0, -1)

	mockGoalRepo := new(testhelpers.MockGoalRepository)
	selector := newGoalSelector(mockGoalRepo, catalog.NewDefaultGoalRegistry())

	actor := entities.NewAccount(123456, 10000)
	stale := []*entities.GoalInstance{
		entities.NewGoalInstance(123456, "work", 5, yesterday),
	}
	stale[0].Complete()

	mockGoalRepo.On("GetByUser", ctx, int64(123456)).Return(stale, nil)
	mockGoalRepo.On("ReplaceForUser", ctx, int64(123456), mock.MatchedBy(func(goals []*entities.GoalInstance) bool {
		if len(goals) != 3 {
			return false
		}
		for _, goal := range goals {
			if goal.Progress != 0 || !goal.IsForDay(today) {
				return false
			}
		}
		return true
	})).Return(nil)

	goals, err := selector.SelectOrRefresh(ctx, actor, 123456, today)
	require.NoError(t, err)

	assert.Len(t, goals, 3)

	// Drawn without replacement
	seen := make(map[string]bool)
	for _, goal := range goals {
		assert.False(t, seen[goal.GoalID], "goal %s selected twice", goal.GoalID)
		seen[goal.GoalID] = true
	}

	mockGoalRepo.AssertExpectations(t)
}

func TestGoalSelector_SelectsFreshSetForNewUser(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	today := time.Now().UTC()

	mockGoalRepo := new(testhelpers.MockGoalRepository)
	selector := newGoalSelector(mockGoalRepo, catalog.NewDefaultGoalRegistry())

	actor := entities.NewAccount(123456, 10000)

	mockGoalRepo.On("GetByUser", ctx, int64(123456)).Return([]*entities.GoalInstance{}, nil)
	mockGoalRepo.On("ReplaceForUser", ctx, int64(123456), mock.Anything).Return(nil)

	goals, err := selector.SelectOrRefresh(ctx, actor, 123456, today)
	require.NoError(t, err)
	assert.Len(t, goals, 3)

	// Targets were frozen from the actor snapshot at selection time
	for _, goal := range goals {
		assert.Positive(t, goal.Target, "goal %s has no target", goal.GoalID)
	}

	mockGoalRepo.AssertExpectations(t)
}
