package testutil

import (
	"time"

	"prospector/domain/entities"
)

// CreateTestAccount creates a test account with default values
func CreateTestAccount(discordID int64) *entities.Account {
	now := time.Now()
	return &entities.Account{
		DiscordID:  discordID,
		Balance:    100000,
		GemBalance: 0,
		Level:      1,
		Prestige:   0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CreateTestAccountWithBalance creates a test account with a specific balance
func CreateTestAccountWithBalance(discordID int64, balance int64) *entities.Account {
	account := CreateTestAccount(discordID)
	account.Balance = balance
	return account
}

// CreateTestGoal creates a goal instance for the given day with no progress
func CreateTestGoal(discordID int64, goalID string, target int64, day time.Time) *entities.GoalInstance {
	return entities.NewGoalInstance(discordID, goalID, target, day)
}

// CreateTestEffect creates an active effect instance with a specific expiry
func CreateTestEffect(discordID int64, itemID string, expiry *time.Time) *entities.EffectInstance {
	return &entities.EffectInstance{
		UserID:    discordID,
		ItemID:    itemID,
		Expiry:    expiry,
		Activated: time.Now(),
	}
}
