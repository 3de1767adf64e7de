package interfaces

import (
	"context"

	"prospector/domain/entities"
)

// AccountRepository defines the interface for economy account data access
type AccountRepository interface {
	// GetByDiscordID retrieves an account by Discord ID, nil when absent
	GetByDiscordID(ctx context.Context, discordID int64) (*entities.Account, error)

	// Create creates a new account with the given starting balance
	Create(ctx context.Context, discordID int64, startingBalance int64) (*entities.Account, error)

	// Update persists the account's balances, level and prestige
	Update(ctx context.Context, account *entities.Account) error

	// GetAll returns all accounts
	GetAll(ctx context.Context) ([]*entities.Account, error)
}

// GoalRepository defines the interface for daily goal instance data access
type GoalRepository interface {
	// GetByUser returns the stored goal set for a user, possibly stale
	GetByUser(ctx context.Context, discordID int64) ([]*entities.GoalInstance, error)

	// ReplaceForUser atomically replaces the user's goal set
	ReplaceForUser(ctx context.Context, discordID int64, goals []*entities.GoalInstance) error
}

// EffectRepository defines the interface for active effect data access
type EffectRepository interface {
	// GetByUser returns all effect instances held by a user
	GetByUser(ctx context.Context, discordID int64) ([]*entities.EffectInstance, error)

	// Create stores a newly activated effect instance and assigns its ID
	Create(ctx context.Context, effect *entities.EffectInstance) error

	// Remove deletes a consumed or expired effect instance
	Remove(ctx context.Context, id int64) error
}
