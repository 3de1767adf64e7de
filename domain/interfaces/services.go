package interfaces

import (
	"context"
	"time"

	"prospector/domain/entities"
	"prospector/domain/events"
)

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish publishes an event to all interested subscribers
	Publish(event events.Event) error
}

// PayoutService turns a base payout plus a user's active effects into the
// final payout to credit, consuming single-use and expired effects.
type PayoutService interface {
	// Resolve applies the user's effect ledger to one wager outcome. The
	// returned payout is never less than basePayout.
	Resolve(ctx context.Context, discordID int64, bet, basePayout int64, won bool) (int64, error)
}

// GoalDispatcher is the facade command flows call after an economic action:
// it refreshes the daily goal set, applies the event to every incomplete
// goal and credits completion bonuses directly onto the actor.
type GoalDispatcher interface {
	// Fire processes one economy event. The actor is mutated in place when
	// bonuses are credited; the event is returned for logging.
	Fire(ctx context.Context, actor entities.EconomyActor, event events.EconomyEvent) (events.EconomyEvent, error)

	// DailyGoals returns the actor's goal set for the given day, selecting a
	// fresh one when none exists for that day.
	DailyGoals(ctx context.Context, actor entities.EconomyActor, discordID int64, day time.Time) ([]*entities.GoalInstance, error)
}

// GameService runs the coin games end to end: validate the wager, roll the
// outcome, resolve effects, credit the account and feed the goal engine.
type GameService interface {
	// PlayCoinflip wagers on a fair coin. headsGuess is the player's call.
	PlayCoinflip(ctx context.Context, discordID int64, bet int64, headsGuess bool) (*entities.GameOutcome, error)

	// PlayRoll wagers on one die face out of six.
	PlayRoll(ctx context.Context, discordID int64, bet int64, prediction int) (*entities.GameOutcome, error)

	// FinishHigherLower settles a completed higher-or-lower run of the given
	// streak length.
	FinishHigherLower(ctx context.Context, discordID int64, streak int) (*entities.GameOutcome, error)
}

// ShopService sells catalog items and activates boost effects.
type ShopService interface {
	// Purchase buys one item, charging coins or gems, activating its effect
	// when it grants one, and firing a shop purchase event.
	Purchase(ctx context.Context, discordID int64, itemID string) (*entities.PurchaseResult, error)
}

// TransferService moves coins between accounts.
type TransferService interface {
	// Transfer sends coins from one user to another and fires a transfer
	// event for the sender.
	Transfer(ctx context.Context, fromDiscordID, toDiscordID, amount int64) (*entities.TransferResult, error)
}

// WorkService pays out the work/dig action.
type WorkService interface {
	// Work credits a work payday and fires a work event.
	Work(ctx context.Context, discordID int64) (*entities.WorkResult, error)
}
