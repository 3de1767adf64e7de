package events

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeGameResult   EventType = "game_result"
	EventTypeShopPurchase EventType = "shop_purchase"
	EventTypeTransfer     EventType = "transfer"
	EventTypeWork         EventType = "work"

	EventTypeGoalCompleted       EventType = "goal_completed"
	EventTypeDailyGoalsCompleted EventType = "daily_goals_completed"
	EventTypeBalanceChange       EventType = "balance_change"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// EconomyEvent is an immutable record of one completed economic action,
// constructed by a caller after the raw payout was computed and applied.
// These are the events the goal dispatcher consumes.
type EconomyEvent interface {
	Event
	UserID() int64
}

// GameResultEvent records a completed wager. Payout is the amount actually
// credited and may be negative on a loss.
type GameResultEvent struct {
	GameID string
	User   int64
	Payout int64
}

// NewGameResultEvent creates a game result event.
func NewGameResultEvent(gameID string, userID, payout int64) GameResultEvent {
	return GameResultEvent{
		GameID: gameID,
		User:   userID,
		Payout: payout,
	}
}

func (e GameResultEvent) Type() EventType {
	return EventTypeGameResult
}

func (e GameResultEvent) UserID() int64 {
	return e.User
}

// Won reports whether the wager paid out.
func (e GameResultEvent) Won() bool {
	return e.Payout > 0
}

// ShopPurchaseEvent records a completed shop purchase.
type ShopPurchaseEvent struct {
	User   int64
	ItemID string
}

// NewShopPurchaseEvent creates a shop purchase event.
func NewShopPurchaseEvent(userID int64, itemID string) ShopPurchaseEvent {
	return ShopPurchaseEvent{
		User:   userID,
		ItemID: itemID,
	}
}

func (e ShopPurchaseEvent) Type() EventType {
	return EventTypeShopPurchase
}

func (e ShopPurchaseEvent) UserID() int64 {
	return e.User
}

// TransferEvent records coins sent to another user, attributed to the
// sender.
type TransferEvent struct {
	Amount int64
	Sender int64
}

// NewTransferEvent creates a transfer event.
func NewTransferEvent(amount, senderID int64) TransferEvent {
	return TransferEvent{
		Amount: amount,
		Sender: senderID,
	}
}

func (e TransferEvent) Type() EventType {
	return EventTypeTransfer
}

func (e TransferEvent) UserID() int64 {
	return e.Sender
}

// WorkEvent records one work or dig action.
type WorkEvent struct {
	User int64
}

// NewWorkEvent creates a work event.
func NewWorkEvent(userID int64) WorkEvent {
	return WorkEvent{User: userID}
}

func (e WorkEvent) Type() EventType {
	return EventTypeWork
}

func (e WorkEvent) UserID() int64 {
	return e.User
}

// GoalCompletedEvent represents a daily goal that reached its target
type GoalCompletedEvent struct {
	User   int64
	GoalID string
	Target int64
	Reward int64
}

func (e GoalCompletedEvent) Type() EventType {
	return EventTypeGoalCompleted
}

// DailyGoalsCompletedEvent represents a user finishing all goals for the day
type DailyGoalsCompletedEvent struct {
	User      int64
	GemReward int64
}

func (e DailyGoalsCompletedEvent) Type() EventType {
	return EventTypeDailyGoalsCompleted
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	User         int64
	OldBalance   int64
	NewBalance   int64
	ChangeAmount int64
	Reason       string
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}
