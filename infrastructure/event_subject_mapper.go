package infrastructure

import (
	"fmt"

	"prospector/domain/events"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeGameResult:
		return "economy.game.resolved"
	case events.EventTypeShopPurchase:
		return "economy.shop.purchased"
	case events.EventTypeTransfer:
		return "economy.transfer.sent"
	case events.EventTypeWork:
		return "economy.work.performed"
	case events.EventTypeGoalCompleted:
		return "goals.completed"
	case events.EventTypeDailyGoalsCompleted:
		return "goals.daily.all_completed"
	case events.EventTypeBalanceChange:
		return "users.balance_changed"
	default:
		// Fallback for unknown event types
		return fmt.Sprintf("unknown.%s", event.Type())
	}
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	switch subject {
	case "economy.game.resolved":
		return events.EventTypeGameResult
	case "economy.shop.purchased":
		return events.EventTypeShopPurchase
	case "economy.transfer.sent":
		return events.EventTypeTransfer
	case "economy.work.performed":
		return events.EventTypeWork
	case "goals.completed":
		return events.EventTypeGoalCompleted
	case "goals.daily.all_completed":
		return events.EventTypeDailyGoalsCompleted
	case "users.balance_changed":
		return events.EventTypeBalanceChange
	default:
		return events.EventType(subject)
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"economy.game.resolved",
		"economy.shop.purchased",
		"economy.transfer.sent",
		"economy.work.performed",
		"goals.completed",
		"goals.daily.all_completed",
		"users.balance_changed",
	}
}
