package services

import (
	"context"
	"fmt"
	"time"

	"prospector/config"
	"prospector/domain/catalog"
	"prospector/domain/entities"
	"prospector/domain/events"
	"prospector/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// goalDispatcher runs the goal tracking engine: it refreshes the daily goal
// set, feeds one economy event to every incomplete goal and credits
// completion bonuses onto the actor.
type goalDispatcher struct {
	goalRepo       interfaces.GoalRepository
	registry       *catalog.GoalRegistry
	eventPublisher interfaces.EventPublisher
	selector       *goalSelector
}

// NewGoalDispatcher creates a new goal dispatcher
func NewGoalDispatcher(goalRepo interfaces.GoalRepository, registry *catalog.GoalRegistry, eventPublisher interfaces.EventPublisher) interfaces.GoalDispatcher {
	return &goalDispatcher{
		goalRepo:       goalRepo,
		registry:       registry,
		eventPublisher: eventPublisher,
		selector:       newGoalSelector(goalRepo, registry),
	}
}

// DailyGoals returns the actor's goal set for the given day, selecting a
// fresh set when the stored one is missing or stale.
func (d *goalDispatcher) DailyGoals(ctx context.Context, actor entities.EconomyActor, discordID int64, day time.Time) ([]*entities.GoalInstance, error) {
	return d.selector.SelectOrRefresh(ctx, actor, discordID, day)
}

// Fire processes one economy event against the acting user's daily goals.
// Each goal newly completed by this call credits the per-goal coin bonus;
// the call that completes the last remaining goal additionally credits the
// all-goals gem bonus. The goal set is persisted only when something
// changed.
func (d *goalDispatcher) Fire(ctx context.Context, actor entities.EconomyActor, event events.EconomyEvent) (events.EconomyEvent, error) {
	discordID := event.UserID()

	goals, err := d.selector.SelectOrRefresh(ctx, actor, discordID, time.Now().UTC())
	if err != nil {
		return event, err
	}

	var changed []*entities.GoalInstance
	for _, goal := range goals {
		if goal.IsComplete() {
			continue
		}

		definition, ok := d.registry.Get(goal.GoalID)
		if !ok {
			// Retired goal id in a persisted row; leave it alone.
			continue
		}

		if definition.Update(goal, event) {
			changed = append(changed, goal)
		}
	}

	cfg := config.Get()

	for _, goal := range changed {
		if !goal.IsComplete() {
			continue
		}

		actor.AddCoins(cfg.GoalReward)

		log.WithFields(log.Fields{
			"discordID": discordID,
			"goalID":    goal.GoalID,
			"target":    goal.Target,
			"reward":    cfg.GoalReward,
		}).Info("Daily goal completed")

		d.publish(events.GoalCompletedEvent{
			User:   discordID,
			GoalID: goal.GoalID,
			Target: goal.Target,
			Reward: cfg.GoalReward,
		})
	}

	if len(changed) > 0 {
		if allComplete(goals) {
			actor.AddGems(cfg.AllGoalsGemReward)

			log.WithFields(log.Fields{
				"discordID": discordID,
				"gems":      cfg.AllGoalsGemReward,
			}).Info("All daily goals completed")

			d.publish(events.DailyGoalsCompletedEvent{
				User:      discordID,
				GemReward: cfg.AllGoalsGemReward,
			})
		}

		if err := d.goalRepo.ReplaceForUser(ctx, discordID, goals); err != nil {
			return event, fmt.Errorf("failed to store goal progress: %w", err)
		}
	}

	return event, nil
}

func (d *goalDispatcher) publish(event events.Event) {
	if err := d.eventPublisher.Publish(event); err != nil {
		log.WithError(err).Error("Failed to publish goal event")
	}
}

func allComplete(goals []*entities.GoalInstance) bool {
	for _, goal := range goals {
		if !goal.IsComplete() {
			return false
		}
	}
	return true
}
