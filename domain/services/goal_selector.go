package services

import (
	"context"
	"fmt"
	"time"

	"prospector/config"
	"prospector/domain/catalog"
	"prospector/domain/entities"
	"prospector/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// goalSelector resolves a user's goal set for a calendar day, drawing a
// fresh random set when none exists for that day. The stored day acts as the
// cache key: staleness is a date comparison, not a TTL.
type goalSelector struct {
	goalRepo interfaces.GoalRepository
	registry *catalog.GoalRegistry
}

func newGoalSelector(goalRepo interfaces.GoalRepository, registry *catalog.GoalRegistry) *goalSelector {
	return &goalSelector{
		goalRepo: goalRepo,
		registry: registry,
	}
}

// SelectOrRefresh returns the user's goal set for the given day. A stored
// set from an earlier day is replaced, not archived. Targets are sized from
// the actor's economy snapshot exactly once, at selection time.
func (s *goalSelector) SelectOrRefresh(ctx context.Context, actor entities.EconomyActor, discordID int64, day time.Time) ([]*entities.GoalInstance, error) {
	goals, err := s.goalRepo.GetByUser(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	if len(goals) > 0 && goals[0].IsForDay(day) {
		return goals, nil
	}

	cfg := config.Get()
	definitions := s.registry.SelectDaily(cfg.DailyGoalCount)

	fresh := make([]*entities.GoalInstance, 0, len(definitions))
	for _, def := range definitions {
		target := def.Target(actor)
		fresh = append(fresh, entities.NewGoalInstance(discordID, def.ID, target, day))
	}

	if err := s.goalRepo.ReplaceForUser(ctx, discordID, fresh); err != nil {
		return nil, fmt.Errorf("failed to store daily goals: %w", err)
	}

	log.WithFields(log.Fields{
		"discordID": discordID,
		"day":       entities.UTCDay(day).Format("2006-01-02"),
		"goals":     len(fresh),
	}).Debug("Selected fresh daily goals")

	return fresh, nil
}
