package repository

import (
	"context"
	"fmt"
	"time"

	"prospector/database"
	"prospector/domain/entities"
	"prospector/domain/interfaces"
)

type goalRepository struct {
	q Queryable
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *database.DB) interfaces.GoalRepository {
	return &goalRepository{q: db.Pool}
}

// NewGoalRepositoryScoped creates a new goal repository bound to a transaction
func NewGoalRepositoryScoped(tx Queryable) interfaces.GoalRepository {
	return &goalRepository{q: tx}
}

// GetByUser returns the stored goal set for a user. The set may belong to an
// earlier day; staleness is the caller's concern.
func (r *goalRepository) GetByUser(ctx context.Context, discordID int64) ([]*entities.GoalInstance, error) {
	query := `
		SELECT discord_id, goal_id, day, progress, target
		FROM goal_instances
		WHERE discord_id = $1
		ORDER BY goal_id
	`

	rows, err := r.q.Query(ctx, query, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []*entities.GoalInstance
	for rows.Next() {
		var goal entities.GoalInstance
		var day time.Time
		if err := rows.Scan(
			&goal.UserID,
			&goal.GoalID,
			&day,
			&goal.Progress,
			&goal.Target,
		); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goal.Day = entities.UTCDay(day)
		goals = append(goals, &goal)
	}

	return goals, rows.Err()
}

// ReplaceForUser atomically replaces the user's goal set. Yesterday's rows
// are discarded, not archived.
func (r *goalRepository) ReplaceForUser(ctx context.Context, discordID int64, goals []*entities.GoalInstance) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM goal_instances WHERE discord_id = $1`, discordID); err != nil {
		return fmt.Errorf("failed to clear goals: %w", err)
	}

	query := `
		INSERT INTO goal_instances (discord_id, goal_id, day, progress, target)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, goal := range goals {
		if _, err := r.q.Exec(ctx, query,
			goal.UserID,
			goal.GoalID,
			goal.Day,
			goal.Progress,
			goal.Target,
		); err != nil {
			return fmt.Errorf("failed to insert goal %s: %w", goal.GoalID, err)
		}
	}

	return nil
}
