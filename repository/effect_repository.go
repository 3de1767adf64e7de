package repository

import (
	"context"
	"fmt"

	"prospector/database"
	"prospector/domain/entities"
	"prospector/domain/interfaces"
)

type effectRepository struct {
	q Queryable
}

// NewEffectRepository creates a new effect repository
func NewEffectRepository(db *database.DB) interfaces.EffectRepository {
	return &effectRepository{q: db.Pool}
}

// NewEffectRepositoryScoped creates a new effect repository bound to a transaction
func NewEffectRepositoryScoped(tx Queryable) interfaces.EffectRepository {
	return &effectRepository{q: tx}
}

// GetByUser returns all effect instances held by a user, oldest first
func (r *effectRepository) GetByUser(ctx context.Context, discordID int64) ([]*entities.EffectInstance, error) {
	query := `
		SELECT id, discord_id, item_id, expiry, activated_at
		FROM effect_instances
		WHERE discord_id = $1
		ORDER BY activated_at, id
	`

	rows, err := r.q.Query(ctx, query, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query effects: %w", err)
	}
	defer rows.Close()

	var effects []*entities.EffectInstance
	for rows.Next() {
		var effect entities.EffectInstance
		if err := rows.Scan(
			&effect.ID,
			&effect.UserID,
			&effect.ItemID,
			&effect.Expiry,
			&effect.Activated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan effect: %w", err)
		}
		effects = append(effects, &effect)
	}

	return effects, rows.Err()
}

// Create stores a newly activated effect instance and assigns its ID
func (r *effectRepository) Create(ctx context.Context, effect *entities.EffectInstance) error {
	query := `
		INSERT INTO effect_instances (discord_id, item_id, expiry)
		VALUES ($1, $2, $3)
		RETURNING id, activated_at
	`

	err := r.q.QueryRow(ctx, query,
		effect.UserID,
		effect.ItemID,
		effect.Expiry,
	).Scan(&effect.ID, &effect.Activated)
	if err != nil {
		return fmt.Errorf("failed to create effect: %w", err)
	}

	return nil
}

// Remove deletes a consumed or expired effect instance. Removing an id that
// is already gone is not an error.
func (r *effectRepository) Remove(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM effect_instances WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to remove effect: %w", err)
	}

	return nil
}
