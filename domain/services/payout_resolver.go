package services

import (
	"context"
	"fmt"
	"time"

	"prospector/domain/catalog"
	"prospector/domain/entities"
	"prospector/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// Resolution is the outcome of applying an effect ledger to one wager.
type Resolution struct {
	// Payout is the final amount to credit. Never less than the base payout.
	Payout int64
	// Removed lists the ids of effect instances consumed by this resolution,
	// whether spent or expired.
	Removed []int64
}

// ResolveLedger applies the canonical effect policy to an in-memory ledger:
//
//  1. The first refund effect found is always consumed; on a loss it credits
//     the lost stake back.
//  2. Expired instances are consumed without contributing. Single-use
//     instances are consumed but still contribute once.
//  3. Accumulating effects add their transformed payout on wins.
//  4. When anything contributed, the result is floored at the base payout;
//     effects can only improve the outcome, never worsen it.
//
// The function does not touch storage; callers remove the returned instance
// ids themselves.
func ResolveLedger(registry *catalog.EffectRegistry, ledger []*entities.EffectInstance, bet, basePayout int64, won bool, now time.Time) Resolution {
	if len(ledger) == 0 {
		return Resolution{Payout: basePayout}
	}

	marked := make(map[int64]bool, len(ledger))
	var removed []int64
	mark := func(id int64) {
		if !marked[id] {
			marked[id] = true
			removed = append(removed, id)
		}
	}

	var accumulated int64
	applied := false

	// Refund on loss: the first refund instance is consumed regardless of
	// outcome, but only a loss credits the stake back.
	for _, effect := range ledger {
		def, ok := registry.Get(effect.ItemID)
		if !ok || def.Category != catalog.EffectCategoryRefund {
			continue
		}

		mark(effect.ID)
		if !won {
			accumulated = def.Effect(bet, basePayout)
			applied = true
		}
		break
	}

	for _, effect := range ledger {
		if marked[effect.ID] {
			continue
		}

		def, ok := registry.Get(effect.ItemID)
		if !ok {
			// Persisted ledgers may reference effects retired from the
			// catalog; consume them so they stop resurfacing.
			log.WithFields(log.Fields{
				"effectID": effect.ID,
				"itemID":   effect.ItemID,
			}).Warn("Removing effect with unknown item id")
			mark(effect.ID)
			continue
		}

		if effect.Expired(now) {
			mark(effect.ID)
			continue
		}

		if effect.SingleUse() {
			mark(effect.ID)
		}

		if def.Category == catalog.EffectCategoryAccumulate && won {
			accumulated += def.Effect(bet, basePayout)
			applied = true
		}
	}

	payout := basePayout
	if applied && accumulated > basePayout {
		payout = accumulated
	}

	return Resolution{Payout: payout, Removed: removed}
}

// payoutService loads a user's ledger, resolves it against one wager and
// removes the consumed instances.
type payoutService struct {
	effectRepo interfaces.EffectRepository
	registry   *catalog.EffectRegistry
}

// NewPayoutService creates a new payout service
func NewPayoutService(effectRepo interfaces.EffectRepository, registry *catalog.EffectRegistry) interfaces.PayoutService {
	return &payoutService{
		effectRepo: effectRepo,
		registry:   registry,
	}
}

func (s *payoutService) Resolve(ctx context.Context, discordID int64, bet, basePayout int64, won bool) (int64, error) {
	ledger, err := s.effectRepo.GetByUser(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("failed to load effects: %w", err)
	}

	resolution := ResolveLedger(s.registry, ledger, bet, basePayout, won, time.Now().UTC())

	for _, id := range resolution.Removed {
		if err := s.effectRepo.Remove(ctx, id); err != nil {
			return 0, fmt.Errorf("failed to remove effect %d: %w", id, err)
		}
	}

	if resolution.Payout != basePayout {
		log.WithFields(log.Fields{
			"discordID":  discordID,
			"basePayout": basePayout,
			"payout":     resolution.Payout,
			"consumed":   len(resolution.Removed),
		}).Debug("Effects boosted payout")
	}

	return resolution.Payout, nil
}
