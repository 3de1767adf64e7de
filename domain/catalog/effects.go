package catalog

import (
	"fmt"
	"time"
)

// EffectCategory describes how an effect participates in payout resolution.
type EffectCategory string

const (
	// EffectCategoryRefund returns the lost stake when a wager loses.
	EffectCategoryRefund EffectCategory = "refund"
	// EffectCategoryReplace replaces the base payout outright. Retained for
	// ledgers persisted under older catalogs; the resolver consumes these
	// without applying a contribution.
	EffectCategoryReplace EffectCategory = "replace"
	// EffectCategoryAccumulate adds its transformed payout to the running
	// total, compared against the base payout at the end.
	EffectCategoryAccumulate EffectCategory = "accumulate"
)

// EffectFunc transforms a wager into an effect's payout contribution. The
// function owns sign handling: a multiplier must pass losses through
// untouched.
type EffectFunc func(bet, basePayout int64) int64

// EffectDefinition is one purchasable boost in the static catalog.
type EffectDefinition struct {
	ID       string
	Name     string
	Category EffectCategory
	// Duration is how long the effect stays active once used. Zero means
	// single use: the instance is consumed by the next resolution.
	Duration time.Duration
	Effect   EffectFunc
}

// SingleUse reports whether instances of this effect are consumed on first
// resolution.
func (d EffectDefinition) SingleUse() bool {
	return d.Duration == 0
}

// EffectRegistry is an immutable id-indexed catalog of effect definitions,
// built once at startup and injected into the services that need it.
type EffectRegistry struct {
	defs map[string]EffectDefinition
}

// NewEffectRegistry builds a registry from the given definitions.
func NewEffectRegistry(defs ...EffectDefinition) *EffectRegistry {
	m := make(map[string]EffectDefinition, len(defs))
	for _, def := range defs {
		m[def.ID] = def
	}
	return &EffectRegistry{defs: m}
}

// Get returns the definition for an effect id.
func (r *EffectRegistry) Get(id string) (EffectDefinition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// MustGet returns the definition for an effect id and panics on a miss.
// Effect ids are only ever minted from the registry itself, so a miss is a
// programming error.
func (r *EffectRegistry) MustGet(id string) EffectDefinition {
	def, ok := r.defs[id]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown effect id %q", id))
	}
	return def
}

// Len returns the number of registered definitions.
func (r *EffectRegistry) Len() int {
	return len(r.defs)
}

// payoutMultiplier builds the effect function shared by all payout
// multiplier boosts: losses pass through, wins are multiplied.
func payoutMultiplier(factor int64) EffectFunc {
	return func(_, basePayout int64) int64 {
		if basePayout < 0 {
			return basePayout
		}
		return basePayout * factor
	}
}

// DefaultEffects returns the standard boost catalog.
func DefaultEffects() []EffectDefinition {
	return []EffectDefinition{
		{
			ID:       "luckychip",
			Name:     "Lucky Chip",
			Category: EffectCategoryRefund,
			Effect: func(bet, _ int64) int64 {
				return bet
			},
		},
		{
			ID:       "payout2x",
			Name:     "Payout x2",
			Category: EffectCategoryAccumulate,
			Duration: 15 * time.Minute,
			Effect:   payoutMultiplier(2),
		},
		{
			ID:       "payout5x",
			Name:     "Payout x5",
			Category: EffectCategoryAccumulate,
			Duration: 10 * time.Minute,
			Effect:   payoutMultiplier(5),
		},
		{
			ID:       "payout10x",
			Name:     "Payout x10",
			Category: EffectCategoryAccumulate,
			Duration: 5 * time.Minute,
			Effect:   payoutMultiplier(10),
		},
		{
			ID:       "payout50x",
			Name:     "Payout x50",
			Category: EffectCategoryAccumulate,
			Duration: 2 * time.Minute,
			Effect:   payoutMultiplier(50),
		},
		{
			ID:       "payout100x",
			Name:     "Payout x100",
			Category: EffectCategoryAccumulate,
			Duration: time.Minute,
			Effect:   payoutMultiplier(100),
		},
	}
}

// NewDefaultEffectRegistry builds a registry holding the standard catalog.
func NewDefaultEffectRegistry() *EffectRegistry {
	return NewEffectRegistry(DefaultEffects()...)
}
