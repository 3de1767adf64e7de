package entities

import "time"

// EffectInstance is one activated boost held by a user. A nil Expiry marks a
// single-use effect, consumed by the next payout resolution regardless of
// outcome; a non-nil Expiry marks a time-limited effect, valid until the
// wall clock reaches it.
type EffectInstance struct {
	ID       int64      `db:"id"`
	UserID   int64      `db:"discord_id"`
	ItemID   string     `db:"item_id"`
	Expiry   *time.Time `db:"expiry"`
	Activated time.Time `db:"activated_at"`
}

// NewEffectInstance creates an unsaved effect instance. expiry is nil for
// single-use effects.
func NewEffectInstance(userID int64, itemID string, expiry *time.Time) *EffectInstance {
	return &EffectInstance{
		UserID: userID,
		ItemID: itemID,
		Expiry: expiry,
	}
}

// SingleUse reports whether the effect is consumed on the next resolution.
func (e *EffectInstance) SingleUse() bool {
	return e.Expiry == nil
}

// Expired reports whether a time-limited effect has lapsed at the given
// instant. Single-use effects never expire on their own.
func (e *EffectInstance) Expired(now time.Time) bool {
	return e.Expiry != nil && !now.Before(*e.Expiry)
}
