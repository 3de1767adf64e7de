package entities

// GameOutcome summarizes one finished wager after effects were applied.
type GameOutcome struct {
	GameID     string
	Bet        int64
	Won        bool
	BasePayout int64 // payout before active effects
	Payout     int64 // payout actually credited
	NewBalance int64
}

// Boosted reports whether active effects improved the payout.
func (o *GameOutcome) Boosted() bool {
	return o.Payout != o.BasePayout
}

// TransferResult summarizes a completed coin transfer.
type TransferResult struct {
	FromDiscordID  int64
	ToDiscordID    int64
	Amount         int64
	FromNewBalance int64
	ToNewBalance   int64
}

// WorkResult summarizes one work payday.
type WorkResult struct {
	Amount     int64
	NewBalance int64
}

// PurchaseResult summarizes a shop purchase.
type PurchaseResult struct {
	ItemID        string
	CoinsSpent    int64
	GemsSpent     int64
	NewCoins      int64
	NewGems       int64
	EffectGranted bool
}
