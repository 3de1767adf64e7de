package entities

// EconomyActor is the capability set the economy engine requires from a
// per-user balance row: coin and gem balances plus the derived maximum
// allowed bet. Goal sizing functions and the dispatcher depend on this
// interface, never on a concrete table schema.
type EconomyActor interface {
	Coins() int64
	SetCoins(amount int64)
	AddCoins(amount int64)

	Gems() int64
	SetGems(amount int64)
	AddGems(amount int64)

	MaxBet() int64
}
