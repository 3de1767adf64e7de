package entities

import (
	"errors"
	"fmt"
	"time"
)

// MinBet is the smallest wager any game accepts.
const MinBet int64 = 1

// Account represents a user's economy state: coin and gem balances plus the
// level/prestige pair the bet ceiling is derived from.
type Account struct {
	DiscordID  int64     `db:"discord_id"`
	Balance    int64     `db:"balance"`
	GemBalance int64     `db:"gems"`
	Level      int32     `db:"level"`
	Prestige   int64     `db:"prestige"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// NewAccount creates an account with the given starting balance.
func NewAccount(discordID, startingBalance int64) *Account {
	return &Account{
		DiscordID: discordID,
		Balance:   startingBalance,
	}
}

func (a *Account) Coins() int64 {
	return a.Balance
}

func (a *Account) SetCoins(amount int64) {
	a.Balance = amount
}

func (a *Account) AddCoins(amount int64) {
	a.Balance += amount
}

func (a *Account) Gems() int64 {
	return a.GemBalance
}

func (a *Account) SetGems(amount int64) {
	a.GemBalance = amount
}

func (a *Account) AddGems(amount int64) {
	a.GemBalance += amount
}

// MaxBet returns the bet ceiling derived from level and prestige. Each level
// raises the base by 10k coins; prestige adds 10% per rank on top.
func (a *Account) MaxBet() int64 {
	base := int64(a.Level) * 10_000
	if base < 10_000 {
		base = 10_000
	}

	return base * (10 + a.Prestige) / 10
}

// CanAfford checks if the account holds at least the given amount of coins.
func (a *Account) CanAfford(amount int64) bool {
	return a.Balance >= amount
}

// CanAffordGems checks if the account holds at least the given amount of gems.
func (a *Account) CanAffordGems(amount int64) bool {
	return a.GemBalance >= amount
}

// VerifyBet validates a wager against the minimum, the level-derived ceiling
// and the current balance.
func (a *Account) VerifyBet(bet int64) error {
	if bet < MinBet {
		return fmt.Errorf("minimum bet is %d coins", MinBet)
	}
	if max := a.MaxBet(); bet > max {
		return fmt.Errorf("maximum bet is %d coins", max)
	}
	if !a.CanAfford(bet) {
		return errors.New("insufficient coins for this bet")
	}
	return nil
}
