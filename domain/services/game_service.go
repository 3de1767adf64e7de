package services

import (
	"context"
	"fmt"
	"math/rand"

	"prospector/domain/catalog"
	"prospector/domain/entities"
	"prospector/domain/events"
	"prospector/domain/interfaces"
)

const (
	// jackpotOdds is the chance a winning coinflip pays the 5000x jackpot.
	jackpotOdds = 1.0 / 6000.0
	// jackpotMultiplier multiplies the stake on a jackpot coinflip.
	jackpotMultiplier = 5_000
	// rollSides is the number of faces on the dice-roll die.
	rollSides = 6
	// higherLowerBuyIn is the fixed stake for a higher-or-lower run.
	higherLowerBuyIn int64 = 1_000
)

type gameService struct {
	accountRepo    interfaces.AccountRepository
	payouts        interfaces.PayoutService
	dispatcher     interfaces.GoalDispatcher
	eventPublisher interfaces.EventPublisher
}

// NewGameService creates a new game service
func NewGameService(accountRepo interfaces.AccountRepository, payouts interfaces.PayoutService, dispatcher interfaces.GoalDispatcher, eventPublisher interfaces.EventPublisher) interfaces.GameService {
	return &gameService{
		accountRepo:    accountRepo,
		payouts:        payouts,
		dispatcher:     dispatcher,
		eventPublisher: eventPublisher,
	}
}

func (s *gameService) PlayCoinflip(ctx context.Context, discordID int64, bet int64, headsGuess bool) (*entities.GameOutcome, error) {
	account, err := getOrCreateAccount(ctx, s.accountRepo, discordID)
	if err != nil {
		return nil, err
	}
	if err := account.VerifyBet(bet); err != nil {
		return nil, err
	}

	heads := rand.Float64() < 0.5
	won := heads == headsGuess

	basePayout := -bet
	if won {
		basePayout = bet
		if rand.Float64() < jackpotOdds {
			basePayout = bet * jackpotMultiplier
		}
	}

	return s.settle(ctx, account, "coinflip", bet, basePayout, won)
}

func (s *gameService) PlayRoll(ctx context.Context, discordID int64, bet int64, prediction int) (*entities.GameOutcome, error) {
	if prediction < 1 || prediction > rollSides {
		return nil, fmt.Errorf("prediction must be between 1 and %d", rollSides)
	}

	account, err := getOrCreateAccount(ctx, s.accountRepo, discordID)
	if err != nil {
		return nil, err
	}
	if err := account.VerifyBet(bet); err != nil {
		return nil, err
	}

	roll := rand.Intn(rollSides) + 1
	won := roll == prediction

	basePayout := -bet
	if won {
		basePayout = bet * (rollSides - 1)
	}

	return s.settle(ctx, account, "roll", bet, basePayout, won)
}

func (s *gameService) FinishHigherLower(ctx context.Context, discordID int64, streak int) (*entities.GameOutcome, error) {
	if streak < 0 {
		return nil, fmt.Errorf("streak cannot be negative")
	}

	account, err := getOrCreateAccount(ctx, s.accountRepo, discordID)
	if err != nil {
		return nil, err
	}
	if !account.CanAfford(higherLowerBuyIn) {
		return nil, fmt.Errorf("insufficient coins for the %d coin buy-in", higherLowerBuyIn)
	}

	// The buy-in is the stake; every correct guess pays one step.
	account.AddCoins(-higherLowerBuyIn)
	basePayout := int64(streak) * higherLowerBuyIn
	won := streak > 0

	return s.settle(ctx, account, catalog.GameIDHigherLower, higherLowerBuyIn, basePayout, won)
}

// settle runs the shared tail of every game: resolve effects, credit the
// payout, feed the goal engine and persist the account.
func (s *gameService) settle(ctx context.Context, account *entities.Account, gameID string, bet, basePayout int64, won bool) (*entities.GameOutcome, error) {
	payout, err := s.payouts.Resolve(ctx, account.DiscordID, bet, basePayout, won)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve payout: %w", err)
	}

	oldBalance := account.Coins()
	account.AddCoins(payout)

	if _, err := s.dispatcher.Fire(ctx, account, events.NewGameResultEvent(gameID, account.DiscordID, payout)); err != nil {
		return nil, fmt.Errorf("failed to process goals: %w", err)
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	publishBalanceChange(s.eventPublisher, account.DiscordID, oldBalance, account.Coins(), gameID)

	return &entities.GameOutcome{
		GameID:     gameID,
		Bet:        bet,
		Won:        won,
		BasePayout: basePayout,
		Payout:     payout,
		NewBalance: account.Coins(),
	}, nil
}
