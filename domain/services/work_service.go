package services

import (
	"context"
	"fmt"
	"math/rand"

	"prospector/domain/entities"
	"prospector/domain/events"
	"prospector/domain/interfaces"
)

const (
	workPayoutMin int64 = 100
	workPayoutMax int64 = 500
)

type workService struct {
	accountRepo    interfaces.AccountRepository
	dispatcher     interfaces.GoalDispatcher
	eventPublisher interfaces.EventPublisher
}

// NewWorkService creates a new work service
func NewWorkService(accountRepo interfaces.AccountRepository, dispatcher interfaces.GoalDispatcher, eventPublisher interfaces.EventPublisher) interfaces.WorkService {
	return &workService{
		accountRepo:    accountRepo,
		dispatcher:     dispatcher,
		eventPublisher: eventPublisher,
	}
}

func (s *workService) Work(ctx context.Context, discordID int64) (*entities.WorkResult, error) {
	account, err := getOrCreateAccount(ctx, s.accountRepo, discordID)
	if err != nil {
		return nil, err
	}

	// Base payday plus a small per-level bonus.
	amount := workPayoutMin + rand.Int63n(workPayoutMax-workPayoutMin+1)
	amount += int64(account.Level) * 10

	oldBalance := account.Coins()
	account.AddCoins(amount)

	if _, err := s.dispatcher.Fire(ctx, account, events.NewWorkEvent(discordID)); err != nil {
		return nil, fmt.Errorf("failed to process goals: %w", err)
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	publishBalanceChange(s.eventPublisher, discordID, oldBalance, account.Coins(), "work")

	return &entities.WorkResult{
		Amount:     amount,
		NewBalance: account.Coins(),
	}, nil
}
