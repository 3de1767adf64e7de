package services

import (
	"context"
	"fmt"

	"prospector/domain/entities"
	"prospector/domain/events"
	"prospector/domain/interfaces"
)

type transferService struct {
	accountRepo    interfaces.AccountRepository
	dispatcher     interfaces.GoalDispatcher
	eventPublisher interfaces.EventPublisher
}

// NewTransferService creates a new transfer service
func NewTransferService(accountRepo interfaces.AccountRepository, dispatcher interfaces.GoalDispatcher, eventPublisher interfaces.EventPublisher) interfaces.TransferService {
	return &transferService{
		accountRepo:    accountRepo,
		dispatcher:     dispatcher,
		eventPublisher: eventPublisher,
	}
}

func (s *transferService) Transfer(ctx context.Context, fromDiscordID, toDiscordID, amount int64) (*entities.TransferResult, error) {
	// Validate inputs
	if amount <= 0 {
		return nil, fmt.Errorf("transfer amount must be positive")
	}
	if fromDiscordID == toDiscordID {
		return nil, fmt.Errorf("cannot transfer to yourself")
	}

	fromAccount, err := getOrCreateAccount(ctx, s.accountRepo, fromDiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender account: %w", err)
	}
	if !fromAccount.CanAfford(amount) {
		return nil, fmt.Errorf("insufficient balance: have %d, need %d", fromAccount.Coins(), amount)
	}

	toAccount, err := getOrCreateAccount(ctx, s.accountRepo, toDiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient account: %w", err)
	}

	fromOld := fromAccount.Coins()
	toOld := toAccount.Coins()

	fromAccount.AddCoins(-amount)
	toAccount.AddCoins(amount)

	// Only the sender's goals react to a transfer.
	if _, err := s.dispatcher.Fire(ctx, fromAccount, events.NewTransferEvent(amount, fromDiscordID)); err != nil {
		return nil, fmt.Errorf("failed to process goals: %w", err)
	}

	if err := s.accountRepo.Update(ctx, fromAccount); err != nil {
		return nil, fmt.Errorf("failed to update sender account: %w", err)
	}
	if err := s.accountRepo.Update(ctx, toAccount); err != nil {
		return nil, fmt.Errorf("failed to update recipient account: %w", err)
	}

	publishBalanceChange(s.eventPublisher, fromDiscordID, fromOld, fromAccount.Coins(), "transfer_out")
	publishBalanceChange(s.eventPublisher, toDiscordID, toOld, toAccount.Coins(), "transfer_in")

	return &entities.TransferResult{
		FromDiscordID:  fromDiscordID,
		ToDiscordID:    toDiscordID,
		Amount:         amount,
		FromNewBalance: fromAccount.Coins(),
		ToNewBalance:   toAccount.Coins(),
	}, nil
}
