package services

import (
	"context"
	"fmt"

	"prospector/config"
	"prospector/domain/entities"
	"prospector/domain/events"
	"prospector/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// getOrCreateAccount loads a user's account, creating one with the starting
// balance on first contact.
func getOrCreateAccount(ctx context.Context, repo interfaces.AccountRepository, discordID int64) (*entities.Account, error) {
	account, err := repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if account == nil {
		account, err = repo.Create(ctx, discordID, config.Get().StartingBalance)
		if err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
	}

	return account, nil
}

// publishBalanceChange emits a balance change event. Publish failures are
// logged, never propagated: the balance mutation already happened.
func publishBalanceChange(publisher interfaces.EventPublisher, discordID, oldBalance, newBalance int64, reason string) {
	event := events.BalanceChangeEvent{
		User:         discordID,
		OldBalance:   oldBalance,
		NewBalance:   newBalance,
		ChangeAmount: newBalance - oldBalance,
		Reason:       reason,
	}

	if err := publisher.Publish(event); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"discordID": discordID,
			"reason":    reason,
		}).Error("Failed to publish balance change event")
	}
}
