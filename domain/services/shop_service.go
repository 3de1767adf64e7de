package services

import (
	"context"
	"fmt"
	"time"

	"prospector/domain/catalog"
	"prospector/domain/entities"
	"prospector/domain/events"
	"prospector/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type shopService struct {
	accountRepo    interfaces.AccountRepository
	effectRepo     interfaces.EffectRepository
	shop           *catalog.ShopRegistry
	effects        *catalog.EffectRegistry
	dispatcher     interfaces.GoalDispatcher
	eventPublisher interfaces.EventPublisher
}

// NewShopService creates a new shop service
func NewShopService(
	accountRepo interfaces.AccountRepository,
	effectRepo interfaces.EffectRepository,
	shop *catalog.ShopRegistry,
	effects *catalog.EffectRegistry,
	dispatcher interfaces.GoalDispatcher,
	eventPublisher interfaces.EventPublisher,
) interfaces.ShopService {
	return &shopService{
		accountRepo:    accountRepo,
		effectRepo:     effectRepo,
		shop:           shop,
		effects:        effects,
		dispatcher:     dispatcher,
		eventPublisher: eventPublisher,
	}
}

func (s *shopService) Purchase(ctx context.Context, discordID int64, itemID string) (*entities.PurchaseResult, error) {
	item, ok := s.shop.Get(itemID)
	if !ok {
		return nil, fmt.Errorf("unknown shop item %q", itemID)
	}

	account, err := getOrCreateAccount(ctx, s.accountRepo, discordID)
	if err != nil {
		return nil, err
	}

	if item.CoinCost > 0 && !account.CanAfford(item.CoinCost) {
		return nil, fmt.Errorf("insufficient coins: need %d", item.CoinCost)
	}
	if item.GemCost > 0 && !account.CanAffordGems(item.GemCost) {
		return nil, fmt.Errorf("insufficient gems: need %d", item.GemCost)
	}

	oldBalance := account.Coins()
	account.AddCoins(-item.CoinCost)
	account.AddGems(-item.GemCost)

	if item.GrantsEffect() {
		// A catalog item pointing at a missing effect is a wiring bug, not
		// user error.
		definition := s.effects.MustGet(item.EffectID)

		var expiry *time.Time
		if !definition.SingleUse() {
			t := time.Now().UTC().Add(definition.Duration)
			expiry = &t
		}

		effect := entities.NewEffectInstance(discordID, definition.ID, expiry)
		if err := s.effectRepo.Create(ctx, effect); err != nil {
			return nil, fmt.Errorf("failed to activate effect: %w", err)
		}

		log.WithFields(log.Fields{
			"discordID": discordID,
			"itemID":    item.ID,
			"expiry":    expiry,
		}).Debug("Activated effect")
	}

	if _, err := s.dispatcher.Fire(ctx, account, events.NewShopPurchaseEvent(discordID, item.ID)); err != nil {
		return nil, fmt.Errorf("failed to process goals: %w", err)
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	if item.CoinCost > 0 {
		publishBalanceChange(s.eventPublisher, discordID, oldBalance, account.Coins(), "shop_purchase")
	}

	return &entities.PurchaseResult{
		ItemID:        item.ID,
		CoinsSpent:    item.CoinCost,
		GemsSpent:     item.GemCost,
		NewCoins:      account.Coins(),
		NewGems:       account.Gems(),
		EffectGranted: item.GrantsEffect(),
	}, nil
}
