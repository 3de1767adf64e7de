package services

import (
	"context"
	"testing"

	"prospector/config"
	"prospector/domain/catalog"
	"prospector/domain/entities"
	"prospector/domain/events"
	"prospector/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShopServiceFixture() (*shopService, *testhelpers.MockAccountRepository, *testhelpers.MockEffectRepository, *testhelpers.MockGoalDispatcher, *testhelpers.MockEventPublisher) {
	mockAccountRepo := new(testhelpers.MockAccountRepository)
	mockEffectRepo := new(testhelpers.MockEffectRepository)
	mockDispatcher := new(testhelpers.MockGoalDispatcher)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewShopService(
		mockAccountRepo,
		mockEffectRepo,
		catalog.NewDefaultShopRegistry(),
		catalog.NewDefaultEffectRegistry(),
		mockDispatcher,
		mockEventPublisher,
	).(*shopService)

	return service, mockAccountRepo, mockEffectRepo, mockDispatcher, mockEventPublisher
}

func TestShopService_Purchase_CoinItem(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, mockEffectRepo, mockDispatcher, mockEventPublisher := newShopServiceFixture()

	account := &entities.Account{DiscordID: 123456, Balance: 10000, Level: 1}

	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(account, nil)
	mockDispatcher.On("Fire", ctx, account, mock.MatchedBy(func(e events.EconomyEvent) bool {
		purchase, ok := e.(events.ShopPurchaseEvent)
		return ok && purchase.ItemID == catalog.ItemLottoTicket
	})).Return(nil, nil)
	mockAccountRepo.On("Update", ctx, account).Return(nil)
	mockEventPublisher.On("Publish", mock.AnythingOfType("events.BalanceChangeEvent")).Return(nil)

	result, err := service.Purchase(ctx, 123456, catalog.ItemLottoTicket)
	require.NoError(t, err)

	assert.Equal(t, int64(5000), result.CoinsSpent)
	assert.Equal(t, int64(5000), result.NewCoins)
	assert.False(t, result.EffectGranted)

	mockEffectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockAccountRepo.AssertExpectations(t)
	mockDispatcher.AssertExpectations(t)
}

func TestShopService_Purchase_TimedBoost(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, mockEffectRepo, mockDispatcher, _ := newShopServiceFixture()

	account := &entities.Account{DiscordID: 123456, Balance: 10000, GemBalance: 10, Level: 1}

	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(account, nil)
	mockEffectRepo.On("Create", ctx, mock.MatchedBy(func(e *entities.EffectInstance) bool {
		return e.UserID == 123456 && e.ItemID == "payout5x" && e.Expiry != nil
	})).Return(nil)
	mockDispatcher.On("Fire", ctx, account, mock.Anything).Return(nil, nil)
	mockAccountRepo.On("Update", ctx, account).Return(nil)

	result, err := service.Purchase(ctx, 123456, "payout5x")
	require.NoError(t, err)

	assert.True(t, result.EffectGranted)
	assert.Equal(t, int64(5), result.GemsSpent)
	assert.Equal(t, int64(5), result.NewGems)
	assert.Equal(t, int64(10000), result.NewCoins, "boosts cost gems, not coins")

	mockEffectRepo.AssertExpectations(t)
}

func TestShopService_Purchase_SingleUseBoost(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, mockEffectRepo, mockDispatcher, _ := newShopServiceFixture()

	account := &entities.Account{DiscordID: 123456, Balance: 10000, GemBalance: 3, Level: 1}

	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(account, nil)
	mockEffectRepo.On("Create", ctx, mock.MatchedBy(func(e *entities.EffectInstance) bool {
		// A lucky chip has no expiry: it lives until the next wager
		return e.ItemID == "luckychip" && e.Expiry == nil
	})).Return(nil)
	mockDispatcher.On("Fire", ctx, account, mock.Anything).Return(nil, nil)
	mockAccountRepo.On("Update", ctx, account).Return(nil)

	result, err := service.Purchase(ctx, 123456, "luckychip")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.NewGems)

	mockEffectRepo.AssertExpectations(t)
}

func TestShopService_Purchase_UnknownItem(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, _, _, _, _ := newShopServiceFixture()

	_, err := service.Purchase(ctx, 123456, "nosuchitem")
	assert.ErrorContains(t, err, "unknown shop item")
}

func TestShopService_Purchase_InsufficientCoins(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, _, _, _ := newShopServiceFixture()

	account := &entities.Account{DiscordID: 123456, Balance: 100, Level: 1}
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(account, nil)

	_, err := service.Purchase(ctx, 123456, catalog.ItemLottoTicket)
	assert.ErrorContains(t, err, "insufficient coins")
}

func TestShopService_Purchase_InsufficientGems(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, _, _, _ := newShopServiceFixture()

	account := &entities.Account{DiscordID: 123456, Balance: 10000, GemBalance: 1, Level: 1}
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(account, nil)

	_, err := service.Purchase(ctx, 123456, "payout100x")
	assert.ErrorContains(t, err, "insufficient gems")
}
