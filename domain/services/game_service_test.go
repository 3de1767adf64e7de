package services

import (
	"context"
	"testing"

	"prospector/config"
	"prospector/domain/entities"
	"prospector/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGameServiceFixture() (*gameService, *testhelpers.MockAccountRepository, *testhelpers.MockPayoutService, *testhelpers.MockGoalDispatcher, *testhelpers.MockEventPublisher) {
	mockAccountRepo := new(testhelpers.MockAccountRepository)
	mockPayouts := new(testhelpers.MockPayoutService)
	mockDispatcher := new(testhelpers.MockGoalDispatcher)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewGameService(mockAccountRepo, mockPayouts, mockDispatcher, mockEventPublisher).(*gameService)
	return service, mockAccountRepo, mockPayouts, mockDispatcher, mockEventPublisher
}

func TestGameService_FinishHigherLower_Win(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, mockPayouts, mockDispatcher, mockEventPublisher := newGameServiceFixture()

	account := &entities.Account{DiscordID: 123456, Balance: 10000, Level: 1}

	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(account, nil)
	mockPayouts.On("Resolve", ctx, int64(123456), int64(1000), int64(3000), true).Return(int64(3000), nil)
	mockDispatcher.On("Fire", ctx, account, mock.Anything).Return(nil, nil)
	mockAccountRepo.On("Update", ctx, account).Return(nil)
	mockEventPublisher.On("Publish", mock.AnythingOfType("events.BalanceChangeEvent")).Return(nil)

	outcome, err := service.FinishHigherLower(ctx, 123456, 3)
	require.NoError(t, err)

	// 10000 - 1000 buy-in + 3000 streak payout
	assert.True(t, outcome.Won)
	assert.Equal(t, int64(3000), outcome.Payout)
	assert.Equal(t, int64(12000), outcome.NewBalance)

	mockAccountRepo.AssertExpectations(t)
	mockPayouts.AssertExpectations(t)
	mockDispatcher.AssertExpectations(t)
}

func TestGameService_FinishHigherLower_Bust(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, mockPayouts, mockDispatcher, mockEventPublisher := newGameServiceFixture()

	account := &entities.Account{DiscordID: 123456, Balance: 10000, Level: 1}

	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(account, nil)
	mockPayouts.On("Resolve", ctx, int64(123456), int64(1000), int64(0), false).Return(int64(0), nil)
	mockDispatcher.On("Fire", ctx, account, mock.Anything).Return(nil, nil)
	mockAccountRepo.On("Update", ctx, account).Return(nil)
	mockEventPublisher.On("Publish", mock.AnythingOfType("events.BalanceChangeEvent")).Return(nil)

	outcome, err := service.FinishHigherLower(ctx, 123456, 0)
	require.NoError(t, err)

	// Only the buy-in is lost
	assert.False(t, outcome.Won)
	assert.Equal(t, int64(9000), outcome.NewBalance)
}

func TestGameService_FinishHigherLower_InsufficientCoins(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, _, _, _ := newGameServiceFixture()

	account := &entities.Account{DiscordID: 123456, Balance: 500, Level: 1}
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(account, nil)

	_, err := service.FinishHigherLower(ctx, 123456, 3)
	assert.ErrorContains(t, err, "insufficient coins")
}

func TestGameService_PlayRoll_InvalidPrediction(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, _, _, _, _ := newGameServiceFixture()

	_, err := service.PlayRoll(ctx, 123456, 100, 0)
	assert.Error(t, err)

	_, err = service.PlayRoll(ctx, 123456, 100, 7)
	assert.Error(t, err)
}

func TestGameService_PlayCoinflip_BetAboveCeiling(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, _, _, _ := newGameServiceFixture()

	account := &entities.Account{DiscordID: 123456, Balance: 1000000, Level: 1}
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(account, nil)

	// Level 1 caps the bet at 10000
	_, err := service.PlayCoinflip(ctx, 123456, 50000, true)
	assert.ErrorContains(t, err, "maximum bet")
}

func TestGameService_PlayCoinflip_CreatesAccountOnFirstPlay(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, mockPayouts, mockDispatcher, mockEventPublisher := newGameServiceFixture()

	created := &entities.Account{DiscordID: 123456, Balance: 1000, Level: 1}

	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(nil, nil)
	mockAccountRepo.On("Create", ctx, int64(123456), int64(1000)).Return(created, nil)
	mockPayouts.On("Resolve", ctx, int64(123456), int64(100), mock.Anything, mock.Anything).Return(int64(0), nil)
	mockDispatcher.On("Fire", ctx, created, mock.Anything).Return(nil, nil)
	mockAccountRepo.On("Update", ctx, created).Return(nil)
	mockEventPublisher.On("Publish", mock.AnythingOfType("events.BalanceChangeEvent")).Return(nil)

	outcome, err := service.PlayCoinflip(ctx, 123456, 100, true)
	require.NoError(t, err)
	assert.Equal(t, "coinflip", outcome.GameID)

	mockAccountRepo.AssertExpectations(t)
}

func TestGameService_Settle_BoostedPayout(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service, mockAccountRepo, mockPayouts, mockDispatcher, mockEventPublisher := newGameServiceFixture()

	account := &entities.Account{DiscordID: 123456, Balance: 10000, Level: 1}

	mockPayouts.On("Resolve", ctx, int64(123456), int64(100), int64(100), true).Return(int64(500), nil)
	mockDispatcher.On("Fire", ctx, account, mock.Anything).Return(nil, nil)
	mockAccountRepo.On("Update", ctx, account).Return(nil)
	mockEventPublisher.On("Publish", mock.AnythingOfType("events.BalanceChangeEvent")).Return(nil)

	outcome, err := service.settle(ctx, account, "coinflip", 100, 100, true)
	require.NoError(t, err)

	assert.True(t, outcome.Boosted())
	assert.Equal(t, int64(100), outcome.BasePayout)
	assert.Equal(t, int64(500), outcome.Payout)
	assert.Equal(t, int64(10500), outcome.NewBalance)
}
