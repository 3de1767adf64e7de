package services

import (
	"context"
	"testing"

	"prospector/config"
	"prospector/domain/entities"
	"prospector/domain/events"
	"prospector/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransferService_Transfer_Success(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()

	mockAccountRepo := new(testhelpers.MockAccountRepository)
	mockDispatcher := new(testhelpers.MockGoalDispatcher)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewTransferService(mockAccountRepo, mockDispatcher, mockEventPublisher)

	sender := &entities.Account{DiscordID: 111, Balance: 10000, Level: 1}
	recipient := &entities.Account{DiscordID: 222, Balance: 500, Level: 1}

	mockAccountRepo.On("GetByDiscordID", ctx, int64(111)).Return(sender, nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(222)).Return(recipient, nil)
	mockDispatcher.On("Fire", ctx, sender, mock.MatchedBy(func(e events.EconomyEvent) bool {
		transfer, ok := e.(events.TransferEvent)
		return ok && transfer.Amount == 3000 && transfer.Sender == 111
	})).Return(nil, nil)
	mockAccountRepo.On("Update", ctx, sender).Return(nil)
	mockAccountRepo.On("Update", ctx, recipient).Return(nil)
	mockEventPublisher.On("Publish", mock.AnythingOfType("events.BalanceChangeEvent")).Return(nil).Twice()

	result, err := service.Transfer(ctx, 111, 222, 3000)
	require.NoError(t, err)

	assert.Equal(t, int64(7000), result.FromNewBalance)
	assert.Equal(t, int64(3500), result.ToNewBalance)

	mockAccountRepo.AssertExpectations(t)
	mockDispatcher.AssertExpectations(t)
	mockEventPublisher.AssertExpectations(t)
}

func TestTransferService_Transfer_InvalidAmount(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service := NewTransferService(new(testhelpers.MockAccountRepository), new(testhelpers.MockGoalDispatcher), new(testhelpers.MockEventPublisher))

	_, err := service.Transfer(ctx, 111, 222, 0)
	assert.ErrorContains(t, err, "must be positive")

	_, err = service.Transfer(ctx, 111, 222, -100)
	assert.ErrorContains(t, err, "must be positive")
}

func TestTransferService_Transfer_ToSelf(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	service := NewTransferService(new(testhelpers.MockAccountRepository), new(testhelpers.MockGoalDispatcher), new(testhelpers.MockEventPublisher))

	_, err := service.Transfer(ctx, 111, 111, 100)
	assert.ErrorContains(t, err, "yourself")
}

func TestTransferService_Transfer_InsufficientBalance(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()

	mockAccountRepo := new(testhelpers.MockAccountRepository)
	service := NewTransferService(mockAccountRepo, new(testhelpers.MockGoalDispatcher), new(testhelpers.MockEventPublisher))

	sender := &entities.Account{DiscordID: 111, Balance: 100, Level: 1}
	mockAccountRepo.On("GetByDiscordID", ctx, int64(111)).Return(sender, nil)

	_, err := service.Transfer(ctx, 111, 222, 3000)
	assert.ErrorContains(t, err, "insufficient balance")
}

func TestTransferService_Transfer_CreatesRecipientAccount(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()

	mockAccountRepo := new(testhelpers.MockAccountRepository)
	mockDispatcher := new(testhelpers.MockGoalDispatcher)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewTransferService(mockAccountRepo, mockDispatcher, mockEventPublisher)

	sender := &entities.Account{DiscordID: 111, Balance: 10000, Level: 1}
	created := &entities.Account{DiscordID: 222, Balance: 1000, Level: 1}

	mockAccountRepo.On("GetByDiscordID", ctx, int64(111)).Return(sender, nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(222)).Return(nil, nil)
	mockAccountRepo.On("Create", ctx, int64(222), int64(1000)).Return(created, nil)
	mockDispatcher.On("Fire", ctx, sender, mock.Anything).Return(nil, nil)
	mockAccountRepo.On("Update", ctx, mock.Anything).Return(nil)
	mockEventPublisher.On("Publish", mock.Anything).Return(nil)

	result, err := service.Transfer(ctx, 111, 222, 3000)
	require.NoError(t, err)

	// Starting balance plus the transfer
	assert.Equal(t, int64(4000), result.ToNewBalance)

	mockAccountRepo.AssertExpectations(t)
}
