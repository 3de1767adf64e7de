package testhelpers

import (
	"context"
	"time"

	"prospector/domain/entities"
	"prospector/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.Account, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, discordID int64, startingBalance int64) (*entities.Account, error) {
	args := m.Called(ctx, discordID, startingBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entities.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetAll(ctx context.Context) ([]*entities.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Account), args.Error(1)
}

// MockGoalRepository is a mock implementation of GoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) GetByUser(ctx context.Context, discordID int64) ([]*entities.GoalInstance, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GoalInstance), args.Error(1)
}

func (m *MockGoalRepository) ReplaceForUser(ctx context.Context, discordID int64, goals []*entities.GoalInstance) error {
	args := m.Called(ctx, discordID, goals)
	return args.Error(0)
}

// MockEffectRepository is a mock implementation of EffectRepository
type MockEffectRepository struct {
	mock.Mock
}

func (m *MockEffectRepository) GetByUser(ctx context.Context, discordID int64) ([]*entities.EffectInstance, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EffectInstance), args.Error(1)
}

func (m *MockEffectRepository) Create(ctx context.Context, effect *entities.EffectInstance) error {
	args := m.Called(ctx, effect)
	return args.Error(0)
}

func (m *MockEffectRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockPayoutService is a mock implementation of PayoutService
type MockPayoutService struct {
	mock.Mock
}

func (m *MockPayoutService) Resolve(ctx context.Context, discordID int64, bet, basePayout int64, won bool) (int64, error) {
	args := m.Called(ctx, discordID, bet, basePayout, won)
	return args.Get(0).(int64), args.Error(1)
}

// MockGoalDispatcher is a mock implementation of GoalDispatcher
type MockGoalDispatcher struct {
	mock.Mock
}

func (m *MockGoalDispatcher) Fire(ctx context.Context, actor entities.EconomyActor, event events.EconomyEvent) (events.EconomyEvent, error) {
	args := m.Called(ctx, actor, event)
	if args.Get(0) == nil {
		return event, args.Error(1)
	}
	return args.Get(0).(events.EconomyEvent), args.Error(1)
}

func (m *MockGoalDispatcher) DailyGoals(ctx context.Context, actor entities.EconomyActor, discordID int64, day time.Time) ([]*entities.GoalInstance, error) {
	args := m.Called(ctx, actor, discordID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GoalInstance), args.Error(1)
}
