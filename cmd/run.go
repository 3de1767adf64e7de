package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"prospector/config"
	"prospector/database"
	"prospector/domain/catalog"
	"prospector/domain/interfaces"
	"prospector/domain/services"
	"prospector/infrastructure"
	"prospector/repository"
)

// App bundles the wired domain services and their backing resources.
type App struct {
	Games     interfaces.GameService
	Shop      interfaces.ShopService
	Transfers interfaces.TransferService
	Work      interfaces.WorkService
	Goals     interfaces.GoalDispatcher
	Accounts  interfaces.AccountRepository

	db         *database.DB
	natsClient *infrastructure.NATSClient
}

// NewApp connects to the database and NATS and wires the full service graph.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	natsClient := infrastructure.NewNATSClient(cfg.NATSServers)
	if err := natsClient.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	eventPublisher := infrastructure.NewNATSEventPublisher(natsClient, infrastructure.NewEventSubjectMapper())
	if err := eventPublisher.EnsureDomainEventStream(); err != nil {
		natsClient.Close()
		db.Close()
		return nil, fmt.Errorf("failed to ensure domain event stream: %w", err)
	}

	app := newApp(db, eventPublisher)
	app.natsClient = natsClient
	return app, nil
}

// NewOfflineApp wires the service graph without NATS, for admin commands
// where events should not leave the process.
func NewOfflineApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return newApp(db, infrastructure.NewNoopEventPublisher()), nil
}

func newApp(db *database.DB, eventPublisher interfaces.EventPublisher) *App {
	effectRegistry := catalog.NewDefaultEffectRegistry()
	goalRegistry := catalog.NewDefaultGoalRegistry()
	shopRegistry := catalog.NewDefaultShopRegistry()

	accountRepo := repository.NewAccountRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	effectRepo := repository.NewEffectRepository(db)

	payoutService := services.NewPayoutService(effectRepo, effectRegistry)
	goalDispatcher := services.NewGoalDispatcher(goalRepo, goalRegistry, eventPublisher)

	return &App{
		Games:     services.NewGameService(accountRepo, payoutService, goalDispatcher, eventPublisher),
		Shop:      services.NewShopService(accountRepo, effectRepo, shopRegistry, effectRegistry, goalDispatcher, eventPublisher),
		Transfers: services.NewTransferService(accountRepo, goalDispatcher, eventPublisher),
		Work:      services.NewWorkService(accountRepo, goalDispatcher, eventPublisher),
		Goals:     goalDispatcher,
		Accounts:  accountRepo,
		db:        db,
	}
}

// Close releases the app's database and NATS resources.
func (a *App) Close() {
	if a.natsClient != nil {
		if err := a.natsClient.Close(); err != nil {
			log.Printf("Error closing NATS connection: %v", err)
		}
	}
	a.db.Close()
}

// Run initializes the application and blocks until the context is cancelled.
func Run(ctx context.Context) error {
	log.Println("Starting prospector...")

	cfg := config.Get()

	log.Println("Connecting to database and NATS...")
	app, err := NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	log.Println("Application initialized successfully")

	// Wait for context cancellation
	log.Printf("Running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
