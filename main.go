package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"prospector/cmd"
	"prospector/config"
	"prospector/database"
	"prospector/domain/catalog"
	"prospector/domain/entities"
	"prospector/domain/utils"
)

func main() {
	// Check for migration subcommands
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := handleMigrationCommand(); err != nil {
			log.Fatal("Migration error:", err)
		}
		return
	}

	// Check for admin subcommands operating directly on the economy
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "coinflip", "roll", "highlow", "buy", "send", "work", "goals", "balance":
			if err := handleAdminCommand(os.Args[1]); err != nil {
				log.Fatal("Admin command error:", err)
			}
			return
		}
	}

	// Normal daemon operation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	// Run the application
	if err := cmd.Run(ctx); err != nil {
		log.Fatal("Application error:", err)
	}
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: prospector migrate [up|down|status] [args...]")
	}

	command := os.Args[2]
	switch command {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(os.Args) > 3 {
			steps = os.Args[3]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}

// handleAdminCommand runs one economy operation against the database.
// Events are not published to NATS from admin runs.
func handleAdminCommand(command string) error {
	ctx := context.Background()
	cfg := config.Get()

	app, err := cmd.NewOfflineApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	switch command {
	case "coinflip":
		userID, bet, err := parseUserAndAmount("coinflip user bet [heads|tails]")
		if err != nil {
			return err
		}
		headsGuess := len(os.Args) < 5 || os.Args[4] == "heads"
		outcome, err := app.Games.PlayCoinflip(ctx, userID, bet, headsGuess)
		if err != nil {
			return err
		}
		printOutcome(outcome)
		return nil

	case "roll":
		userID, bet, err := parseUserAndAmount("roll user bet prediction")
		if err != nil {
			return err
		}
		if len(os.Args) < 5 {
			return fmt.Errorf("usage: prospector roll user bet prediction")
		}
		prediction, err := strconv.Atoi(os.Args[4])
		if err != nil {
			return fmt.Errorf("invalid prediction: %w", err)
		}
		outcome, err := app.Games.PlayRoll(ctx, userID, bet, prediction)
		if err != nil {
			return err
		}
		printOutcome(outcome)
		return nil

	case "highlow":
		userID, streak, err := parseUserAndAmount("highlow user streak")
		if err != nil {
			return err
		}
		outcome, err := app.Games.FinishHigherLower(ctx, userID, int(streak))
		if err != nil {
			return err
		}
		printOutcome(outcome)
		return nil

	case "buy":
		if len(os.Args) < 4 {
			return fmt.Errorf("usage: prospector buy user item-id")
		}
		userID, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		result, err := app.Shop.Purchase(ctx, userID, os.Args[3])
		if err != nil {
			return err
		}
		fmt.Printf("purchased %s for %s coins / %d gems (balance %s coins, %d gems)\n",
			result.ItemID, utils.FormatShortNotation(result.CoinsSpent), result.GemsSpent,
			utils.FormatShortNotation(result.NewCoins), result.NewGems)
		return nil

	case "send":
		if len(os.Args) < 5 {
			return fmt.Errorf("usage: prospector send from-user to-user amount")
		}
		fromID, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sender id: %w", err)
		}
		toID, err := strconv.ParseInt(os.Args[3], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid recipient id: %w", err)
		}
		amount, err := strconv.ParseInt(os.Args[4], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		result, err := app.Transfers.Transfer(ctx, fromID, toID, amount)
		if err != nil {
			return err
		}
		fmt.Printf("sent %s coins; sender now has %s, recipient %s\n",
			utils.FormatShortNotation(result.Amount),
			utils.FormatShortNotation(result.FromNewBalance),
			utils.FormatShortNotation(result.ToNewBalance))
		return nil

	case "work":
		userID, err := parseUser("work user")
		if err != nil {
			return err
		}
		result, err := app.Work.Work(ctx, userID)
		if err != nil {
			return err
		}
		fmt.Printf("earned %s coins (balance %s)\n",
			utils.FormatShortNotation(result.Amount),
			utils.FormatShortNotation(result.NewBalance))
		return nil

	case "goals":
		userID, err := parseUser("goals user")
		if err != nil {
			return err
		}
		account, err := app.Accounts.GetByDiscordID(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			account = entities.NewAccount(userID, cfg.StartingBalance)
		}
		goals, err := app.Goals.DailyGoals(ctx, account, userID, time.Now().UTC())
		if err != nil {
			return err
		}
		registry := catalog.NewDefaultGoalRegistry()
		for _, goal := range goals {
			marker := " "
			if goal.IsComplete() {
				marker = "x"
			}
			fmt.Printf("[%s] %s\n", marker, catalog.DescribeGoal(registry, goal))
		}
		return nil

	case "balance":
		userID, err := parseUser("balance user")
		if err != nil {
			return err
		}
		account, err := app.Accounts.GetByDiscordID(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			return fmt.Errorf("no account for user %d", userID)
		}
		fmt.Printf("%s coins, %d gems (level %d, prestige %d)\n",
			utils.FormatShortNotation(account.Balance), account.GemBalance, account.Level, account.Prestige)
		return nil
	}

	return fmt.Errorf("unknown command: %s", command)
}

func parseUser(usage string) (int64, error) {
	if len(os.Args) < 3 {
		return 0, fmt.Errorf("usage: prospector %s", usage)
	}
	userID, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id: %w", err)
	}
	return userID, nil
}

func parseUserAndAmount(usage string) (int64, int64, error) {
	if len(os.Args) < 4 {
		return 0, 0, fmt.Errorf("usage: prospector %s", usage)
	}
	userID, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid user id: %w", err)
	}
	amount, err := strconv.ParseInt(os.Args[3], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid amount: %w", err)
	}
	return userID, amount, nil
}

func printOutcome(outcome *entities.GameOutcome) {
	verdict := "lost"
	if outcome.Won {
		verdict = "won"
	}
	boost := ""
	if outcome.Boosted() {
		boost = fmt.Sprintf(" (boosted from %s)", utils.FormatShortNotation(outcome.BasePayout))
	}
	fmt.Printf("%s: %s %s coins%s, balance %s\n",
		outcome.GameID, verdict, utils.FormatShortNotation(outcome.Payout), boost,
		utils.FormatShortNotation(outcome.NewBalance))
}
