package repository

import (
	"context"
	"fmt"

	"prospector/database"
	"prospector/domain/entities"
	"prospector/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type accountRepository struct {
	q Queryable
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *database.DB) interfaces.AccountRepository {
	return &accountRepository{q: db.Pool}
}

// NewAccountRepositoryScoped creates a new account repository bound to a transaction
func NewAccountRepositoryScoped(tx Queryable) interfaces.AccountRepository {
	return &accountRepository{q: tx}
}

// GetByDiscordID retrieves an account by Discord ID, returning nil when none exists
func (r *accountRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.Account, error) {
	query := `
		SELECT discord_id, balance, gems, level, prestige, created_at, updated_at
		FROM accounts
		WHERE discord_id = $1
	`

	var account entities.Account
	err := r.q.QueryRow(ctx, query, discordID).Scan(
		&account.DiscordID,
		&account.Balance,
		&account.GemBalance,
		&account.Level,
		&account.Prestige,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// Create creates a new account with the given starting balance
func (r *accountRepository) Create(ctx context.Context, discordID int64, startingBalance int64) (*entities.Account, error) {
	query := `
		INSERT INTO accounts (discord_id, balance)
		VALUES ($1, $2)
		RETURNING discord_id, balance, gems, level, prestige, created_at, updated_at
	`

	var account entities.Account
	err := r.q.QueryRow(ctx, query, discordID, startingBalance).Scan(
		&account.DiscordID,
		&account.Balance,
		&account.GemBalance,
		&account.Level,
		&account.Prestige,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &account, nil
}

// Update persists the account's balances, level and prestige
func (r *accountRepository) Update(ctx context.Context, account *entities.Account) error {
	query := `
		UPDATE accounts
		SET balance = $2, gems = $3, level = $4, prestige = $5, updated_at = NOW()
		WHERE discord_id = $1
	`

	tag, err := r.q.Exec(ctx, query,
		account.DiscordID,
		account.Balance,
		account.GemBalance,
		account.Level,
		account.Prestige,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found", account.DiscordID)
	}

	return nil
}

// GetAll returns all accounts
func (r *accountRepository) GetAll(ctx context.Context) ([]*entities.Account, error) {
	query := `
		SELECT discord_id, balance, gems, level, prestige, created_at, updated_at
		FROM accounts
		ORDER BY discord_id
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*entities.Account
	for rows.Next() {
		var account entities.Account
		if err := rows.Scan(
			&account.DiscordID,
			&account.Balance,
			&account.GemBalance,
			&account.Level,
			&account.Prestige,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}
