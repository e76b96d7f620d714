package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) get(ctx context.Context, query string, userID int) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, userID).Scan(&wallet.UserID, &wallet.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Get(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT user_id, balance
        FROM wallets
        WHERE user_id = $1
    `
	return r.get(ctx, query, userID)
}

// GetForUpdate locks the wallet row for the rest of the transaction.
func (r *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT user_id, balance
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.get(ctx, query, userID)
}

// Ensure creates an empty wallet for an existing user.
func (r *Repository) Ensure(ctx context.Context, userID int) error {
	query := `
        INSERT INTO wallets (user_id, balance)
        VALUES ($1, 0)
        ON CONFLICT (user_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrAccountNotFound
		}
		zap.L().Error("failed to create wallet", zap.Error(err))
		return err
	}
	return nil
}

// Add applies a signed delta and returns the new balance. The balance check
// constraint rejects a delta that would overdraw the wallet.
func (r *Repository) Add(ctx context.Context, userID int, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $2
		WHERE user_id = $1
		RETURNING balance
	`
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, userID, delta).Scan(&balance)
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return decimal.Zero, domain.ErrAccountNotFound
		case errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation:
			return decimal.Zero, domain.ErrInsufficientFunds
		}
		zap.L().Error("failed to update wallet balance", zap.Int("user_id", userID), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}
