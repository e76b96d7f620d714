package adminrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gameshop/internal/pg"
)

// resetStatements run in order; children before parents.
var resetStatements = []string{
	`DELETE FROM promotion_redemptions`,
	`DELETE FROM ledger_entries`,
	`DELETE FROM library_entries`,
	`DELETE FROM cart_items`,
	`DELETE FROM orders`,
	`UPDATE wallets SET balance = 0`,
	`UPDATE promotions SET used_count = 0`,
}

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Reset wipes all purchase and ledger state in one transaction. Accounts and
// promotion definitions survive.
func (r *Repository) Reset(ctx context.Context) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, stmt := range resetStatements {
			if _, err := r.db.Exec(ctx, stmt); err != nil {
				zap.L().Error("reset failed", zap.String("statement", stmt), zap.Error(err))
				return err
			}
		}
		return nil
	})
}
