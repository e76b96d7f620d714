package ledgerrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/pg"
)

// Repository appends to and reads the wallet ledger. Rows are never updated.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (user_id, order_id, type, amount, note, transfer_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.OrderID, entry.Type, entry.Amount, entry.Note, entry.TransferRef).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

const historyFilter = `
        FROM ledger_entries
        WHERE user_id = $1
          AND ($2::timestamptz IS NULL OR created_at >= $2)
          AND ($3::timestamptz IS NULL OR created_at <= $3)
`

// History returns one page of a user's entries and the total number of
// entries matching the filter. The total is counted separately so a page past
// the end still reports it.
func (r *Repository) History(ctx context.Context, userID int, f domain.LedgerFilter) ([]domain.LedgerEntry, int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT count(*)`+historyFilter, userID, f.From, f.To).Scan(&total)
	if err != nil {
		zap.L().Error("failed to count ledger entries", zap.Error(err))
		return nil, 0, err
	}

	direction := "DESC"
	if f.Asc {
		direction = "ASC"
	}
	query := `
        SELECT id, user_id, order_id, type, amount, note, transfer_ref, created_at` + historyFilter + `
        ORDER BY created_at ` + direction + `, id ` + direction + `
        LIMIT $4 OFFSET $5
    `
	offset := (f.Page - 1) * f.PageSize
	rows, err := r.db.Query(ctx, query, userID, f.From, f.To, f.PageSize, offset)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.OrderID, &e.Type, &e.Amount, &e.Note, &e.TransferRef, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger row", zap.Error(err))
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
