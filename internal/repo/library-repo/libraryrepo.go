package libraryrepo

import (
	"context"

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

func (r *Repository) scan(ctx context.Context, query string, args ...any) ([]domain.LibraryEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get library entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LibraryEntry
	for rows.Next() {
		var e domain.LibraryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.GameID, &e.Name, &e.OrderID, &e.AcquiredAt); err != nil {
			zap.L().Error("can't scan library row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Owned returns the entries among gameIDs the user already owns.
func (r *Repository) Owned(ctx context.Context, userID int, gameIDs []int) ([]domain.LibraryEntry, error) {
	query := `
        SELECT id, user_id, game_id, name, order_id, acquired_at
        FROM library_entries
        WHERE user_id = $1 AND game_id = ANY($2)
        ORDER BY game_id
    `
	return r.scan(ctx, query, userID, gameIDs)
}

func (r *Repository) List(ctx context.Context, userID int) ([]domain.LibraryEntry, error) {
	query := `
        SELECT id, user_id, game_id, name, order_id, acquired_at
        FROM library_entries
        WHERE user_id = $1
        ORDER BY acquired_at DESC, id DESC
    `
	return r.scan(ctx, query, userID)
}

// Grant records ownership of every item. Rows that already exist are left
// untouched; the number of new rows is returned.
func (r *Repository) Grant(ctx context.Context, userID, orderID int, items []domain.CartItem) (int, error) {
	query := `
		INSERT INTO library_entries (user_id, game_id, name, order_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, game_id) DO NOTHING
	`
	granted := 0
	for _, it := range items {
		tag, err := r.db.Exec(ctx, query, userID, it.GameID, it.Name, orderID)
		if err != nil {
			zap.L().Error("can't grant library entry", zap.Int("game_id", it.GameID), zap.Error(err))
			return granted, err
		}
		granted += int(tag.RowsAffected())
	}
	return granted, nil
}
