package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/pg"
)

const orderColumns = `id, user_id, kind, status, promotion_id, total_before, total_after, created_at, paid_at`

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

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Kind, &o.Status, &o.PromotionID, &o.TotalBefore, &o.TotalAfter, &o.CreatedAt, &o.PaidAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	return r.findOne(ctx, query, orderID)
}

// GetForUpdate loads the order and holds its row lock until the surrounding
// transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
        FOR UPDATE
    `
	return r.findOne(ctx, query, orderID)
}

func (r *Repository) FindDraft(ctx context.Context, userID int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1 AND status = 'DRAFT' AND kind = 'CART'
    `
	return r.findOne(ctx, query, userID)
}

// draftAttempts bounds CreateDraft when the conflicting draft keeps
// disappearing between the insert and the read.
const draftAttempts = 3

// CreateDraft returns the user's cart draft, inserting it when absent. The
// partial unique index on cart drafts makes concurrent callers converge on
// one row. BUY_NOW drafts are always inserted.
func (r *Repository) CreateDraft(ctx context.Context, userID int, kind string) (*domain.Order, error) {
	insert := `
        INSERT INTO orders (user_id, kind, status, total_before, total_after)
        VALUES ($1, $2, 'DRAFT', 0, 0)
        ON CONFLICT DO NOTHING
        RETURNING ` + orderColumns
	var order *domain.Order
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for attempt := 0; attempt < draftAttempts; attempt++ {
			var err error
			order, err = scanOrder(r.db.QueryRow(ctx, insert, userID, kind))
			if err == nil {
				return nil
			}
			if !errors.Is(err, pgx.ErrNoRows) {
				zap.L().Error("can't create draft order", zap.Error(err))
				return err
			}
			// The conflicting draft may be paid or deleted before it is read.
			if order, err = r.FindDraft(ctx, userID); err != nil || order != nil {
				return err
			}
		}
		zap.L().Warn("cart draft kept changing", zap.Int("user_id", userID))
		return domain.ErrDraftContended
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int, status string) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1 AND ($2::text = '' OR status = $2)
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, userID, status)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) Items(ctx context.Context, orderID int) ([]domain.CartItem, error) {
	query := `
        SELECT order_id, game_id, name, unit_price, added_at
        FROM cart_items
        WHERE order_id = $1
        ORDER BY added_at, game_id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get cart items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var it domain.CartItem
		if err := rows.Scan(&it.OrderID, &it.GameID, &it.Name, &it.UnitPrice, &it.AddedAt); err != nil {
			zap.L().Error("can't scan cart item row", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// AddItem inserts a cart line. The (order_id, game_id) key decides races
// between concurrent adds of the same game.
func (r *Repository) AddItem(ctx context.Context, item domain.CartItem) error {
	query := `
        INSERT INTO cart_items (order_id, game_id, name, unit_price)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, item.OrderID, item.GameID, item.Name, item.UnitPrice)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrAlreadyInCart
		}
		zap.L().Error("can't add cart item", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) RemoveItem(ctx context.Context, orderID, gameID int) (bool, error) {
	query := `DELETE FROM cart_items WHERE order_id = $1 AND game_id = $2`
	tag, err := r.db.Exec(ctx, query, orderID, gameID)
	if err != nil {
		zap.L().Error("can't remove cart item", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SaveTotals persists the promotion reference and the computed totals of a draft.
func (r *Repository) SaveTotals(ctx context.Context, orderID int, promoID *int, before, after decimal.Decimal) error {
	query := `
        UPDATE orders
        SET promotion_id = $2, total_before = $3, total_after = $4
        WHERE id = $1 AND status = 'DRAFT'
    `
	tag, err := r.db.Exec(ctx, query, orderID, promoID, before, after)
	if err != nil {
		zap.L().Error("failed to update order totals", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotDraft
	}
	return nil
}

func (r *Repository) MarkPaid(ctx context.Context, orderID int, promoID *int, before, after decimal.Decimal, paidAt time.Time) error {
	query := `
        UPDATE orders
        SET status = 'PAID', promotion_id = $2, total_before = $3, total_after = $4, paid_at = $5
        WHERE id = $1 AND status = 'DRAFT'
    `
	tag, err := r.db.Exec(ctx, query, orderID, promoID, before, after, paidAt)
	if err != nil {
		zap.L().Error("failed to mark order paid", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotDraft
	}
	return nil
}

// Delete removes a draft; its lines go with it through the cascade.
func (r *Repository) Delete(ctx context.Context, orderID int) error {
	query := `DELETE FROM orders WHERE id = $1 AND status = 'DRAFT'`
	tag, err := r.db.Exec(ctx, query, orderID)
	if err != nil {
		zap.L().Error("failed to delete order", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotDraft
	}
	return nil
}

// TopSellers ranks games by paid sales, then revenue, then id. A non-nil day
// keeps only orders paid on that UTC calendar day.
func (r *Repository) TopSellers(ctx context.Context, day *time.Time, limit int) ([]domain.TopSeller, error) {
	query := `
        SELECT ci.game_id, (array_agg(ci.name ORDER BY o.paid_at DESC))[1],
               count(*), sum(ci.unit_price), min(o.paid_at), max(o.paid_at)
        FROM cart_items ci
        JOIN orders o ON o.id = ci.order_id
        WHERE o.status = 'PAID' AND o.paid_at IS NOT NULL
          AND ($1::date IS NULL OR (o.paid_at AT TIME ZONE 'UTC')::date = $1::date)
        GROUP BY ci.game_id
        ORDER BY count(*) DESC, sum(ci.unit_price) DESC, ci.game_id
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, day, limit)
	if err != nil {
		zap.L().Error("can't get top sellers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	sellers := make([]domain.TopSeller, 0, limit)
	for rows.Next() {
		var s domain.TopSeller
		if err := rows.Scan(&s.GameID, &s.Name, &s.SoldCount, &s.TotalRevenue, &s.FirstPaidAt, &s.LastPaidAt); err != nil {
			zap.L().Error("can't scan top seller row", zap.Error(err))
			return nil, err
		}
		sellers = append(sellers, s)
	}
	return sellers, rows.Err()
}
