package promorepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/pg"
)

const promoColumns = `id, code, description, discount_type, discount_value, max_uses, used_count, starts_at, expires_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPromo(row pgx.Row) (*domain.Promotion, error) {
	var p domain.Promotion
	err := row.Scan(&p.ID, &p.Code, &p.Description, &p.DiscountType, &p.DiscountValue,
		&p.MaxUses, &p.UsedCount, &p.StartsAt, &p.ExpiresAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func isUnique(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Promotion, error) {
	promo, err := scanPromo(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find promotion", zap.Error(err))
		return nil, err
	}
	return promo, nil
}

func (r *Repository) Create(ctx context.Context, in domain.PromotionInput) (*domain.Promotion, error) {
	query := `
		INSERT INTO promotions (code, description, discount_type, discount_value, max_uses, starts_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + promoColumns
	promo, err := scanPromo(r.db.QueryRow(ctx, query, in.Code, in.Description, in.DiscountType, in.DiscountValue,
		in.MaxUses, in.StartsAt, in.ExpiresAt))
	if err != nil {
		if isUnique(err) {
			return nil, domain.ErrPromoCodeTaken
		}
		zap.L().Error("can't save promotion", zap.Error(err))
		return nil, err
	}
	return promo, nil
}

func (r *Repository) FindByID(ctx context.Context, promoID int) (*domain.Promotion, error) {
	return r.findOne(ctx, `SELECT `+promoColumns+` FROM promotions WHERE id = $1`, promoID)
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	return r.findOne(ctx, `SELECT `+promoColumns+` FROM promotions WHERE code = $1`, code)
}

// GetForUpdate locks the promotion row so that usage checks and the
// increment that follows see the same used_count.
func (r *Repository) GetForUpdate(ctx context.Context, promoID int) (*domain.Promotion, error) {
	return r.findOne(ctx, `SELECT `+promoColumns+` FROM promotions WHERE id = $1 FOR UPDATE`, promoID)
}

func (r *Repository) ListActive(ctx context.Context, now time.Time) ([]domain.Promotion, error) {
	query := `
        SELECT ` + promoColumns + `
        FROM promotions
        WHERE starts_at <= $1 AND expires_at >= $1
          AND (max_uses = 0 OR used_count < max_uses)
        ORDER BY expires_at, id
    `
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get active promotions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var promos []domain.Promotion
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			zap.L().Error("can't scan promotion row", zap.Error(err))
			return nil, err
		}
		promos = append(promos, *p)
	}
	return promos, rows.Err()
}

// listFilter takes the search text, the active-only flag and the current time.
const listFilter = `
        WHERE ($1::text = '' OR code ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
          AND (NOT $2::bool OR (starts_at <= $3 AND expires_at >= $3))`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// List returns one page of promotions, newest first, and the total number
// matching the filter.
func (r *Repository) List(ctx context.Context, f domain.PromotionFilter, now time.Time) ([]domain.Promotion, int, error) {
	q := likeEscaper.Replace(strings.TrimSpace(f.Query))

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM promotions`+listFilter, q, f.ActiveOnly, now).Scan(&total); err != nil {
		zap.L().Error("can't count promotions", zap.Error(err))
		return nil, 0, err
	}

	query := `SELECT ` + promoColumns + ` FROM promotions` + listFilter + `
        ORDER BY created_at DESC, id DESC
        LIMIT $4 OFFSET $5`
	rows, err := r.db.Query(ctx, query, q, f.ActiveOnly, now, f.PageSize, (f.Page-1)*f.PageSize)
	if err != nil {
		zap.L().Error("can't list promotions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	promos := make([]domain.Promotion, 0, f.PageSize)
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			zap.L().Error("can't scan promotion row", zap.Error(err))
			return nil, 0, err
		}
		promos = append(promos, *p)
	}
	return promos, total, rows.Err()
}

// Update overwrites every editable column. It returns nil when the promotion
// does not exist.
func (r *Repository) Update(ctx context.Context, promoID int, in domain.PromotionInput) (*domain.Promotion, error) {
	query := `
		UPDATE promotions
		SET code = $2, description = $3, discount_type = $4, discount_value = $5,
		    max_uses = $6, starts_at = $7, expires_at = $8
		WHERE id = $1
		RETURNING ` + promoColumns
	promo, err := scanPromo(r.db.QueryRow(ctx, query, promoID, in.Code, in.Description, in.DiscountType,
		in.DiscountValue, in.MaxUses, in.StartsAt, in.ExpiresAt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if isUnique(err) {
			return nil, domain.ErrPromoCodeTaken
		}
		zap.L().Error("can't update promotion", zap.Int("promotion_id", promoID), zap.Error(err))
		return nil, err
	}
	return promo, nil
}

// Delete removes the promotion. Carts holding it lose the reference.
func (r *Repository) Delete(ctx context.Context, promoID int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, promoID); err != nil {
		zap.L().Error("can't delete promotion", zap.Int("promotion_id", promoID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountRedemptions(ctx context.Context, promoID int) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM promotion_redemptions WHERE promotion_id = $1`, promoID).Scan(&n)
	if err != nil {
		zap.L().Error("can't count redemptions", zap.Error(err))
		return 0, err
	}
	return n, nil
}

// IncrementUsage consumes one use. It returns ErrPromoExhausted when the cap
// is already reached.
func (r *Repository) IncrementUsage(ctx context.Context, promoID int) error {
	query := `
		UPDATE promotions
		SET used_count = used_count + 1
		WHERE id = $1 AND (max_uses = 0 OR used_count < max_uses)
	`
	tag, err := r.db.Exec(ctx, query, promoID)
	if err != nil {
		zap.L().Error("failed to increment promotion usage", zap.Int("promotion_id", promoID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPromoExhausted
	}
	return nil
}

// Expire ends the promotion at now unless it has ended already.
func (r *Repository) Expire(ctx context.Context, promoID int, now time.Time) (*domain.Promotion, error) {
	query := `
		UPDATE promotions
		SET expires_at = LEAST(expires_at, $2)
		WHERE id = $1
		RETURNING ` + promoColumns
	promo, err := scanPromo(r.db.QueryRow(ctx, query, promoID, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to expire promotion", zap.Error(err))
		return nil, err
	}
	return promo, nil
}

// ExpireExhausted ends every capped promotion whose uses are spent.
func (r *Repository) ExpireExhausted(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE promotions
		SET expires_at = $1
		WHERE max_uses > 0 AND used_count >= max_uses AND expires_at > $1
	`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("failed to expire exhausted promotions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CreateRedemption records a user's single use of a promotion. The
// (promotion_id, user_id) key turns a second use into ErrPromoAlreadyRedeemed.
func (r *Repository) CreateRedemption(ctx context.Context, promoID, userID, orderID int) error {
	query := `
		INSERT INTO promotion_redemptions (promotion_id, user_id, order_id)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, promoID, userID, orderID)
	if err != nil {
		if isUnique(err) {
			return domain.ErrPromoAlreadyRedeemed
		}
		zap.L().Error("can't save redemption", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) HasRedemption(ctx context.Context, promoID, userID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM promotion_redemptions WHERE promotion_id = $1 AND user_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, promoID, userID).Scan(&exists); err != nil {
		zap.L().Error("can't check redemption", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) redemptions(ctx context.Context, query string, arg any) ([]domain.Redemption, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't get redemptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []domain.Redemption
	for rows.Next() {
		var rd domain.Redemption
		if err := rows.Scan(&rd.ID, &rd.PromotionID, &rd.UserID, &rd.OrderID, &rd.Code, &rd.RedeemedAt); err != nil {
			zap.L().Error("can't scan redemption row", zap.Error(err))
			return nil, err
		}
		res = append(res, rd)
	}
	return res, rows.Err()
}

func (r *Repository) RedemptionsByPromotion(ctx context.Context, promoID int) ([]domain.Redemption, error) {
	query := `
        SELECT r.id, r.promotion_id, r.user_id, r.order_id, p.code, r.redeemed_at
        FROM promotion_redemptions r
        JOIN promotions p ON p.id = r.promotion_id
        WHERE r.promotion_id = $1
        ORDER BY r.redeemed_at DESC, r.id DESC
    `
	return r.redemptions(ctx, query, promoID)
}

func (r *Repository) RedemptionsByUser(ctx context.Context, userID int) ([]domain.Redemption, error) {
	query := `
        SELECT r.id, r.promotion_id, r.user_id, r.order_id, p.code, r.redeemed_at
        FROM promotion_redemptions r
        JOIN promotions p ON p.id = r.promotion_id
        WHERE r.user_id = $1
        ORDER BY r.redeemed_at DESC, r.id DESC
    `
	return r.redemptions(ctx, query, userID)
}
