package promorepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gameshop/internal/domain"
)

var columns = []string{"id", "code", "description", "discount_type", "discount_value", "max_uses", "used_count", "starts_at", "expires_at", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func promoRow(rows *pgxmock.Rows, id int, code string, now time.Time) *pgxmock.Rows {
	return rows.AddRow(id, code, "", domain.DiscountPercent, "10.00", 5, 1, now.Add(-time.Hour), now.Add(time.Hour), now)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO promotions (code, description, discount_type, discount_value, max_uses, starts_at, expires_at) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING`)
	in := domain.PromotionInput{
		Code: "SPRING10", DiscountType: domain.DiscountPercent, DiscountValue: decimal.NewFromInt(10),
		MaxUses: 5, StartsAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Creates promotion",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("SPRING10", "", domain.DiscountPercent, pgxmock.AnyArg(), 5, in.StartsAt, in.ExpiresAt).
					WillReturnRows(promoRow(pgxmock.NewRows(columns), 1, "SPRING10", now))
			},
		},
		{
			name: "Duplicate code",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("SPRING10", "", domain.DiscountPercent, pgxmock.AnyArg(), 5, in.StartsAt, in.ExpiresAt).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectErr: domain.ErrPromoCodeTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			promo, err := repo.Create(context.Background(), in)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, promo)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "SPRING10", promo.Code)
			assert.True(t, decimal.NewFromInt(10).Equal(promo.DiscountValue))
		})
	}
}

func TestRepository_FindByCode(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`FROM promotions WHERE code = $1`)

	tests := []struct {
		name      string
		code      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Found",
			code: "SPRING10",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("SPRING10").
					WillReturnRows(promoRow(pgxmock.NewRows(columns), 1, "SPRING10", now))
			},
			found: true,
		},
		{
			name: "Unknown code",
			code: "NOPE",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("NOPE").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			code: "SPRING10",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("SPRING10").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			promo, err := repo.FindByCode(context.Background(), tt.code)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.found, promo != nil)
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM promotions WHERE id = $1 FOR UPDATE`)).
		WithArgs(1).
		WillReturnRows(promoRow(pgxmock.NewRows(columns), 1, "SPRING10", now))

	promo, err := repo.GetForUpdate(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, promo.UsedCount)
	assert.False(t, promo.Exhausted())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementUsage(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE promotions SET used_count = used_count + 1 WHERE id = $1 AND (max_uses = 0 OR used_count < max_uses)`)

	mock.ExpectExec(query).WithArgs(1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.IncrementUsage(context.Background(), 1))

	mock.ExpectExec(query).WithArgs(1).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.IncrementUsage(context.Background(), 1), domain.ErrPromoExhausted)

	mock.ExpectExec(query).WithArgs(1).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.IncrementUsage(context.Background(), 1))
}

func TestRepository_ListActive(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE starts_at <= $1 AND expires_at >= $1 AND (max_uses = 0 OR used_count < max_uses)`)).
		WithArgs(now).
		WillReturnRows(promoRow(promoRow(pgxmock.NewRows(columns), 1, "A", now), 2, "B", now))

	promos, err := repo.ListActive(context.Background(), now)

	assert.NoError(t, err)
	assert.Len(t, promos, 2)
	assert.Equal(t, "B", promos[1].Code)
}

func TestRepository_Expire(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`UPDATE promotions SET expires_at = LEAST(expires_at, $2) WHERE id = $1 RETURNING`)

	mock.ExpectQuery(query).WithArgs(1, now).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(1, "A", "", domain.DiscountFixed, "5.00", 0, 0, now.Add(-time.Hour), now, now))
	promo, err := repo.Expire(context.Background(), 1, now)
	assert.NoError(t, err)
	assert.Equal(t, now, promo.ExpiresAt)

	mock.ExpectQuery(query).WithArgs(2, now).WillReturnError(pgx.ErrNoRows)
	promo, err = repo.Expire(context.Background(), 2, now)
	assert.NoError(t, err)
	assert.Nil(t, promo)
}

func TestRepository_ExpireExhausted(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE promotions SET expires_at = $1 WHERE max_uses > 0 AND used_count >= max_uses AND expires_at > $1`)).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	n, err := repo.ExpireExhausted(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRepository_CreateRedemption(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO promotion_redemptions (promotion_id, user_id, order_id) VALUES ($1, $2, $3)`)

	mock.ExpectExec(query).WithArgs(1, 2, 3).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.CreateRedemption(context.Background(), 1, 2, 3))

	mock.ExpectExec(query).WithArgs(1, 2, 4).WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.ErrorIs(t, repo.CreateRedemption(context.Background(), 1, 2, 4), domain.ErrPromoAlreadyRedeemed)
}

func TestRepository_HasRedemption(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM promotion_redemptions WHERE promotion_id = $1 AND user_id = $2)`)

	mock.ExpectQuery(query).WithArgs(1, 2).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := repo.HasRedemption(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_Redemptions(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	columns := []string{"id", "promotion_id", "user_id", "order_id", "code", "redeemed_at"}

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.promotion_id = $1`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(1, 1, 2, 3, "SPRING10", now))
	byPromo, err := repo.RedemptionsByPromotion(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Redemption{{ID: 1, PromotionID: 1, UserID: 2, OrderID: 3, Code: "SPRING10", RedeemedAt: now}}, byPromo)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.user_id = $1`)).
		WithArgs(2).
		WillReturnError(errors.New("database error"))
	byUser, err := repo.RedemptionsByUser(context.Background(), 2)
	assert.Error(t, err)
	assert.Nil(t, byUser)
}

func TestRepository_List(t *testing.T) {
	now := time.Now()
	countQuery := regexp.QuoteMeta(`SELECT count(*) FROM promotions WHERE ($1::text = '' OR code ILIKE`)
	pageQuery := regexp.QuoteMeta(`ORDER BY created_at DESC, id DESC LIMIT $4 OFFSET $5`)

	tests := []struct {
		name      string
		filter    domain.PromotionFilter
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		codes     []string
		total     int
	}{
		{
			name:   "Search escapes wildcards",
			filter: domain.PromotionFilter{Query: " spring_ ", ActiveOnly: true, Page: 2, PageSize: 10},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(countQuery).WithArgs(`spring\_`, true, now).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(11))
				mock.ExpectQuery(pageQuery).WithArgs(`spring\_`, true, now, 10, 10).
					WillReturnRows(promoRow(pgxmock.NewRows(columns), 1, "SPRING_1", now))
			},
			codes: []string{"SPRING_1"},
			total: 11,
		},
		{
			name:   "Nothing matches",
			filter: domain.PromotionFilter{Page: 1, PageSize: 20},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(countQuery).WithArgs("", false, now).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(pageQuery).WithArgs("", false, now, 20, 0).
					WillReturnRows(pgxmock.NewRows(columns))
			},
			codes: []string{},
		},
		{
			name:   "Count error",
			filter: domain.PromotionFilter{Page: 1, PageSize: 20},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(countQuery).WithArgs("", false, now).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			promos, total, err := repo.List(context.Background(), tt.filter, now)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, promos)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.total, total)
			codes := make([]string, len(promos))
			for i, p := range promos {
				codes[i] = p.Code
			}
			assert.Equal(t, tt.codes, codes)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`UPDATE promotions SET code = $2, description = $3, discount_type = $4, discount_value = $5, max_uses = $6, starts_at = $7, expires_at = $8 WHERE id = $1 RETURNING`)
	in := domain.PromotionInput{
		Code: "SUMMER", Description: "Summer sale", DiscountType: domain.DiscountPercent, DiscountValue: decimal.NewFromInt(10),
		MaxUses: 5, StartsAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour),
	}
	args := []any{1, "SUMMER", "Summer sale", domain.DiscountPercent, pgxmock.AnyArg(), 5, in.StartsAt, in.ExpiresAt}

	mock.ExpectQuery(query).WithArgs(args...).
		WillReturnRows(promoRow(pgxmock.NewRows(columns), 1, "SUMMER", now))
	promo, err := repo.Update(context.Background(), 1, in)
	assert.NoError(t, err)
	assert.Equal(t, "SUMMER", promo.Code)

	mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	promo, err = repo.Update(context.Background(), 1, in)
	assert.ErrorIs(t, err, domain.ErrPromoCodeTaken)
	assert.Nil(t, promo)

	mock.ExpectQuery(query).WithArgs(args...).WillReturnError(pgx.ErrNoRows)
	promo, err = repo.Update(context.Background(), 1, in)
	assert.NoError(t, err)
	assert.Nil(t, promo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`DELETE FROM promotions WHERE id = $1`)

	mock.ExpectExec(query).WithArgs(1).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), 1))

	mock.ExpectExec(query).WithArgs(2).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Delete(context.Background(), 2))
}

func TestRepository_CountRedemptions(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT count(*) FROM promotion_redemptions WHERE promotion_id = $1`)

	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	n, err := repo.CountRedemptions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	mock.ExpectQuery(query).WithArgs(2).WillReturnError(errors.New("database error"))
	_, err = repo.CountRedemptions(context.Background(), 2)
	assert.Error(t, err)
}
