package orderrepo

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
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/pg"
)

var columns = []string{"id", "user_id", "kind", "status", "promotion_id", "total_before", "total_after", "created_at", "paid_at"}

const selectOrder = `SELECT id, user_id, kind, status, promotion_id, total_before, total_after, created_at, paid_at FROM orders`

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func draftRow(rows *pgxmock.Rows, id int, created time.Time) *pgxmock.Rows {
	return rows.AddRow(id, 1, domain.OrderKindCart, domain.OrderStatusDraft, (*int)(nil), "0", "0", created, (*time.Time)(nil))
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	promoID := 3

	tests := []struct {
		name      string
		orderID   int
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name:    "Order exists",
			orderID: 10,
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(10, 1, domain.OrderKindCart, domain.OrderStatusPaid, &promoID, "40.00", "36.00", now, &now)
				mock.ExpectQuery(regexp.QuoteMeta(selectOrder + ` WHERE id = $1`)).
					WithArgs(10).
					WillReturnRows(rows)
			},
			result: &domain.Order{
				ID: 10, UserID: 1, Kind: domain.OrderKindCart, Status: domain.OrderStatusPaid, PromotionID: &promoID,
				TotalBefore: decimal.RequireFromString("40.00"), TotalAfter: decimal.RequireFromString("36.00"),
				CreatedAt: now, PaidAt: &now,
			},
		},
		{
			name:    "Order does not exist",
			orderID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectOrder + ` WHERE id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:    "Database error",
			orderID: 10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectOrder + ` WHERE id = $1`)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.orderID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(selectOrder + ` WHERE id = $1 FOR UPDATE`)).
		WithArgs(5).
		WillReturnRows(draftRow(pgxmock.NewRows(columns), 5, now))

	order, err := repo.GetForUpdate(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, 5, order.ID)
	assert.True(t, order.IsDraft())
	assert.Nil(t, order.PromotionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateDraft(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()
	insert := regexp.QuoteMeta(`INSERT INTO orders (user_id, kind, status, total_before, total_after) VALUES ($1, $2, 'DRAFT', 0, 0) ON CONFLICT DO NOTHING RETURNING`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		orderID   int
	}{
		{
			name: "Creates new draft",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(insert).
						WithArgs(1, domain.OrderKindCart).
						WillReturnRows(draftRow(pgxmock.NewRows(columns), 7, now))
					return fn(ctx)
				})
			},
			orderID: 7,
		},
		{
			name: "Returns existing draft on conflict",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(insert).
						WithArgs(1, domain.OrderKindCart).
						WillReturnRows(pgxmock.NewRows(columns))
					mock.ExpectQuery(regexp.QuoteMeta(selectOrder + ` WHERE user_id = $1 AND status = 'DRAFT' AND kind = 'CART'`)).
						WithArgs(1).
						WillReturnRows(draftRow(pgxmock.NewRows(columns), 4, now))
					return fn(ctx)
				})
			},
			orderID: 4,
		},
		{
			name: "Retries when the conflicting draft is gone",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(insert).
						WithArgs(1, domain.OrderKindCart).
						WillReturnRows(pgxmock.NewRows(columns))
					mock.ExpectQuery(regexp.QuoteMeta(selectOrder + ` WHERE user_id = $1 AND status = 'DRAFT' AND kind = 'CART'`)).
						WithArgs(1).
						WillReturnRows(pgxmock.NewRows(columns))
					mock.ExpectQuery(insert).
						WithArgs(1, domain.OrderKindCart).
						WillReturnRows(draftRow(pgxmock.NewRows(columns), 9, now))
					return fn(ctx)
				})
			},
			orderID: 9,
		},
		{
			name: "Gives up when the draft keeps vanishing",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					for i := 0; i < draftAttempts; i++ {
						mock.ExpectQuery(insert).
							WithArgs(1, domain.OrderKindCart).
							WillReturnRows(pgxmock.NewRows(columns))
						mock.ExpectQuery(regexp.QuoteMeta(selectOrder + ` WHERE user_id = $1 AND status = 'DRAFT' AND kind = 'CART'`)).
							WithArgs(1).
							WillReturnRows(pgxmock.NewRows(columns))
					}
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(insert).
						WithArgs(1, domain.OrderKindCart).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			order, err := repo.CreateDraft(context.Background(), 1, domain.OrderKindCart)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.orderID, order.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(selectOrder + ` WHERE user_id = $1 AND ($2::text = '' OR status = $2) ORDER BY created_at DESC, id DESC`)

	mock.ExpectQuery(query).
		WithArgs(1, "").
		WillReturnRows(draftRow(draftRow(pgxmock.NewRows(columns), 2, now), 1, now))

	orders, err := repo.ListByUser(context.Background(), 1, "")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, 2, orders[0].ID)

	mock.ExpectQuery(query).
		WithArgs(1, domain.OrderStatusPaid).
		WillReturnError(errors.New("database error"))

	orders, err = repo.ListByUser(context.Background(), 1, domain.OrderStatusPaid)
	assert.Error(t, err)
	assert.Nil(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Items(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"order_id", "game_id", "name", "unit_price", "added_at"}).
		AddRow(1, 10, "Hades", "24.99", now).
		AddRow(1, 11, "Celeste", "19.99", now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT order_id, game_id, name, unit_price, added_at FROM cart_items WHERE order_id = $1`)).
		WithArgs(1).
		WillReturnRows(rows)

	items, err := repo.Items(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, []domain.CartItem{
		{OrderID: 1, GameID: 10, Name: "Hades", UnitPrice: decimal.RequireFromString("24.99"), AddedAt: now},
		{OrderID: 1, GameID: 11, Name: "Celeste", UnitPrice: decimal.RequireFromString("19.99"), AddedAt: now},
	}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddItem(t *testing.T) {
	repo, mock, _ := NewMock(t)
	item := domain.CartItem{OrderID: 1, GameID: 10, Name: "Hades", UnitPrice: decimal.RequireFromString("24.99")}
	query := regexp.QuoteMeta(`INSERT INTO cart_items (order_id, game_id, name, unit_price) VALUES ($1, $2, $3, $4)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Adds item",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(1, 10, "Hades", pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Duplicate line",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(1, 10, "Hades", pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectErr: domain.ErrAlreadyInCart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.AddItem(context.Background(), item)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_RemoveItem(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`DELETE FROM cart_items WHERE order_id = $1 AND game_id = $2`)

	mock.ExpectExec(query).WithArgs(1, 10).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	removed, err := repo.RemoveItem(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.True(t, removed)

	mock.ExpectExec(query).WithArgs(1, 11).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	removed, err = repo.RemoveItem(context.Background(), 1, 11)
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestRepository_SaveTotals(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE orders SET promotion_id = $2, total_before = $3, total_after = $4 WHERE id = $1 AND status = 'DRAFT'`)
	promoID := 2

	mock.ExpectExec(query).
		WithArgs(1, &promoID, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.SaveTotals(context.Background(), 1, &promoID, decimal.NewFromInt(40), decimal.NewFromInt(36)))

	mock.ExpectExec(query).
		WithArgs(1, (*int)(nil), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := repo.SaveTotals(context.Background(), 1, nil, decimal.NewFromInt(40), decimal.NewFromInt(40))
	assert.ErrorIs(t, err, domain.ErrNotDraft)
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE orders SET status = 'PAID', promotion_id = $2, total_before = $3, total_after = $4, paid_at = $5 WHERE id = $1 AND status = 'DRAFT'`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Marks draft paid",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(1, (*int)(nil), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Already paid",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(1, (*int)(nil), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: domain.ErrNotDraft,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(1, (*int)(nil), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.MarkPaid(context.Background(), 1, nil, decimal.NewFromInt(10), decimal.NewFromInt(10), time.Now())
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`DELETE FROM orders WHERE id = $1 AND status = 'DRAFT'`)

	mock.ExpectExec(query).WithArgs(3).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec(query).WithArgs(3).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), domain.ErrNotDraft)
}

func TestRepository_TopSellers(t *testing.T) {
	repo, mock, _ := NewMock(t)
	first := time.Date(2024, 3, 1, 8, 12, 0, 0, time.UTC)
	last := first.Add(13 * time.Hour)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`WHERE o.status = 'PAID' AND o.paid_at IS NOT NULL AND ($1::date IS NULL OR (o.paid_at AT TIME ZONE 'UTC')::date = $1::date) GROUP BY ci.game_id ORDER BY count(*) DESC, sum(ci.unit_price) DESC, ci.game_id LIMIT $2`)
	cols := []string{"game_id", "name", "count", "sum", "min", "max"}

	mock.ExpectQuery(query).
		WithArgs(&day, 5).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(42, "Hades", 3, "74.97", first, last).
			AddRow(7, "Celeste", 1, "19.99", first, first))

	sellers, err := repo.TopSellers(context.Background(), &day, 5)
	assert.NoError(t, err)
	assert.Len(t, sellers, 2)
	assert.Equal(t, 42, sellers[0].GameID)
	assert.Equal(t, 3, sellers[0].SoldCount)
	assert.True(t, decimal.RequireFromString("74.97").Equal(sellers[0].TotalRevenue))
	assert.Equal(t, last, sellers[0].LastPaidAt)

	mock.ExpectQuery(query).
		WithArgs((*time.Time)(nil), 5).
		WillReturnRows(pgxmock.NewRows(cols))

	sellers, err = repo.TopSellers(context.Background(), nil, 5)
	assert.NoError(t, err)
	assert.Empty(t, sellers)

	mock.ExpectQuery(query).
		WithArgs((*time.Time)(nil), 5).
		WillReturnError(errors.New("database error"))

	sellers, err = repo.TopSellers(context.Background(), nil, 5)
	assert.Error(t, err)
	assert.Nil(t, sellers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
