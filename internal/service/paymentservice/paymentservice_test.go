package paymentservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/pg"
	"github.com/GlebRadaev/gameshop/internal/service/walletservice"
)

type decMatcher struct{ want decimal.Decimal }

func (m decMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decMatcher) String() string { return "decimal " + m.want.String() }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decEq(s string) gomock.Matcher { return decMatcher{dec(s)} }

type mocks struct {
	orders   *MockOrderRepo
	promos   *MockPromoRepo
	wallet   *MockWallet
	guard    *MockGuard
	catalog  *MockCatalog
	recorder *MockRecorder
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	m := &mocks{
		orders:   NewMockOrderRepo(ctrl),
		promos:   NewMockPromoRepo(ctrl),
		wallet:   NewMockWallet(ctrl),
		guard:    NewMockGuard(ctrl),
		catalog:  NewMockCatalog(ctrl),
		recorder: NewMockRecorder(ctrl),
	}
	m.recorder.EXPECT().ObserveSettlement(gomock.Any(), gomock.Any()).AnyTimes()
	return New(tx, m.orders, m.promos, m.wallet, m.guard, m.catalog, m.recorder), m
}

func promoted(id, userID, promoID int) *domain.Order {
	o := &domain.Order{ID: id, UserID: userID, Kind: domain.OrderKindCart, Status: domain.OrderStatusDraft}
	if promoID > 0 {
		o.PromotionID = &promoID
	}
	return o
}

func promotion(id int, tp, value string, maxUses, used int) *domain.Promotion {
	now := time.Now()
	return &domain.Promotion{
		ID: id, Code: "SPRING", DiscountType: tp, DiscountValue: dec(value),
		MaxUses: maxUses, UsedCount: used,
		StartsAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour),
	}
}

var cartItems = []domain.CartItem{
	{OrderID: 5, GameID: 1, Name: "Hades", UnitPrice: dec("60.00")},
	{OrderID: 5, GameID: 2, Name: "Celeste", UnitPrice: dec("40.00")},
}

func wallet(balance string) *domain.Wallet {
	return &domain.Wallet{UserID: 1, Balance: dec(balance)}
}

func TestPay(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		charged     string
		notice      error
		expectedErr error
	}{
		{
			name: "Full price",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(promoted(5, 1, 0), nil)
				m.orders.EXPECT().Items(gomock.Any(), 5).Return(cartItems, nil)
				m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Len(2)).Return(nil)
				m.wallet.EXPECT().Lock(gomock.Any(), 1).Return(wallet("150"), nil)
				m.wallet.EXPECT().DebitForOrder(gomock.Any(), 1, 5, decEq("100")).Return(dec("50"), nil)
				m.orders.EXPECT().MarkPaid(gomock.Any(), 5, (*int)(nil), decEq("100"), decEq("100"), gomock.Any()).Return(nil)
				m.guard.EXPECT().Grant(gomock.Any(), 1, 5, cartItems).Return(nil)
			},
			charged: "100",
		},
		{
			name: "Percent promotion is redeemed",
			prepareMock: func(m *mocks) {
				p := promotion(7, domain.DiscountPercent, "10", 5, 0)
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(promoted(5, 1, 7), nil)
				m.orders.EXPECT().Items(gomock.Any(), 5).Return(cartItems, nil)
				m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Any()).Return(nil)
				m.promos.EXPECT().FindByID(gomock.Any(), 7).Return(p, nil)
				m.wallet.EXPECT().Lock(gomock.Any(), 1).Return(wallet("90"), nil)
				m.promos.EXPECT().GetForUpdate(gomock.Any(), 7).Return(p, nil)
				m.promos.EXPECT().HasRedemption(gomock.Any(), 7, 1).Return(false, nil)
				m.wallet.EXPECT().DebitForOrder(gomock.Any(), 1, 5, decEq("90")).Return(dec("0"), nil)
				m.orders.EXPECT().MarkPaid(gomock.Any(), 5, gomock.Any(), decEq("100"), decEq("90"), gomock.Any()).Return(nil)
				m.guard.EXPECT().Grant(gomock.Any(), 1, 5, cartItems).Return(nil)
				m.promos.EXPECT().CreateRedemption(gomock.Any(), 7, 1, 5).Return(nil)
				m.promos.EXPECT().IncrementUsage(gomock.Any(), 7).Return(nil)
			},
			charged: "90",
		},
		{
			name: "Exhausted promotion is dropped",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(promoted(5, 1, 7), nil)
				m.orders.EXPECT().Items(gomock.Any(), 5).Return(cartItems, nil)
				m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Any()).Return(nil)
				m.promos.EXPECT().FindByID(gomock.Any(), 7).Return(promotion(7, domain.DiscountFixed, "20", 1, 0), nil)
				m.wallet.EXPECT().Lock(gomock.Any(), 1).Return(wallet("100"), nil)
				m.promos.EXPECT().GetForUpdate(gomock.Any(), 7).Return(promotion(7, domain.DiscountFixed, "20", 1, 1), nil)
				m.wallet.EXPECT().DebitForOrder(gomock.Any(), 1, 5, decEq("100")).Return(dec("0"), nil)
				m.orders.EXPECT().MarkPaid(gomock.Any(), 5, (*int)(nil), decEq("100"), decEq("100"), gomock.Any()).Return(nil)
				m.guard.EXPECT().Grant(gomock.Any(), 1, 5, cartItems).Return(nil)
			},
			charged: "100",
			notice:  domain.ErrPromoExhausted,
		},
		{
			name: "Dropped promotion leaves too little money",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(promoted(5, 1, 7), nil)
				m.orders.EXPECT().Items(gomock.Any(), 5).Return(cartItems, nil)
				m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Any()).Return(nil)
				m.promos.EXPECT().FindByID(gomock.Any(), 7).Return(promotion(7, domain.DiscountFixed, "20", 1, 0), nil)
				m.wallet.EXPECT().Lock(gomock.Any(), 1).Return(wallet("80"), nil)
				m.promos.EXPECT().GetForUpdate(gomock.Any(), 7).Return(promotion(7, domain.DiscountFixed, "20", 1, 1), nil)
			},
			expectedErr: domain.ErrInsufficientFunds,
		},
		{
			name: "Promotion already redeemed",
			prepareMock: func(m *mocks) {
				p := promotion(7, domain.DiscountFixed, "20", 0, 0)
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(promoted(5, 1, 7), nil)
				m.orders.EXPECT().Items(gomock.Any(), 5).Return(cartItems, nil)
				m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Any()).Return(nil)
				m.promos.EXPECT().FindByID(gomock.Any(), 7).Return(p, nil)
				m.wallet.EXPECT().Lock(gomock.Any(), 1).Return(wallet("100"), nil)
				m.promos.EXPECT().GetForUpdate(gomock.Any(), 7).Return(p, nil)
				m.promos.EXPECT().HasRedemption(gomock.Any(), 7, 1).Return(true, nil)
			},
			expectedErr: domain.ErrPromoAlreadyRedeemed,
		},
		{
			name: "Free order skips the debit",
			prepareMock: func(m *mocks) {
				p := promotion(7, domain.DiscountPercent, "100", 0, 0)
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(promoted(5, 1, 7), nil)
				m.orders.EXPECT().Items(gomock.Any(), 5).Return(cartItems, nil)
				m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Any()).Return(nil)
				m.promos.EXPECT().FindByID(gomock.Any(), 7).Return(p, nil)
				m.wallet.EXPECT().Lock(gomock.Any(), 1).Return(wallet("0"), nil)
				m.promos.EXPECT().GetForUpdate(gomock.Any(), 7).Return(p, nil)
				m.promos.EXPECT().HasRedemption(gomock.Any(), 7, 1).Return(false, nil)
				m.orders.EXPECT().MarkPaid(gomock.Any(), 5, gomock.Any(), decEq("100"), decEq("0"), gomock.Any()).Return(nil)
				m.guard.EXPECT().Grant(gomock.Any(), 1, 5, cartItems).Return(nil)
				m.promos.EXPECT().CreateRedemption(gomock.Any(), 7, 1, 5).Return(nil)
				m.promos.EXPECT().IncrementUsage(gomock.Any(), 7).Return(nil)
			},
			charged: "0",
		},
		{
			name: "Insufficient funds",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(promoted(5, 1, 0), nil)
				m.orders.EXPECT().Items(gomock.Any(), 5).Return(cartItems, nil)
				m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Any()).Return(nil)
				m.wallet.EXPECT().Lock(gomock.Any(), 1).Return(wallet("99.99"), nil)
			},
			expectedErr: domain.ErrInsufficientFunds,
		},
		{
			name: "Already paid",
			prepareMock: func(m *mocks) {
				o := promoted(5, 1, 0)
				o.Status = domain.OrderStatusPaid
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(o, nil)
			},
			expectedErr: domain.ErrNotDraft,
		},
		{
			name: "Someone else's order",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(promoted(5, 2, 0), nil)
			},
			expectedErr: domain.ErrOrderNotFound,
		},
		{
			name: "Empty cart",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(promoted(5, 1, 0), nil)
				m.orders.EXPECT().Items(gomock.Any(), 5).Return(nil, nil)
			},
			expectedErr: domain.ErrEmptyCart,
		},
		{
			name: "Game bought elsewhere meanwhile",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(promoted(5, 1, 0), nil)
				m.orders.EXPECT().Items(gomock.Any(), 5).Return(cartItems, nil)
				m.wallet.EXPECT().Lock(gomock.Any(), 1).Return(wallet("500"), nil)
				m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Any()).
					Return(&domain.AlreadyOwnedError{Games: []domain.Game{{ID: 1, Name: "Hades"}}})
			},
			expectedErr: domain.ErrAlreadyOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			receipt, err := service.Pay(context.Background(), 5, 1)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, receipt)
				return
			}
			require.NoError(t, err)
			assert.True(t, receipt.Charged.Equal(dec(tt.charged)))
			assert.Equal(t, domain.OrderStatusPaid, receipt.Order.Status)
			assert.NotNil(t, receipt.Order.PaidAt)
			assert.ErrorIs(t, receipt.PromoNotice, tt.notice)
		})
	}
}

func TestBuyNow(t *testing.T) {
	games := []domain.Game{{ID: 1, Name: "Hades", Price: dec("60")}, {ID: 2, Name: "Celeste", Price: dec("40")}}
	buyNowOrder := &domain.Order{ID: 9, UserID: 1, Kind: domain.OrderKindBuyNow, Status: domain.OrderStatusDraft}
	items := []domain.CartItem{
		{OrderID: 9, GameID: 1, Name: "Hades", UnitPrice: dec("60")},
		{OrderID: 9, GameID: 2, Name: "Celeste", UnitPrice: dec("40")},
	}

	settle := func(m *mocks, total string) {
		locked := *buyNowOrder
		m.orders.EXPECT().GetForUpdate(gomock.Any(), 9).Return(&locked, nil)
		m.orders.EXPECT().Items(gomock.Any(), 9).Return(items, nil)
		m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Any()).Return(nil)
		m.wallet.EXPECT().Lock(gomock.Any(), 1).Return(wallet("500"), nil)
		m.wallet.EXPECT().DebitForOrder(gomock.Any(), 1, 9, decEq(total)).Return(dec("400"), nil)
		m.orders.EXPECT().MarkPaid(gomock.Any(), 9, (*int)(nil), decEq("100"), decEq(total), gomock.Any()).Return(nil)
		m.guard.EXPECT().Grant(gomock.Any(), 1, 9, items).Return(nil)
	}
	prepare := func(m *mocks) {
		m.catalog.EXPECT().LookupMany(gomock.Any(), []int{1, 2}).Return(games, nil)
		m.guard.EXPECT().Check(gomock.Any(), 1, games).Return(nil)
		m.orders.EXPECT().CreateDraft(gomock.Any(), 1, domain.OrderKindBuyNow).Return(buyNowOrder, nil)
		m.orders.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	}

	tests := []struct {
		name        string
		ids         []int
		code        string
		prepareMock func(m *mocks)
		notice      error
		expectedErr error
	}{
		{
			name: "Duplicate ids are collapsed",
			ids:  []int{2, 1, 2},
			prepareMock: func(m *mocks) {
				prepare(m)
				settle(m, "100")
			},
		},
		{
			name: "Unknown code is a notice",
			ids:  []int{1, 2},
			code: " nope ",
			prepareMock: func(m *mocks) {
				prepare(m)
				m.promos.EXPECT().FindByCode(gomock.Any(), "NOPE").Return(nil, nil)
				settle(m, "100")
			},
			notice: domain.ErrPromoNotFound,
		},
		{
			name: "Expired code is a notice",
			ids:  []int{1, 2},
			code: "old",
			prepareMock: func(m *mocks) {
				prepare(m)
				p := promotion(7, domain.DiscountFixed, "10", 0, 0)
				p.ExpiresAt = time.Now().Add(-time.Minute)
				m.promos.EXPECT().FindByCode(gomock.Any(), "OLD").Return(p, nil)
				settle(m, "100")
			},
			notice: domain.ErrPromoExpired,
		},
		{
			name:        "Empty selection",
			ids:         nil,
			prepareMock: func(m *mocks) {},
			expectedErr: domain.ErrInvalidGames,
		},
		{
			name:        "Non-positive id",
			ids:         []int{1, 0},
			prepareMock: func(m *mocks) {},
			expectedErr: domain.ErrInvalidGames,
		},
		{
			name: "Unknown game",
			ids:  []int{1, 4},
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().LookupMany(gomock.Any(), []int{1, 4}).Return(nil, &domain.GameNotFoundError{IDs: []int{4}})
			},
			expectedErr: domain.ErrGameNotFound,
		},
		{
			name: "Already owned",
			ids:  []int{1, 2},
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().LookupMany(gomock.Any(), []int{1, 2}).Return(games, nil)
				m.guard.EXPECT().Check(gomock.Any(), 1, games).Return(&domain.AlreadyOwnedError{Games: games[:1]})
			},
			expectedErr: domain.ErrAlreadyOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			receipt, err := service.BuyNow(context.Background(), 1, tt.ids, tt.code)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OrderKindBuyNow, receipt.Order.Kind)
			assert.ErrorIs(t, receipt.PromoNotice, tt.notice)
		})
	}
}

func TestBuyNowWithValidCode(t *testing.T) {
	service, m := NewMock(t)
	games := []domain.Game{{ID: 3, Name: "Hollow Knight", Price: dec("15")}}
	order := &domain.Order{ID: 11, UserID: 1, Kind: domain.OrderKindBuyNow, Status: domain.OrderStatusDraft}
	item := domain.CartItem{OrderID: 11, GameID: 3, Name: "Hollow Knight", UnitPrice: dec("15")}
	p := promotion(7, domain.DiscountFixed, "5", 0, 0)
	promoID := 7
	withPromo := *order
	withPromo.PromotionID = &promoID

	m.catalog.EXPECT().LookupMany(gomock.Any(), []int{3}).Return(games, nil)
	m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Any()).Return(nil).Times(2)
	m.orders.EXPECT().CreateDraft(gomock.Any(), 1, domain.OrderKindBuyNow).Return(order, nil)
	m.orders.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)
	m.promos.EXPECT().FindByCode(gomock.Any(), "SPRING").Return(p, nil)
	m.orders.EXPECT().SaveTotals(gomock.Any(), 11, &promoID, decEq("15"), decEq("10")).Return(nil)
	m.orders.EXPECT().GetForUpdate(gomock.Any(), 11).Return(&withPromo, nil)
	m.orders.EXPECT().Items(gomock.Any(), 11).Return([]domain.CartItem{item}, nil)
	m.promos.EXPECT().FindByID(gomock.Any(), 7).Return(p, nil)
	m.wallet.EXPECT().Lock(gomock.Any(), 1).Return(wallet("10"), nil)
	m.promos.EXPECT().GetForUpdate(gomock.Any(), 7).Return(p, nil)
	m.promos.EXPECT().HasRedemption(gomock.Any(), 7, 1).Return(false, nil)
	m.wallet.EXPECT().DebitForOrder(gomock.Any(), 1, 11, decEq("10")).Return(dec("0"), nil)
	m.orders.EXPECT().MarkPaid(gomock.Any(), 11, &promoID, decEq("15"), decEq("10"), gomock.Any()).Return(nil)
	m.guard.EXPECT().Grant(gomock.Any(), 1, 11, gomock.Any()).Return(nil)
	m.promos.EXPECT().CreateRedemption(gomock.Any(), 7, 1, 11).Return(nil)
	m.promos.EXPECT().IncrementUsage(gomock.Any(), 7).Return(nil)

	receipt, err := service.BuyNow(context.Background(), 1, []int{3}, "spring")

	require.NoError(t, err)
	assert.True(t, receipt.Charged.Equal(dec("10")))
	assert.True(t, receipt.Discount.Equal(dec("5")))
	assert.NoError(t, receipt.PromoNotice)
}

func TestPayWithoutWalletRow(t *testing.T) {
	tests := []struct {
		name        string
		promo       *domain.Promotion
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name:        "Paid cart fails on funds",
			expectedErr: domain.ErrInsufficientFunds,
		},
		{
			name:  "Free cart is settled without a debit",
			promo: promotion(7, domain.DiscountPercent, "100", 0, 0),
			prepareMock: func(m *mocks) {
				m.promos.EXPECT().GetForUpdate(gomock.Any(), 7).Return(promotion(7, domain.DiscountPercent, "100", 0, 0), nil)
				m.promos.EXPECT().HasRedemption(gomock.Any(), 7, 1).Return(false, nil)
				m.orders.EXPECT().MarkPaid(gomock.Any(), 5, gomock.Any(), decEq("100"), decEq("0"), gomock.Any()).Return(nil)
				m.guard.EXPECT().Grant(gomock.Any(), 1, 5, cartItems).Return(nil)
				m.promos.EXPECT().CreateRedemption(gomock.Any(), 7, 1, 5).Return(nil)
				m.promos.EXPECT().IncrementUsage(gomock.Any(), 7).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tx := pg.NewMockTXManager(ctrl)
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
				return fn(ctx)
			}).AnyTimes()
			wallets := walletservice.NewMockWalletRepo(ctrl)
			wallets.EXPECT().Ensure(gomock.Any(), 1).Return(nil)
			wallets.EXPECT().GetForUpdate(gomock.Any(), 1).Return(wallet("0"), nil)
			walletService := walletservice.New(tx, wallets,
				walletservice.NewMockLedgerRepo(ctrl), walletservice.NewMockUserRepo(ctrl))

			m := &mocks{
				orders:   NewMockOrderRepo(ctrl),
				promos:   NewMockPromoRepo(ctrl),
				guard:    NewMockGuard(ctrl),
				catalog:  NewMockCatalog(ctrl),
				recorder: NewMockRecorder(ctrl),
			}
			m.recorder.EXPECT().ObserveSettlement("cart", gomock.Any())
			order := promoted(5, 1, 0)
			if tt.promo != nil {
				order = promoted(5, 1, tt.promo.ID)
				m.promos.EXPECT().FindByID(gomock.Any(), tt.promo.ID).Return(tt.promo, nil)
			}
			m.orders.EXPECT().GetForUpdate(gomock.Any(), 5).Return(order, nil)
			m.orders.EXPECT().Items(gomock.Any(), 5).Return(cartItems, nil)
			m.guard.EXPECT().Check(gomock.Any(), 1, gomock.Any()).Return(nil)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}
			service := New(tx, m.orders, m.promos, walletService, m.guard, m.catalog, m.recorder)

			receipt, err := service.Pay(context.Background(), 5, 1)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.NotErrorIs(t, err, domain.ErrAccountNotFound)
				assert.Nil(t, receipt)
				return
			}
			require.NoError(t, err)
			assert.True(t, receipt.Charged.IsZero())
			assert.Equal(t, domain.OrderStatusPaid, receipt.Order.Status)
		})
	}
}
