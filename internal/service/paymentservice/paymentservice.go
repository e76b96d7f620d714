package paymentservice

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/pg"
	"github.com/GlebRadaev/gameshop/internal/pricing"
	"github.com/GlebRadaev/gameshop/internal/service/cartservice"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

type OrderRepo interface {
	GetForUpdate(ctx context.Context, orderID int) (*domain.Order, error)
	CreateDraft(ctx context.Context, userID int, kind string) (*domain.Order, error)
	Items(ctx context.Context, orderID int) ([]domain.CartItem, error)
	AddItem(ctx context.Context, item domain.CartItem) error
	SaveTotals(ctx context.Context, orderID int, promoID *int, before, after decimal.Decimal) error
	MarkPaid(ctx context.Context, orderID int, promoID *int, before, after decimal.Decimal, paidAt time.Time) error
}

type PromoRepo interface {
	FindByID(ctx context.Context, promoID int) (*domain.Promotion, error)
	FindByCode(ctx context.Context, code string) (*domain.Promotion, error)
	GetForUpdate(ctx context.Context, promoID int) (*domain.Promotion, error)
	HasRedemption(ctx context.Context, promoID, userID int) (bool, error)
	CreateRedemption(ctx context.Context, promoID, userID, orderID int) error
	IncrementUsage(ctx context.Context, promoID int) error
}

type Wallet interface {
	Lock(ctx context.Context, userID int) (*domain.Wallet, error)
	DebitForOrder(ctx context.Context, userID, orderID int, amount decimal.Decimal) (decimal.Decimal, error)
}

type Guard interface {
	Check(ctx context.Context, userID int, games []domain.Game) error
	Grant(ctx context.Context, userID, orderID int, items []domain.CartItem) error
}

type Catalog interface {
	LookupMany(ctx context.Context, ids []int) ([]domain.Game, error)
}

type Recorder interface {
	ObserveSettlement(kind string, err error)
}

const (
	kindCart   = "cart"
	kindBuyNow = "buy_now"
)

// Service settles orders. Each settlement is one transaction that takes the
// order, wallet and promotion row locks in that order.
type Service struct {
	txManager pg.TXManager
	orders    OrderRepo
	promos    PromoRepo
	wallet    Wallet
	guard     Guard
	catalog   Catalog
	recorder  Recorder
}

func New(txManager pg.TXManager, orders OrderRepo, promos PromoRepo, wallet Wallet, guard Guard, catalog Catalog, recorder Recorder) *Service {
	return &Service{
		txManager: txManager,
		orders:    orders,
		promos:    promos,
		wallet:    wallet,
		guard:     guard,
		catalog:   catalog,
		recorder:  recorder,
	}
}

func (s *Service) Pay(ctx context.Context, orderID, userID int) (*domain.Receipt, error) {
	var receipt *domain.Receipt
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		receipt, err = s.settle(ctx, orderID, userID, nil)
		return err
	})
	s.recorder.ObserveSettlement(kindCart, err)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// BuyNow buys games directly. A promotion code that is unknown or outside
// its window does not fail the purchase; the receipt carries the reason.
func (s *Service) BuyNow(ctx context.Context, userID int, gameIDs []int, code string) (*domain.Receipt, error) {
	receipt, err := s.buyNow(ctx, userID, gameIDs, code)
	s.recorder.ObserveSettlement(kindBuyNow, err)
	return receipt, err
}

func (s *Service) buyNow(ctx context.Context, userID int, gameIDs []int, code string) (*domain.Receipt, error) {
	ids, err := uniqueIDs(gameIDs)
	if err != nil {
		return nil, err
	}
	games, err := s.catalog.LookupMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	code = cartservice.NormalizeCode(code)

	var receipt *domain.Receipt
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.guard.Check(ctx, userID, games); err != nil {
			return err
		}
		order, err := s.orders.CreateDraft(ctx, userID, domain.OrderKindBuyNow)
		if err != nil {
			return err
		}
		items := make([]domain.CartItem, 0, len(games))
		for _, g := range games {
			item := domain.CartItem{OrderID: order.ID, GameID: g.ID, Name: g.Name, UnitPrice: pricing.Round2(g.Price)}
			if err := s.orders.AddItem(ctx, item); err != nil {
				return err
			}
			items = append(items, item)
		}

		var notice error
		if code != "" {
			promo, err := s.promos.FindByCode(ctx, code)
			if err != nil {
				return err
			}
			switch {
			case promo == nil:
				notice = domain.ErrPromoNotFound
			case !promo.InWindow(time.Now()):
				notice = domain.ErrPromoExpired
			default:
				res := pricing.Calculate(items, promo, time.Now())
				if err := s.orders.SaveTotals(ctx, order.ID, &promo.ID, res.Subtotal, res.Total); err != nil {
					return err
				}
			}
		}

		receipt, err = s.settle(ctx, order.ID, userID, notice)
		return err
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func uniqueIDs(gameIDs []int) ([]int, error) {
	seen := make(map[int]struct{}, len(gameIDs))
	ids := make([]int, 0, len(gameIDs))
	for _, id := range gameIDs {
		if id <= 0 {
			return nil, domain.ErrInvalidGames
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, domain.ErrInvalidGames
	}
	sort.Ints(ids)
	return ids, nil
}

func gamesOf(items []domain.CartItem) []domain.Game {
	games := make([]domain.Game, len(items))
	for i, it := range items {
		games[i] = it.Game()
	}
	return games
}

// settle runs inside a transaction. Any error aborts the whole unit.
func (s *Service) settle(ctx context.Context, orderID, userID int, notice error) (*domain.Receipt, error) {
	order, err := s.orders.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	if !order.IsDraft() {
		return nil, domain.ErrNotDraft
	}

	items, err := s.orders.Items(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := time.Now()
	var promo *domain.Promotion
	if order.PromotionID != nil {
		if promo, err = s.promos.FindByID(ctx, *order.PromotionID); err != nil {
			return nil, err
		}
	}
	quote := pricing.Calculate(items, promo, now)

	wallet, err := s.wallet.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	// The wallet lock serializes a user's settlements, so ownership read
	// after it reflects every purchase committed before this one.
	if err := s.guard.Check(ctx, userID, gamesOf(items)); err != nil {
		return nil, err
	}
	if wallet.Balance.LessThan(quote.Total) {
		return nil, domain.ErrInsufficientFunds
	}

	promo = nil
	if order.PromotionID != nil {
		locked, err := s.promos.GetForUpdate(ctx, *order.PromotionID)
		if err != nil {
			return nil, err
		}
		switch {
		case locked == nil || !locked.InWindow(now):
			notice = domain.ErrPromoExpired
		case locked.Exhausted():
			notice = domain.ErrPromoExhausted
		default:
			redeemed, err := s.promos.HasRedemption(ctx, locked.ID, userID)
			if err != nil {
				return nil, err
			}
			if redeemed {
				return nil, domain.ErrPromoAlreadyRedeemed
			}
			promo = locked
		}
		if promo == nil {
			zap.L().Info("promotion dropped at payment",
				zap.Int("order_id", orderID), zap.Int("promotion_id", *order.PromotionID), zap.Error(notice))
		}
	}

	final := pricing.Calculate(items, promo, now)
	if wallet.Balance.LessThan(final.Total) {
		return nil, domain.ErrInsufficientFunds
	}

	if final.Total.IsPositive() {
		if _, err := s.wallet.DebitForOrder(ctx, userID, orderID, final.Total); err != nil {
			return nil, err
		}
	}

	var promoID *int
	if promo != nil {
		promoID = &promo.ID
	}
	if err := s.orders.MarkPaid(ctx, orderID, promoID, final.Subtotal, final.Total, now); err != nil {
		return nil, err
	}
	if err := s.guard.Grant(ctx, userID, orderID, items); err != nil {
		return nil, err
	}
	if promo != nil {
		if err := s.promos.CreateRedemption(ctx, promo.ID, userID, orderID); err != nil {
			return nil, err
		}
		if err := s.promos.IncrementUsage(ctx, promo.ID); err != nil {
			return nil, err
		}
	}

	order.Status = domain.OrderStatusPaid
	order.PromotionID = promoID
	order.TotalBefore = final.Subtotal
	order.TotalAfter = final.Total
	order.PaidAt = &now

	zap.L().Info("order paid",
		zap.Int("order_id", orderID), zap.Int("user_id", userID), zap.String("total", final.Total.StringFixed(2)))

	return &domain.Receipt{
		Order:       order,
		Items:       items,
		Charged:     final.Total,
		Discount:    final.Discount,
		PromoNotice: notice,
	}, nil
}
