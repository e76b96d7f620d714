package cartservice

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/pg"
	"github.com/GlebRadaev/gameshop/internal/pricing"
)

//go:generate mockgen -source=cartservice.go -destination=mock_cartservice.go -package=cartservice

type OrderRepo interface {
	FindByID(ctx context.Context, orderID int) (*domain.Order, error)
	GetForUpdate(ctx context.Context, orderID int) (*domain.Order, error)
	CreateDraft(ctx context.Context, userID int, kind string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int, status string) ([]domain.Order, error)
	Items(ctx context.Context, orderID int) ([]domain.CartItem, error)
	AddItem(ctx context.Context, item domain.CartItem) error
	RemoveItem(ctx context.Context, orderID, gameID int) (bool, error)
	SaveTotals(ctx context.Context, orderID int, promoID *int, before, after decimal.Decimal) error
	Delete(ctx context.Context, orderID int) error
	TopSellers(ctx context.Context, day *time.Time, limit int) ([]domain.TopSeller, error)
}

type PromoRepo interface {
	FindByID(ctx context.Context, promoID int) (*domain.Promotion, error)
	FindByCode(ctx context.Context, code string) (*domain.Promotion, error)
}

type Catalog interface {
	Lookup(ctx context.Context, gameID int) (*domain.Game, error)
}

type Guard interface {
	Check(ctx context.Context, userID int, games []domain.Game) error
}

// Service drives a cart through its DRAFT lifecycle. Every mutation runs in
// one transaction holding the order row lock and ends with a recalculation.
type Service struct {
	txManager pg.TXManager
	orders    OrderRepo
	promos    PromoRepo
	catalog   Catalog
	guard     Guard
}

func New(txManager pg.TXManager, orders OrderRepo, promos PromoRepo, catalog Catalog, guard Guard) *Service {
	return &Service{
		txManager: txManager,
		orders:    orders,
		promos:    promos,
		catalog:   catalog,
		guard:     guard,
	}
}

// NormalizeCode trims and upper-cases a promotion code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func checkOwned(order *domain.Order, userID int) error {
	if order == nil || order.UserID != userID {
		return domain.ErrOrderNotFound
	}
	if !order.IsDraft() {
		return domain.ErrNotDraft
	}
	return nil
}

func (s *Service) lockDraft(ctx context.Context, orderID, userID int) (*domain.Order, error) {
	order, err := s.orders.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := checkOwned(order, userID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) CreateDraft(ctx context.Context, userID int) (*domain.OrderDetails, error) {
	order, err := s.orders.CreateDraft(ctx, userID, domain.OrderKindCart)
	if err != nil {
		return nil, err
	}
	items, err := s.orders.Items(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &domain.OrderDetails{Order: order, Items: items}, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID, userID int) (*domain.OrderDetails, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	items, err := s.orders.Items(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &domain.OrderDetails{Order: order, Items: items}, nil
}

func (s *Service) ListOrders(ctx context.Context, userID int, status string) ([]domain.Order, error) {
	status = strings.ToUpper(status)
	switch status {
	case "", domain.OrderStatusDraft, domain.OrderStatusPaid:
	default:
		return nil, &domain.Error{Kind: domain.ErrValidation, Msg: "unknown order status " + status}
	}
	return s.orders.ListByUser(ctx, userID, status)
}

const topSellersLimit = 5

// TopSellers ranks the best selling games over all time, or over one UTC day
// given as YYYY-MM-DD.
func (s *Service) TopSellers(ctx context.Context, date string) ([]domain.TopSeller, error) {
	var day *time.Time
	if date != "" {
		d, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return nil, &domain.Error{Kind: domain.ErrValidation, Msg: "date must be YYYY-MM-DD"}
		}
		day = &d
	}
	return s.orders.TopSellers(ctx, day, topSellersLimit)
}

// AddItem snapshots the catalog price into a new cart line. The catalog is
// queried before the transaction so no lock is held across the call.
func (s *Service) AddItem(ctx context.Context, orderID, userID, gameID int) (*domain.OrderDetails, error) {
	if gameID <= 0 {
		return nil, domain.ErrInvalidGames
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := checkOwned(order, userID); err != nil {
		return nil, err
	}
	game, err := s.catalog.Lookup(ctx, gameID)
	if err != nil {
		return nil, err
	}

	var details *domain.OrderDetails
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.lockDraft(ctx, orderID, userID)
		if err != nil {
			return err
		}
		if err := s.guard.Check(ctx, userID, []domain.Game{*game}); err != nil {
			return err
		}
		item := domain.CartItem{OrderID: order.ID, GameID: game.ID, Name: game.Name, UnitPrice: pricing.Round2(game.Price)}
		if err := s.orders.AddItem(ctx, item); err != nil {
			return err
		}
		details, err = s.recalculate(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (s *Service) RemoveItem(ctx context.Context, orderID, userID, gameID int) (*domain.OrderDetails, error) {
	return s.mutate(ctx, orderID, userID, func(ctx context.Context, order *domain.Order) error {
		removed, err := s.orders.RemoveItem(ctx, order.ID, gameID)
		if err != nil {
			return err
		}
		if !removed {
			return domain.ErrItemNotFound
		}
		return nil
	})
}

// ApplyPromotion attaches a promotion whose window is open. The usage cap is
// left to payment so that carts do not reserve uses.
func (s *Service) ApplyPromotion(ctx context.Context, orderID, userID int, code string) (*domain.OrderDetails, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, domain.ErrInvalidCode
	}
	return s.mutate(ctx, orderID, userID, func(ctx context.Context, order *domain.Order) error {
		promo, err := s.promos.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if promo == nil {
			return domain.ErrPromoNotFound
		}
		if !promo.InWindow(time.Now()) {
			return domain.ErrPromoExpired
		}
		order.PromotionID = &promo.ID
		return nil
	})
}

func (s *Service) ClearPromotion(ctx context.Context, orderID, userID int) (*domain.OrderDetails, error) {
	return s.mutate(ctx, orderID, userID, func(_ context.Context, order *domain.Order) error {
		order.PromotionID = nil
		return nil
	})
}

func (s *Service) Recalculate(ctx context.Context, orderID, userID int) (*domain.OrderDetails, error) {
	return s.mutate(ctx, orderID, userID, func(context.Context, *domain.Order) error {
		return nil
	})
}

func (s *Service) DeleteDraft(ctx context.Context, orderID, userID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.lockDraft(ctx, orderID, userID)
		if err != nil {
			return err
		}
		return s.orders.Delete(ctx, order.ID)
	})
}

func (s *Service) mutate(ctx context.Context, orderID, userID int, fn func(context.Context, *domain.Order) error) (*domain.OrderDetails, error) {
	var details *domain.OrderDetails
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.lockDraft(ctx, orderID, userID)
		if err != nil {
			return err
		}
		if err := fn(ctx, order); err != nil {
			return err
		}
		details, err = s.recalculate(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

// recalculate prices the current lines and persists the totals. A promotion
// outside its window is detached rather than failing the call.
func (s *Service) recalculate(ctx context.Context, order *domain.Order) (*domain.OrderDetails, error) {
	items, err := s.orders.Items(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	var promo *domain.Promotion
	if order.PromotionID != nil {
		if promo, err = s.promos.FindByID(ctx, *order.PromotionID); err != nil {
			return nil, err
		}
	}

	res := pricing.Calculate(items, promo, time.Now())
	if order.PromotionID != nil && !res.Applied {
		zap.L().Info("detaching promotion outside its window",
			zap.Int("order_id", order.ID), zap.Int("promotion_id", *order.PromotionID))
		order.PromotionID = nil
	}

	if err := s.orders.SaveTotals(ctx, order.ID, order.PromotionID, res.Subtotal, res.Total); err != nil {
		return nil, err
	}
	order.TotalBefore = res.Subtotal
	order.TotalAfter = res.Total
	return &domain.OrderDetails{Order: order, Items: items}, nil
}
