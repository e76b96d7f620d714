package promoservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/pg"
	"github.com/GlebRadaev/gameshop/internal/service/cartservice"
)

//go:generate mockgen -source=promoservice.go -destination=mock_promoservice.go -package=promoservice

type Repo interface {
	Create(ctx context.Context, in domain.PromotionInput) (*domain.Promotion, error)
	FindByID(ctx context.Context, promoID int) (*domain.Promotion, error)
	FindByCode(ctx context.Context, code string) (*domain.Promotion, error)
	GetForUpdate(ctx context.Context, promoID int) (*domain.Promotion, error)
	List(ctx context.Context, f domain.PromotionFilter, now time.Time) ([]domain.Promotion, int, error)
	Update(ctx context.Context, promoID int, in domain.PromotionInput) (*domain.Promotion, error)
	Delete(ctx context.Context, promoID int) error
	CountRedemptions(ctx context.Context, promoID int) (int, error)
	ListActive(ctx context.Context, now time.Time) ([]domain.Promotion, error)
	Expire(ctx context.Context, promoID int, now time.Time) (*domain.Promotion, error)
	ExpireExhausted(ctx context.Context, now time.Time) (int64, error)
	HasRedemption(ctx context.Context, promoID, userID int) (bool, error)
	RedemptionsByPromotion(ctx context.Context, promoID int) ([]domain.Redemption, error)
	RedemptionsByUser(ctx context.Context, userID int) ([]domain.Redemption, error)
}

var hundred = decimal.NewFromInt(100)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	txManager pg.TXManager
	repo      Repo
}

func New(txManager pg.TXManager, repo Repo) *Service {
	return &Service{txManager: txManager, repo: repo}
}

// normalize upper-cases the code, rounds the value to cents and checks the
// discount bounds and window.
func normalize(in domain.PromotionInput) (domain.PromotionInput, error) {
	in.Code = cartservice.NormalizeCode(in.Code)
	if in.Code == "" {
		return in, domain.ErrInvalidCode
	}
	in.DiscountValue = in.DiscountValue.Round(2)
	switch in.DiscountType {
	case domain.DiscountPercent:
		if !in.DiscountValue.IsPositive() || in.DiscountValue.GreaterThan(hundred) {
			return in, domain.ErrInvalidPromo
		}
	case domain.DiscountFixed:
		if !in.DiscountValue.IsPositive() {
			return in, domain.ErrInvalidPromo
		}
	default:
		return in, domain.ErrInvalidPromo
	}
	if in.MaxUses < 0 || !in.StartsAt.Before(in.ExpiresAt) {
		return in, domain.ErrInvalidPromo
	}
	return in, nil
}

func (s *Service) Create(ctx context.Context, in domain.PromotionInput) (*domain.Promotion, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	promo, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	zap.L().Info("promotion created", zap.Int("promotion_id", promo.ID), zap.String("code", promo.Code))
	return promo, nil
}

// Update applies patch under the promotion's row lock, so a payment redeeming
// it sees either the old or the new terms. The cap cannot drop below uses
// already consumed.
func (s *Service) Update(ctx context.Context, promoID int, patch domain.PromotionPatch) (*domain.Promotion, error) {
	if patch.Empty() {
		return nil, domain.ErrEmptyPatch
	}

	var promo *domain.Promotion
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetForUpdate(ctx, promoID)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrPromoNotFound
		}
		in, err := normalize(patch.Apply(cur))
		if err != nil {
			return err
		}
		if in.MaxUses > 0 && in.MaxUses < cur.UsedCount {
			return domain.ErrInvalidPromo
		}
		promo, err = s.repo.Update(ctx, promoID, in)
		if err != nil {
			return err
		}
		if promo == nil {
			return domain.ErrPromoNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("promotion updated", zap.Int("promotion_id", promo.ID), zap.String("code", promo.Code))
	return promo, nil
}

// Remove deletes a promotion nobody has redeemed. A redeemed one is expired
// instead and deactivated is true.
func (s *Service) Remove(ctx context.Context, promoID int) (*domain.Promotion, bool, error) {
	var (
		promo       *domain.Promotion
		deactivated bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetForUpdate(ctx, promoID)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrPromoNotFound
		}
		used, err := s.repo.CountRedemptions(ctx, promoID)
		if err != nil {
			return err
		}
		if used == 0 {
			promo = cur
			return s.repo.Delete(ctx, promoID)
		}
		deactivated = true
		promo, err = s.repo.Expire(ctx, promoID, time.Now())
		return err
	})
	if err != nil {
		return nil, false, err
	}
	zap.L().Info("promotion removed", zap.Int("promotion_id", promoID), zap.Bool("deactivated", deactivated))
	return promo, deactivated, nil
}

// List pages through promotions for the admin console.
func (s *Service) List(ctx context.Context, f domain.PromotionFilter) ([]domain.Promotion, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	return s.repo.List(ctx, f, time.Now())
}

func (s *Service) Get(ctx context.Context, promoID int) (*domain.Promotion, error) {
	promo, err := s.repo.FindByID(ctx, promoID)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, domain.ErrPromoNotFound
	}
	return promo, nil
}

// Deactivate ends the promotion's window now. Already-ended promotions keep
// their original expiry.
func (s *Service) Deactivate(ctx context.Context, promoID int) (*domain.Promotion, error) {
	promo, err := s.repo.Expire(ctx, promoID, time.Now())
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, domain.ErrPromoNotFound
	}
	return promo, nil
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Promotion, error) {
	return s.repo.ListActive(ctx, time.Now())
}

// Validate reports whether userID could redeem code right now. It takes no
// locks and reserves nothing; payment re-checks everything.
func (s *Service) Validate(ctx context.Context, userID int, code string) (*domain.Promotion, error) {
	code = cartservice.NormalizeCode(code)
	if code == "" {
		return nil, domain.ErrInvalidCode
	}
	promo, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, domain.ErrPromoNotFound
	}
	if !promo.InWindow(time.Now()) {
		return nil, domain.ErrPromoExpired
	}
	if promo.Exhausted() {
		return nil, domain.ErrPromoExhausted
	}
	redeemed, err := s.repo.HasRedemption(ctx, promo.ID, userID)
	if err != nil {
		return nil, err
	}
	if redeemed {
		return nil, domain.ErrPromoAlreadyRedeemed
	}
	return promo, nil
}

func (s *Service) Redemptions(ctx context.Context, promoID int) ([]domain.Redemption, error) {
	if _, err := s.Get(ctx, promoID); err != nil {
		return nil, err
	}
	return s.repo.RedemptionsByPromotion(ctx, promoID)
}

func (s *Service) MyRedemptions(ctx context.Context, userID int) ([]domain.Redemption, error) {
	return s.repo.RedemptionsByUser(ctx, userID)
}

// ExpireExhausted closes the window of every promotion whose usage cap is reached.
func (s *Service) ExpireExhausted(ctx context.Context) (int64, error) {
	return s.repo.ExpireExhausted(ctx, time.Now())
}
