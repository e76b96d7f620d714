package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrderStatusDraft = "DRAFT"
	OrderStatusPaid  = "PAID"

	// OrderKindCart is the user's long-lived cart; at most one DRAFT of this
	// kind exists per user.
	OrderKindCart = "CART"
	// OrderKindBuyNow is synthesized and settled inside a single buy-now call.
	OrderKindBuyNow = "BUY_NOW"

	DiscountPercent = "PERCENT"
	DiscountFixed   = "FIXED"

	EntryCredit = "CREDIT"
	EntryDebit  = "DEBIT"

	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID    int    `db:"id"`
	Login string `db:"login"`
	Role  string `db:"role"`
}

type Game struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Order struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Kind        string          `db:"kind"`
	Status      string          `db:"status"`
	PromotionID *int            `db:"promotion_id"`
	TotalBefore decimal.Decimal `db:"total_before"`
	TotalAfter  decimal.Decimal `db:"total_after"`
	CreatedAt   time.Time       `db:"created_at"`
	PaidAt      *time.Time      `db:"paid_at"`
}

func (o *Order) IsDraft() bool {
	return o.Status == OrderStatusDraft
}

// CartItem keeps the price and name captured when the game was added.
type CartItem struct {
	OrderID   int             `db:"order_id"`
	GameID    int             `db:"game_id"`
	Name      string          `db:"name"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	AddedAt   time.Time       `db:"added_at"`
}

func (c CartItem) Game() Game {
	return Game{ID: c.GameID, Name: c.Name, Price: c.UnitPrice}
}

type OrderDetails struct {
	Order *Order
	Items []CartItem
}

type Promotion struct {
	ID            int             `db:"id"`
	Code          string          `db:"code"`
	Description   string          `db:"description"`
	DiscountType  string          `db:"discount_type"`
	DiscountValue decimal.Decimal `db:"discount_value"`
	MaxUses       int             `db:"max_uses"`
	UsedCount     int             `db:"used_count"`
	StartsAt      time.Time       `db:"starts_at"`
	ExpiresAt     time.Time       `db:"expires_at"`
	CreatedAt     time.Time       `db:"created_at"`
}

// InWindow reports whether now falls inside [StartsAt, ExpiresAt].
func (p *Promotion) InWindow(now time.Time) bool {
	return !now.Before(p.StartsAt) && !now.After(p.ExpiresAt)
}

// Exhausted reports whether the usage cap is reached. MaxUses 0 means unlimited.
func (p *Promotion) Exhausted() bool {
	return p.MaxUses > 0 && p.UsedCount >= p.MaxUses
}

type PromotionInput struct {
	Code          string
	Description   string
	DiscountType  string
	DiscountValue decimal.Decimal
	MaxUses       int
	StartsAt      time.Time
	ExpiresAt     time.Time
}

// PromotionPatch holds the fields an admin changes. Nil fields keep their value.
type PromotionPatch struct {
	Code          *string
	Description   *string
	DiscountType  *string
	DiscountValue *decimal.Decimal
	MaxUses       *int
	StartsAt      *time.Time
	ExpiresAt     *time.Time
}

func (p PromotionPatch) Empty() bool {
	return p.Code == nil && p.Description == nil && p.DiscountType == nil && p.DiscountValue == nil &&
		p.MaxUses == nil && p.StartsAt == nil && p.ExpiresAt == nil
}

// Apply lays the patch over cur.
func (p PromotionPatch) Apply(cur *Promotion) PromotionInput {
	in := PromotionInput{
		Code:          cur.Code,
		Description:   cur.Description,
		DiscountType:  cur.DiscountType,
		DiscountValue: cur.DiscountValue,
		MaxUses:       cur.MaxUses,
		StartsAt:      cur.StartsAt,
		ExpiresAt:     cur.ExpiresAt,
	}
	if p.Code != nil {
		in.Code = *p.Code
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.DiscountType != nil {
		in.DiscountType = *p.DiscountType
	}
	if p.DiscountValue != nil {
		in.DiscountValue = *p.DiscountValue
	}
	if p.MaxUses != nil {
		in.MaxUses = *p.MaxUses
	}
	if p.StartsAt != nil {
		in.StartsAt = *p.StartsAt
	}
	if p.ExpiresAt != nil {
		in.ExpiresAt = *p.ExpiresAt
	}
	return in
}

type PromotionFilter struct {
	Query      string
	ActiveOnly bool
	Page       int
	PageSize   int
}

type TopSeller struct {
	GameID       int             `db:"game_id"`
	Name         string          `db:"name"`
	SoldCount    int             `db:"sold_count"`
	TotalRevenue decimal.Decimal `db:"total_revenue"`
	FirstPaidAt  time.Time       `db:"first_paid_at"`
	LastPaidAt   time.Time       `db:"last_paid_at"`
}

type Redemption struct {
	ID          int       `db:"id"`
	PromotionID int       `db:"promotion_id"`
	UserID      int       `db:"user_id"`
	OrderID     int       `db:"order_id"`
	Code        string    `db:"code"`
	RedeemedAt  time.Time `db:"redeemed_at"`
}

type Wallet struct {
	UserID  int             `db:"user_id"`
	Balance decimal.Decimal `db:"balance"`
}

type LedgerEntry struct {
	ID          int64           `db:"id"`
	UserID      int             `db:"user_id"`
	OrderID     *int            `db:"order_id"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Note        string          `db:"note"`
	TransferRef *uuid.UUID      `db:"transfer_ref"`
	CreatedAt   time.Time       `db:"created_at"`
}

type LedgerFilter struct {
	Page     int
	PageSize int
	Asc      bool
	From     *time.Time
	To       *time.Time
}

// Transfer is the pair of ledger rows written by one wallet-to-wallet move.
type Transfer struct {
	Ref         uuid.UUID
	Debit       *LedgerEntry
	Credit      *LedgerEntry
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
}

type LibraryEntry struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	GameID     int       `db:"game_id"`
	Name       string    `db:"name"`
	OrderID    *int      `db:"order_id"`
	AcquiredAt time.Time `db:"acquired_at"`
}

// Receipt describes a settled order. PromoNotice is set when a promotion
// was requested but dropped, and names the reason.
type Receipt struct {
	Order       *Order
	Items       []CartItem
	Charged     decimal.Decimal
	Discount    decimal.Decimal
	PromoNotice error
}
