package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gameshop/internal/domain"
)

type OrderItemDTO struct {
	GameID    int             `json:"game_id" example:"42"`
	Name      string          `json:"name" example:"Hades"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"24.99"`
	AddedAt   time.Time       `json:"added_at" example:"2024-03-01T10:00:00Z"`
}

type OrderResponseDTO struct {
	ID          int             `json:"id" example:"17"`
	Kind        string          `json:"kind" example:"CART"`
	Status      string          `json:"status" example:"DRAFT"`
	PromotionID *int            `json:"promotion_id,omitempty" example:"3"`
	TotalBefore decimal.Decimal `json:"total_before" swaggertype:"string" example:"40.00"`
	TotalAfter  decimal.Decimal `json:"total_after" swaggertype:"string" example:"36.00"`
	CreatedAt   time.Time       `json:"created_at" example:"2024-03-01T10:00:00Z"`
	PaidAt      *time.Time      `json:"paid_at,omitempty" example:"2024-03-01T10:05:00Z"`
	Items       []OrderItemDTO  `json:"items,omitempty"`
}

type AddItemRequestDTO struct {
	GameID int `json:"game_id" validate:"required,gt=0" example:"42"`
}

type ApplyPromoRequestDTO struct {
	Code string `json:"code" validate:"required,max=64" example:"SPRING10"`
}

type BuyNowRequestDTO struct {
	Games     []int  `json:"games" validate:"required,min=1,max=50,dive,gt=0" example:"1,2"`
	PromoCode string `json:"promo_code,omitempty" validate:"omitempty,max=64" example:"SPRING10"`
}

type ReceiptResponseDTO struct {
	Order    OrderResponseDTO `json:"order"`
	Charged  decimal.Decimal  `json:"charged" swaggertype:"string" example:"36.00"`
	Discount decimal.Decimal  `json:"discount" swaggertype:"string" example:"4.00"`
	Notice   string           `json:"notice,omitempty" example:"promotion usage limit reached"`
}

func NewOrderResponse(o *domain.Order, items []domain.CartItem) OrderResponseDTO {
	resp := OrderResponseDTO{
		ID:          o.ID,
		Kind:        o.Kind,
		Status:      o.Status,
		PromotionID: o.PromotionID,
		TotalBefore: o.TotalBefore,
		TotalAfter:  o.TotalAfter,
		CreatedAt:   o.CreatedAt,
		PaidAt:      o.PaidAt,
	}
	if len(items) > 0 {
		resp.Items = make([]OrderItemDTO, len(items))
		for i, it := range items {
			resp.Items[i] = OrderItemDTO{GameID: it.GameID, Name: it.Name, UnitPrice: it.UnitPrice, AddedAt: it.AddedAt}
		}
	}
	return resp
}

func NewReceiptResponse(r *domain.Receipt) ReceiptResponseDTO {
	resp := ReceiptResponseDTO{
		Order:    NewOrderResponse(r.Order, r.Items),
		Charged:  r.Charged,
		Discount: r.Discount,
	}
	if r.PromoNotice != nil {
		resp.Notice = r.PromoNotice.Error()
	}
	return resp
}

type TopSellerDTO struct {
	GameID       int             `json:"game_id" example:"42"`
	Name         string          `json:"name" example:"Hades"`
	SoldCount    int             `json:"sold_count" example:"17"`
	TotalRevenue decimal.Decimal `json:"total_revenue" swaggertype:"string" example:"424.83"`
	FirstPaidAt  time.Time       `json:"first_paid_at" example:"2024-03-01T08:12:00Z"`
	LastPaidAt   time.Time       `json:"last_paid_at" example:"2024-03-01T21:40:00Z"`
}

type TopSellersResponseDTO struct {
	Scope string         `json:"scope" example:"by-date"`
	Date  string         `json:"date,omitempty" example:"2024-03-01"`
	Items []TopSellerDTO `json:"items"`
}

func NewTopSellersResponse(list []domain.TopSeller, date string) TopSellersResponseDTO {
	resp := TopSellersResponseDTO{Scope: "overall", Items: make([]TopSellerDTO, len(list))}
	if date != "" {
		resp.Scope = "by-date"
		resp.Date = date
	}
	for i, s := range list {
		resp.Items[i] = TopSellerDTO{
			GameID:       s.GameID,
			Name:         s.Name,
			SoldCount:    s.SoldCount,
			TotalRevenue: s.TotalRevenue,
			FirstPaidAt:  s.FirstPaidAt,
			LastPaidAt:   s.LastPaidAt,
		}
	}
	return resp
}
