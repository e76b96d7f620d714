package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gameshop/internal/domain"
)

type CreatePromotionRequestDTO struct {
	Code          string          `json:"code" validate:"required,max=64" example:"SPRING10"`
	Description   string          `json:"description,omitempty" validate:"max=500" example:"Spring sale"`
	DiscountType  string          `json:"discount_type" validate:"required,oneof=PERCENT FIXED" example:"PERCENT"`
	DiscountValue decimal.Decimal `json:"discount_value" validate:"gt=0" swaggertype:"string" example:"10"`
	MaxUses       int             `json:"max_uses" validate:"min=0" example:"100"`
	StartsAt      time.Time       `json:"starts_at" validate:"required" example:"2024-03-01T00:00:00Z"`
	ExpiresAt     time.Time       `json:"expires_at" validate:"required,gtfield=StartsAt" example:"2024-04-01T00:00:00Z"`
}

func (r CreatePromotionRequestDTO) Input() domain.PromotionInput {
	return domain.PromotionInput{
		Code:          r.Code,
		Description:   r.Description,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MaxUses:       r.MaxUses,
		StartsAt:      r.StartsAt,
		ExpiresAt:     r.ExpiresAt,
	}
}

// UpdatePromotionRequestDTO is a partial update; absent fields are kept.
type UpdatePromotionRequestDTO struct {
	Code          *string          `json:"code,omitempty" validate:"omitempty,min=1,max=64" example:"SUMMER15"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=500" example:"Summer sale"`
	DiscountType  *string          `json:"discount_type,omitempty" validate:"omitempty,oneof=PERCENT FIXED" example:"PERCENT"`
	DiscountValue *decimal.Decimal `json:"discount_value,omitempty" validate:"omitempty,gt=0" swaggertype:"string" example:"15"`
	MaxUses       *int             `json:"max_uses,omitempty" validate:"omitempty,min=0" example:"200"`
	StartsAt      *time.Time       `json:"starts_at,omitempty" example:"2024-06-01T00:00:00Z"`
	ExpiresAt     *time.Time       `json:"expires_at,omitempty" example:"2024-07-01T00:00:00Z"`
}

func (r UpdatePromotionRequestDTO) Patch() domain.PromotionPatch {
	return domain.PromotionPatch{
		Code:          r.Code,
		Description:   r.Description,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MaxUses:       r.MaxUses,
		StartsAt:      r.StartsAt,
		ExpiresAt:     r.ExpiresAt,
	}
}

type PromotionListResponseDTO struct {
	Items    []PromotionResponseDTO `json:"items"`
	Total    int                    `json:"total" example:"42"`
	Page     int                    `json:"page" example:"1"`
	PageSize int                    `json:"page_size" example:"20"`
}

type RemovePromotionResponseDTO struct {
	ID          int                  `json:"id" example:"3"`
	Deactivated bool                 `json:"deactivated" example:"true"`
	Promotion   PromotionResponseDTO `json:"promotion"`
}

type PromotionResponseDTO struct {
	ID            int             `json:"id" example:"3"`
	Code          string          `json:"code" example:"SPRING10"`
	Description   string          `json:"description,omitempty" example:"Spring sale"`
	DiscountType  string          `json:"discount_type" example:"PERCENT"`
	DiscountValue decimal.Decimal `json:"discount_value" swaggertype:"string" example:"10"`
	MaxUses       int             `json:"max_uses" example:"100"`
	UsedCount     int             `json:"used_count" example:"12"`
	StartsAt      time.Time       `json:"starts_at" example:"2024-03-01T00:00:00Z"`
	ExpiresAt     time.Time       `json:"expires_at" example:"2024-04-01T00:00:00Z"`
}

type ValidateCodeRequestDTO struct {
	Code string `json:"code" validate:"required,max=64" example:"SPRING10"`
}

type RedemptionResponseDTO struct {
	ID          int       `json:"id" example:"5"`
	PromotionID int       `json:"promotion_id" example:"3"`
	Code        string    `json:"code" example:"SPRING10"`
	UserID      int       `json:"user_id" example:"7"`
	OrderID     int       `json:"order_id" example:"17"`
	RedeemedAt  time.Time `json:"redeemed_at" example:"2024-03-01T10:05:00Z"`
}

func NewPromotionResponse(p *domain.Promotion) PromotionResponseDTO {
	return PromotionResponseDTO{
		ID:            p.ID,
		Code:          p.Code,
		Description:   p.Description,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
		MaxUses:       p.MaxUses,
		UsedCount:     p.UsedCount,
		StartsAt:      p.StartsAt,
		ExpiresAt:     p.ExpiresAt,
	}
}

func NewPromotionsResponse(list []domain.Promotion) []PromotionResponseDTO {
	resp := make([]PromotionResponseDTO, len(list))
	for i := range list {
		resp[i] = NewPromotionResponse(&list[i])
	}
	return resp
}

func NewPromotionListResponse(list []domain.Promotion, total int, f domain.PromotionFilter) PromotionListResponseDTO {
	return PromotionListResponseDTO{
		Items:    NewPromotionsResponse(list),
		Total:    total,
		Page:     f.Page,
		PageSize: f.PageSize,
	}
}

func NewRedemptionsResponse(list []domain.Redemption) []RedemptionResponseDTO {
	resp := make([]RedemptionResponseDTO, len(list))
	for i, r := range list {
		resp[i] = RedemptionResponseDTO{
			ID:          r.ID,
			PromotionID: r.PromotionID,
			Code:        r.Code,
			UserID:      r.UserID,
			OrderID:     r.OrderID,
			RedeemedAt:  r.RedeemedAt,
		}
	}
	return resp
}
