package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gameshop/internal/domain"
)

type BalanceResponseDTO struct {
	UserID  int             `json:"user_id" example:"7"`
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"64.00"`
}

type AmountRequestDTO struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"string" example:"100.00"`
	Note   string          `json:"note,omitempty" validate:"max=255" example:"birthday money"`
}

type TransferRequestDTO struct {
	ToLogin string          `json:"to_login" validate:"required,max=50" example:"bob"`
	Amount  decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"string" example:"12.50"`
	Note    string          `json:"note,omitempty" validate:"max=255" example:"pizza"`
}

type TransferResponseDTO struct {
	Ref         uuid.UUID       `json:"ref" example:"7d444840-9dc0-11d1-b245-5ffdce74fad2"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"12.50"`
	FromBalance decimal.Decimal `json:"from_balance" swaggertype:"string" example:"87.50"`
	ToBalance   decimal.Decimal `json:"to_balance" swaggertype:"string" example:"32.50"`
}

type LedgerEntryDTO struct {
	ID          int64           `json:"id" example:"101"`
	Type        string          `json:"type" example:"DEBIT"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"36.00"`
	OrderID     *int            `json:"order_id,omitempty" example:"17"`
	Note        string          `json:"note,omitempty" example:"order #17"`
	TransferRef *uuid.UUID      `json:"transfer_ref,omitempty"`
	CreatedAt   time.Time       `json:"created_at" example:"2024-03-01T10:05:00Z"`
}

type HistoryResponseDTO struct {
	Items    []LedgerEntryDTO `json:"items"`
	Total    int              `json:"total" example:"42"`
	Page     int              `json:"page" example:"1"`
	PageSize int              `json:"page_size" example:"20"`
}

func NewBalanceResponse(w *domain.Wallet) BalanceResponseDTO {
	return BalanceResponseDTO{UserID: w.UserID, Balance: w.Balance}
}

func NewTransferResponse(t *domain.Transfer) TransferResponseDTO {
	return TransferResponseDTO{
		Ref:         t.Ref,
		Amount:      t.Debit.Amount,
		FromBalance: t.FromBalance,
		ToBalance:   t.ToBalance,
	}
}

func NewHistoryResponse(entries []domain.LedgerEntry, total int, f domain.LedgerFilter) HistoryResponseDTO {
	resp := HistoryResponseDTO{
		Items:    make([]LedgerEntryDTO, len(entries)),
		Total:    total,
		Page:     f.Page,
		PageSize: f.PageSize,
	}
	for i, e := range entries {
		resp.Items[i] = LedgerEntryDTO{
			ID:          e.ID,
			Type:        e.Type,
			Amount:      e.Amount,
			OrderID:     e.OrderID,
			Note:        e.Note,
			TransferRef: e.TransferRef,
			CreatedAt:   e.CreatedAt,
		}
	}
	return resp
}
