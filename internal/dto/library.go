package dto

import (
	"time"

	"github.com/GlebRadaev/gameshop/internal/domain"
)

type LibraryEntryDTO struct {
	GameID     int       `json:"game_id" example:"42"`
	Name       string    `json:"name" example:"Hades"`
	OrderID    *int      `json:"order_id,omitempty" example:"17"`
	AcquiredAt time.Time `json:"acquired_at" example:"2024-03-01T10:05:00Z"`
}

func NewLibraryResponse(entries []domain.LibraryEntry) []LibraryEntryDTO {
	resp := make([]LibraryEntryDTO, len(entries))
	for i, e := range entries {
		resp[i] = LibraryEntryDTO{GameID: e.GameID, Name: e.Name, OrderID: e.OrderID, AcquiredAt: e.AcquiredAt}
	}
	return resp
}
