package library

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/dto"
	"github.com/GlebRadaev/gameshop/internal/handlers/apierr"
	"github.com/GlebRadaev/gameshop/pkg/auth"
	"github.com/GlebRadaev/gameshop/pkg/utils"
)

//go:generate mockgen -source=library.go -destination=mock_library.go -package=library

type Service interface {
	List(ctx context.Context, userID int) ([]domain.LibraryEntry, error)
}

type LibraryHandler struct {
	libraryService Service
}

func New(libraryService Service) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

// GetLibrary godoc
//
//	@Summary		Games the caller owns
//	@Tags			Library
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LibraryEntryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/library [get]
func (h *LibraryHandler) GetLibrary(w http.ResponseWriter, r *http.Request) {
	entries, err := h.libraryService.List(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLibraryResponse(entries))
}
