package admin

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/gameshop/internal/handlers/apierr"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type Service interface {
	Reset(ctx context.Context) error
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Reset godoc
//
//	@Summary		Wipe purchase history
//	@Description	Deletes orders, ledger, library and redemptions; zeroes balances and promotion usage
//	@Tags			Admin
//	@Security		BearerAuth
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/reset [delete]
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.Reset(r.Context()); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
