package promo

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/dto"
	"github.com/GlebRadaev/gameshop/internal/handlers/apierr"
	"github.com/GlebRadaev/gameshop/pkg/auth"
	"github.com/GlebRadaev/gameshop/pkg/utils"
)

//go:generate mockgen -source=promo.go -destination=mock_promo.go -package=promo

type Service interface {
	Create(ctx context.Context, in domain.PromotionInput) (*domain.Promotion, error)
	Get(ctx context.Context, promoID int) (*domain.Promotion, error)
	Update(ctx context.Context, promoID int, patch domain.PromotionPatch) (*domain.Promotion, error)
	Remove(ctx context.Context, promoID int) (*domain.Promotion, bool, error)
	List(ctx context.Context, f domain.PromotionFilter) ([]domain.Promotion, int, error)
	Deactivate(ctx context.Context, promoID int) (*domain.Promotion, error)
	ListActive(ctx context.Context) ([]domain.Promotion, error)
	Validate(ctx context.Context, userID int, code string) (*domain.Promotion, error)
	Redemptions(ctx context.Context, promoID int) ([]domain.Redemption, error)
	MyRedemptions(ctx context.Context, userID int) ([]domain.Redemption, error)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PromoHandler struct {
	promoService Service
}

func New(promoService Service) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

func respondPromotion(w http.ResponseWriter, code int, p *domain.Promotion, err error) {
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, code, dto.NewPromotionResponse(p))
}

// Create godoc
//
//	@Summary		Create a promotion
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePromotionRequestDTO	true	"Promotion"
//	@Success		201		{object}	dto.PromotionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid promotion"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		409		{object}	utils.Response	"Code already exists"
//	@Router			/api/promo [post]
func (h *PromoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePromotionRequestDTO
	if !apierr.Decode(w, r, &req) {
		return
	}
	p, err := h.promoService.Create(r.Context(), req.Input())
	respondPromotion(w, http.StatusCreated, p, err)
}

// Get godoc
//
//	@Summary		Get a promotion
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Promotion id"
//	@Success		200	{object}	dto.PromotionResponseDTO
//	@Failure		404	{object}	utils.Response	"Promotion not found"
//	@Router			/api/promo/{id} [get]
func (h *PromoHandler) Get(w http.ResponseWriter, r *http.Request) {
	promoID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.promoService.Get(r.Context(), promoID)
	respondPromotion(w, http.StatusOK, p, err)
}

// Update godoc
//
//	@Summary		Change a promotion
//	@Description	Partial update; omitted fields keep their value. The merged promotion must still be valid
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Promotion id"
//	@Param			request	body		dto.UpdatePromotionRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.PromotionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid promotion or nothing to change"
//	@Failure		404		{object}	utils.Response	"Promotion not found"
//	@Failure		409		{object}	utils.Response	"Code already exists"
//	@Router			/api/promo/{id} [patch]
func (h *PromoHandler) Update(w http.ResponseWriter, r *http.Request) {
	promoID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdatePromotionRequestDTO
	if !apierr.Decode(w, r, &req) {
		return
	}
	p, err := h.promoService.Update(r.Context(), promoID, req.Patch())
	respondPromotion(w, http.StatusOK, p, err)
}

// Remove godoc
//
//	@Summary		Delete a promotion
//	@Description	Deletes a promotion nobody redeemed; a redeemed one is expired instead and reported as deactivated
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Promotion id"
//	@Success		200	{object}	dto.RemovePromotionResponseDTO
//	@Failure		404	{object}	utils.Response	"Promotion not found"
//	@Router			/api/promo/{id} [delete]
func (h *PromoHandler) Remove(w http.ResponseWriter, r *http.Request) {
	promoID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	p, deactivated, err := h.promoService.Remove(r.Context(), promoID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RemovePromotionResponseDTO{
		ID:          promoID,
		Deactivated: deactivated,
		Promotion:   dto.NewPromotionResponse(p),
	})
}

// List godoc
//
//	@Summary		Search promotions
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			q			query		string	false	"Text in code or description"
//	@Param			active_only	query		bool	false	"Only promotions inside their window"
//	@Param			page		query		int		false	"Page, from 1"
//	@Param			page_size	query		int		false	"Page size, up to 100"
//	@Success		200			{object}	dto.PromotionListResponseDTO
//	@Failure		400			{object}	utils.Response	"Bad query"
//	@Router			/api/promo [get]
func (h *PromoHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	list, total, err := h.promoService.List(r.Context(), filter)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPromotionListResponse(list, total, filter))
}

func parseFilter(r *http.Request) (domain.PromotionFilter, error) {
	q := r.URL.Query()
	f := domain.PromotionFilter{Query: q.Get("q"), Page: 1, PageSize: defaultPageSize}

	if v := q.Get("active_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, errBadQuery("active_only")
		}
		f.ActiveOnly = b
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, errBadQuery("page")
		}
		f.Page = n
	}
	if v := q.Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPageSize {
			return f, errBadQuery("page_size")
		}
		f.PageSize = n
	}
	return f, nil
}

type errBadQuery string

func (e errBadQuery) Error() string { return "invalid query parameter " + string(e) }

// Deactivate godoc
//
//	@Summary		End a promotion now
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Promotion id"
//	@Success		200	{object}	dto.PromotionResponseDTO
//	@Failure		404	{object}	utils.Response	"Promotion not found"
//	@Router			/api/promo/{id}/deactivate [post]
func (h *PromoHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	promoID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.promoService.Deactivate(r.Context(), promoID)
	respondPromotion(w, http.StatusOK, p, err)
}

// ListActive godoc
//
//	@Summary		Promotions currently in their window
//	@Tags			Promotions
//	@Produce		json
//	@Success		200	{array}	dto.PromotionResponseDTO
//	@Router			/api/promo/active [get]
func (h *PromoHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	list, err := h.promoService.ListActive(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPromotionsResponse(list))
}

// ValidateCode godoc
//
//	@Summary		Check a code without redeeming it
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ValidateCodeRequestDTO	true	"Code"
//	@Success		200		{object}	dto.PromotionResponseDTO
//	@Failure		404		{object}	utils.Response	"Promotion not found"
//	@Failure		409		{object}	utils.Response	"Expired, exhausted or already redeemed"
//	@Router			/api/promo/validate [post]
func (h *PromoHandler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateCodeRequestDTO
	if !apierr.Decode(w, r, &req) {
		return
	}
	p, err := h.promoService.Validate(r.Context(), auth.UserID(r.Context()), req.Code)
	respondPromotion(w, http.StatusOK, p, err)
}

// Redemptions godoc
//
//	@Summary		Who redeemed a promotion
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Promotion id"
//	@Success		200	{array}		dto.RedemptionResponseDTO
//	@Failure		404	{object}	utils.Response	"Promotion not found"
//	@Router			/api/promo/{id}/redemptions [get]
func (h *PromoHandler) Redemptions(w http.ResponseWriter, r *http.Request) {
	promoID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	list, err := h.promoService.Redemptions(r.Context(), promoID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRedemptionsResponse(list))
}

// MyRedemptions godoc
//
//	@Summary		Promotions the caller has used
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	dto.RedemptionResponseDTO
//	@Router			/api/promo/me/redemptions [get]
func (h *PromoHandler) MyRedemptions(w http.ResponseWriter, r *http.Request) {
	list, err := h.promoService.MyRedemptions(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRedemptionsResponse(list))
}
