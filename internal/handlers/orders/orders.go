package orders

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/dto"
	"github.com/GlebRadaev/gameshop/internal/handlers/apierr"
	"github.com/GlebRadaev/gameshop/pkg/auth"
	"github.com/GlebRadaev/gameshop/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type CartService interface {
	CreateDraft(ctx context.Context, userID int) (*domain.OrderDetails, error)
	GetOrder(ctx context.Context, orderID, userID int) (*domain.OrderDetails, error)
	ListOrders(ctx context.Context, userID int, status string) ([]domain.Order, error)
	AddItem(ctx context.Context, orderID, userID, gameID int) (*domain.OrderDetails, error)
	RemoveItem(ctx context.Context, orderID, userID, gameID int) (*domain.OrderDetails, error)
	ApplyPromotion(ctx context.Context, orderID, userID int, code string) (*domain.OrderDetails, error)
	ClearPromotion(ctx context.Context, orderID, userID int) (*domain.OrderDetails, error)
	Recalculate(ctx context.Context, orderID, userID int) (*domain.OrderDetails, error)
	DeleteDraft(ctx context.Context, orderID, userID int) error
	TopSellers(ctx context.Context, date string) ([]domain.TopSeller, error)
}

type PaymentService interface {
	Pay(ctx context.Context, orderID, userID int) (*domain.Receipt, error)
	BuyNow(ctx context.Context, userID int, gameIDs []int, code string) (*domain.Receipt, error)
}

type OrderHandler struct {
	cartService    CartService
	paymentService PaymentService
}

func New(cartService CartService, paymentService PaymentService) *OrderHandler {
	return &OrderHandler{
		cartService:    cartService,
		paymentService: paymentService,
	}
}

func respondDetails(w http.ResponseWriter, code int, details *domain.OrderDetails, err error) {
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, code, dto.NewOrderResponse(details.Order, details.Items))
}

// CreateDraft godoc
//
//	@Summary		Open a cart
//	@Description	Returns the caller's draft cart, creating an empty one when none exists
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	details, err := h.cartService.CreateDraft(r.Context(), auth.UserID(r.Context()))
	respondDetails(w, http.StatusOK, details, err)
}

// ListOrders godoc
//
//	@Summary		List orders
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"DRAFT or PAID"
//	@Success		200		{array}		dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown status"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.cartService.ListOrders(r.Context(), auth.UserID(r.Context()), r.URL.Query().Get("status"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		response[i] = dto.NewOrderResponse(&orders[i], nil)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get an order with its lines
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	details, err := h.cartService.GetOrder(r.Context(), orderID, auth.UserID(r.Context()))
	respondDetails(w, http.StatusOK, details, err)
}

// DeleteDraft godoc
//
//	@Summary		Discard a draft
//	@Tags			Orders
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Order id"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order already paid"
//	@Router			/api/orders/{id} [delete]
func (h *OrderHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	orderID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.cartService.DeleteDraft(r.Context(), orderID, auth.UserID(r.Context())); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItem godoc
//
//	@Summary		Add a game to a draft
//	@Description	Snapshots the current catalog price into the cart
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Order id"
//	@Param			request	body		dto.AddItemRequestDTO	true	"Game to add"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order or game not found"
//	@Failure		409		{object}	utils.Response	"Already owned, already in cart or order paid"
//	@Router			/api/orders/{id}/items [post]
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	orderID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.AddItemRequestDTO
	if !apierr.Decode(w, r, &req) {
		return
	}
	details, err := h.cartService.AddItem(r.Context(), orderID, auth.UserID(r.Context()), req.GameID)
	respondDetails(w, http.StatusOK, details, err)
}

// RemoveItem godoc
//
//	@Summary		Remove a game from a draft
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		int	true	"Order id"
//	@Param			gameID	path		int	true	"Game id"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		404		{object}	utils.Response	"Order or line not found"
//	@Failure		409		{object}	utils.Response	"Order already paid"
//	@Router			/api/orders/{id}/items/{gameID} [delete]
func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	orderID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	gameID, ok := apierr.PathID(w, r, "gameID")
	if !ok {
		return
	}
	details, err := h.cartService.RemoveItem(r.Context(), orderID, auth.UserID(r.Context()), gameID)
	respondDetails(w, http.StatusOK, details, err)
}

// ApplyPromotion godoc
//
//	@Summary		Attach a promotion code
//	@Description	The usage cap is checked at payment, not here
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Order id"
//	@Param			request	body		dto.ApplyPromoRequestDTO	true	"Promotion code"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		404		{object}	utils.Response	"Order or promotion not found"
//	@Failure		409		{object}	utils.Response	"Promotion outside its window or order paid"
//	@Router			/api/orders/{id}/promo [post]
func (h *OrderHandler) ApplyPromotion(w http.ResponseWriter, r *http.Request) {
	orderID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.ApplyPromoRequestDTO
	if !apierr.Decode(w, r, &req) {
		return
	}
	details, err := h.cartService.ApplyPromotion(r.Context(), orderID, auth.UserID(r.Context()), req.Code)
	respondDetails(w, http.StatusOK, details, err)
}

// ClearPromotion godoc
//
//	@Summary		Detach the promotion
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Router			/api/orders/{id}/promo [delete]
func (h *OrderHandler) ClearPromotion(w http.ResponseWriter, r *http.Request) {
	orderID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	details, err := h.cartService.ClearPromotion(r.Context(), orderID, auth.UserID(r.Context()))
	respondDetails(w, http.StatusOK, details, err)
}

// Recalculate godoc
//
//	@Summary		Recompute draft totals
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Router			/api/orders/{id}/recalculate [post]
func (h *OrderHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	orderID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	details, err := h.cartService.Recalculate(r.Context(), orderID, auth.UserID(r.Context()))
	respondDetails(w, http.StatusOK, details, err)
}

// Pay godoc
//
//	@Summary		Pay for a draft
//	@Description	Debits the wallet, grants the games and redeems the promotion in one transaction
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{object}	dto.ReceiptResponseDTO
//	@Failure		402	{object}	utils.Response	"Insufficient funds"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Paid, empty, already owned or promotion already redeemed"
//	@Router			/api/orders/{id}/pay [post]
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	orderID, ok := apierr.PathID(w, r, "id")
	if !ok {
		return
	}
	receipt, err := h.paymentService.Pay(r.Context(), orderID, auth.UserID(r.Context()))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReceiptResponse(receipt))
}

// BuyNow godoc
//
//	@Summary		Buy games directly
//	@Description	An unknown or expired promotion code does not fail the purchase; the receipt notice says why no discount was given
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BuyNowRequestDTO	true	"Games and optional promotion code"
//	@Success		200		{object}	dto.ReceiptResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		409		{object}	utils.Response	"Already owned"
//	@Router			/api/orders/buy [post]
func (h *OrderHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	var req dto.BuyNowRequestDTO
	if !apierr.Decode(w, r, &req) {
		return
	}
	receipt, err := h.paymentService.BuyNow(r.Context(), auth.UserID(r.Context()), req.Games, req.PromoCode)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReceiptResponse(receipt))
}

// TopSellers godoc
//
//	@Summary		Best selling games
//	@Description	Top five games by paid sales, then revenue. With date only that UTC day counts
//	@Tags			Orders
//	@Produce		json
//	@Param			date	query		string	false	"Day as YYYY-MM-DD"
//	@Success		200		{object}	dto.TopSellersResponseDTO
//	@Failure		400		{object}	utils.Response	"Bad date"
//	@Router			/api/top-sellers [get]
func (h *OrderHandler) TopSellers(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	list, err := h.cartService.TopSellers(r.Context(), date)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTopSellersResponse(list, date))
}
