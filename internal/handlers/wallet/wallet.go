package wallet

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gameshop/internal/domain"
	"github.com/GlebRadaev/gameshop/internal/dto"
	"github.com/GlebRadaev/gameshop/internal/handlers/apierr"
	"github.com/GlebRadaev/gameshop/pkg/auth"
	"github.com/GlebRadaev/gameshop/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

type Service interface {
	Balance(ctx context.Context, userID int) (*domain.Wallet, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal, note string) (*domain.Wallet, error)
	Debit(ctx context.Context, userID int, amount decimal.Decimal, note string) (*domain.Wallet, error)
	Transfer(ctx context.Context, fromID int, toLogin string, amount decimal.Decimal, note string) (*domain.Transfer, error)
	History(ctx context.Context, userID int, f domain.LedgerFilter) ([]domain.LedgerEntry, int, error)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// targetUser is the caller, or the {userID} path owner when an admin asks.
func targetUser(w http.ResponseWriter, r *http.Request) (int, bool) {
	if chi.URLParam(r, "userID") == "" {
		return auth.UserID(r.Context()), true
	}
	if !auth.IsAdmin(r.Context()) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return 0, false
	}
	return apierr.PathID(w, r, "userID")
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Users read their own balance; admins may read anyone's through /{userID}
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	false	"Account owner (admin only)"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Router			/api/wallet/balance [get]
//	@Router			/api/wallet/balance/{userID} [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := targetUser(w, r)
	if !ok {
		return
	}
	wallet, err := h.walletService.Balance(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(wallet))
}

// TopUp godoc
//
//	@Summary		Add money to the wallet
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Router			/api/wallet/topup [post]
func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	var req dto.AmountRequestDTO
	if !apierr.Decode(w, r, &req) {
		return
	}
	wallet, err := h.walletService.Credit(r.Context(), auth.UserID(r.Context()), req.Amount, req.Note)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(wallet))
}

// Withdraw godoc
//
//	@Summary		Take money out of the wallet
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.AmountRequestDTO
	if !apierr.Decode(w, r, &req) {
		return
	}
	wallet, err := h.walletService.Debit(r.Context(), auth.UserID(r.Context()), req.Amount, req.Note)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(wallet))
}

// Transfer godoc
//
//	@Summary		Send money to another account
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Recipient and amount"
//	@Success		200		{object}	dto.TransferResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or self transfer"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Recipient not found"
//	@Router			/api/wallet/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequestDTO
	if !apierr.Decode(w, r, &req) {
		return
	}
	transfer, err := h.walletService.Transfer(r.Context(), auth.UserID(r.Context()), req.ToLogin, req.Amount, req.Note)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransferResponse(transfer))
}

// GetHistory godoc
//
//	@Summary		Ledger history
//	@Description	Paginated wallet movements, newest first unless sort=asc
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID		path		int		false	"Account owner (admin only)"
//	@Param			page		query		int		false	"Page, from 1"
//	@Param			page_size	query		int		false	"Page size, up to 100"
//	@Param			sort		query		string	false	"asc or desc"
//	@Param			from		query		string	false	"RFC3339 lower bound"
//	@Param			to			query		string	false	"RFC3339 upper bound"
//	@Success		200			{object}	dto.HistoryResponseDTO
//	@Failure		400			{object}	utils.Response	"Bad query"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Router			/api/wallet/transactions [get]
//	@Router			/api/wallet/transactions/{userID} [get]
func (h *WalletHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := targetUser(w, r)
	if !ok {
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	entries, total, err := h.walletService.History(r.Context(), userID, filter)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewHistoryResponse(entries, total, filter))
}

func parseFilter(r *http.Request) (domain.LedgerFilter, error) {
	q := r.URL.Query()
	f := domain.LedgerFilter{Page: 1, PageSize: defaultPageSize}

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
	switch strings.ToLower(q.Get("sort")) {
	case "", "desc":
	case "asc":
		f.Asc = true
	default:
		return f, errBadQuery("sort")
	}
	for key, dst := range map[string]**time.Time{"from": &f.From, "to": &f.To} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, errBadQuery(key)
		}
		*dst = &t
	}
	return f, nil
}

type errBadQuery string

func (e errBadQuery) Error() string { return "invalid query parameter " + string(e) }
