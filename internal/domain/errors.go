package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Failure kinds. Every domain error unwraps to exactly one of them; anything
// else reaching a caller is a system error.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

var (
	ErrInvalidAmount = &Error{ErrValidation, "amount must be a positive value with at most two decimals"}
	ErrInvalidGames  = &Error{ErrValidation, "at least one valid game id is required"}
	ErrInvalidCode   = &Error{ErrValidation, "promotion code is required"}
	ErrInvalidPromo  = &Error{ErrValidation, "invalid promotion"}
	ErrSelfTransfer  = &Error{ErrValidation, "cannot transfer to the same account"}
	ErrEmptyPatch    = &Error{ErrValidation, "no fields to update"}

	ErrOrderNotFound   = &Error{ErrNotFound, "order not found"}
	ErrGameNotFound    = &Error{ErrNotFound, "game not found"}
	ErrItemNotFound    = &Error{ErrNotFound, "game is not in the cart"}
	ErrPromoNotFound   = &Error{ErrNotFound, "promotion not found"}
	ErrAccountNotFound = &Error{ErrNotFound, "wallet account not found"}

	ErrNotDraft             = &Error{ErrConflict, "order already paid"}
	ErrAlreadyOwned         = &Error{ErrConflict, "game already owned"}
	ErrAlreadyInCart        = &Error{ErrConflict, "game already in cart"}
	ErrEmptyCart            = &Error{ErrConflict, "cart is empty"}
	ErrInsufficientFunds    = &Error{ErrConflict, "insufficient funds"}
	ErrPromoExpired         = &Error{ErrConflict, "promotion expired or not started"}
	ErrPromoExhausted       = &Error{ErrConflict, "promotion usage limit reached"}
	ErrPromoAlreadyRedeemed = &Error{ErrConflict, "promotion already redeemed by this account"}
	ErrPromoCodeTaken       = &Error{ErrConflict, "promotion code already exists"}
	ErrDraftContended       = &Error{ErrConflict, "cart changed concurrently, try again"}
)

// AlreadyOwnedError lists the games that blocked a purchase.
type AlreadyOwnedError struct {
	Games []Game
}

func (e *AlreadyOwnedError) Error() string {
	names := make([]string, len(e.Games))
	for i, g := range e.Games {
		names[i] = g.Name
	}
	return ErrAlreadyOwned.Msg + ": " + strings.Join(names, ", ")
}

func (e *AlreadyOwnedError) Unwrap() error { return ErrAlreadyOwned }

type GameNotFoundError struct {
	IDs []int
}

func (e *GameNotFoundError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.Itoa(id)
	}
	return ErrGameNotFound.Msg + ": " + strings.Join(ids, ", ")
}

func (e *GameNotFoundError) Unwrap() error { return ErrGameNotFound }
