// Package pricing computes order totals. It performs no I/O.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gameshop/internal/domain"
)

var hundred = decimal.NewFromInt(100)

type Result struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	// Applied is false when a promotion was given but is outside its window.
	Applied bool
}

// Round2 rounds half away from zero to two fractional digits.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Subtotal sums the snapshotted unit prices.
func Subtotal(items []domain.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.UnitPrice)
	}
	return Round2(sum)
}

// Calculate prices items with an optional promotion. The usage cap is not
// checked here; callers decide what an exhausted promotion means.
func Calculate(items []domain.CartItem, promo *domain.Promotion, now time.Time) Result {
	subtotal := Subtotal(items)
	res := Result{Subtotal: subtotal, Discount: decimal.Zero, Total: subtotal}
	if promo == nil || !promo.InWindow(now) {
		return res
	}

	var discount decimal.Decimal
	switch promo.DiscountType {
	case domain.DiscountPercent:
		discount = subtotal.Mul(promo.DiscountValue).Div(hundred)
	case domain.DiscountFixed:
		discount = promo.DiscountValue
	default:
		return res
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	res.Total = Round2(subtotal.Sub(discount))
	res.Discount = subtotal.Sub(res.Total)
	res.Applied = true
	return res
}
