package checkout

import (
	"math"

	"github.com/luxdrop/storefront/internal/cart"
)

// Shipping is free once the subtotal reaches the threshold. The threshold is a
// hard business rule, not configurable per request.
const (
	FreeShippingThreshold = 50.00
	StandardShippingFee   = 5.99
)

// roundToCents rounds a currency amount to two decimal places. Accumulation
// happens before rounding so per-line rounding error never compounds.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Subtotal returns the sum of unit price times quantity over all line items,
// rounded once to cents.
func Subtotal(items []cart.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.UnitPrice * float64(item.Quantity)
	}
	return roundToCents(sum)
}

// ShippingFee returns the flat fee for the given subtotal, zero at and above
// the free-shipping threshold.
func ShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return StandardShippingFee
}

// GrandTotal returns subtotal plus shipping for the given line items
func GrandTotal(items []cart.LineItem) float64 {
	subtotal := Subtotal(items)
	return roundToCents(subtotal + ShippingFee(subtotal))
}

// RemainingForFreeShipping returns how much more must be spent to reach free
// shipping. Never negative; display-only.
func RemainingForFreeShipping(subtotal float64) float64 {
	remaining := FreeShippingThreshold - subtotal
	if remaining <= 0 {
		return 0
	}
	return roundToCents(remaining)
}
