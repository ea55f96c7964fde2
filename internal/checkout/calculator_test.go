package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxdrop/storefront/internal/cart"
	"github.com/luxdrop/storefront/internal/checkout"
)

func item(id string, price float64, qty int) cart.LineItem {
	return cart.LineItem{ProductID: id, Name: id, UnitPrice: price, Quantity: qty}
}

func TestSubtotal(t *testing.T) {
	items := []cart.LineItem{item("A", 20.00, 2), item("B", 15.00, 1)}
	assert.Equal(t, 55.00, checkout.Subtotal(items))
}

func TestSubtotalEmptyCart(t *testing.T) {
	assert.Equal(t, 0.0, checkout.Subtotal(nil))
}

func TestSubtotalRoundsOnceAfterAccumulating(t *testing.T) {
	// Three thirds of a cent each: rounding per line would give 0.00
	items := []cart.LineItem{
		item("A", 0.003, 1),
		item("B", 0.003, 1),
		item("C", 0.004, 1),
	}
	assert.Equal(t, 0.01, checkout.Subtotal(items))
}

func TestSubtotalOrderInvariant(t *testing.T) {
	forward := []cart.LineItem{item("A", 19.99, 3), item("B", 4.50, 2), item("C", 120.00, 1)}
	reversed := []cart.LineItem{item("C", 120.00, 1), item("B", 4.50, 2), item("A", 19.99, 3)}
	assert.Equal(t, checkout.Subtotal(forward), checkout.Subtotal(reversed))
}

func TestShippingFeeBoundary(t *testing.T) {
	assert.Equal(t, 5.99, checkout.ShippingFee(49.99))
	assert.Equal(t, 0.0, checkout.ShippingFee(50.00))
	assert.Equal(t, 0.0, checkout.ShippingFee(50.01))
}

func TestGrandTotalAboveThreshold(t *testing.T) {
	items := []cart.LineItem{item("A", 20.00, 2), item("B", 15.00, 1)}
	assert.Equal(t, 55.00, checkout.GrandTotal(items))
}

func TestGrandTotalBelowThreshold(t *testing.T) {
	items := []cart.LineItem{item("A", 10.00, 1)}
	assert.Equal(t, 15.99, checkout.GrandTotal(items))
}

func TestRemainingForFreeShipping(t *testing.T) {
	assert.Equal(t, 40.00, checkout.RemainingForFreeShipping(10.00))
	assert.Equal(t, 0.0, checkout.RemainingForFreeShipping(50.00))
	assert.Equal(t, 0.0, checkout.RemainingForFreeShipping(72.30), "must never go negative")
}
