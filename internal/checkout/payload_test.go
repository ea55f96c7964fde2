package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxdrop/storefront/internal/cart"
	"github.com/luxdrop/storefront/internal/checkout"
	"github.com/luxdrop/storefront/internal/domain"
	"github.com/luxdrop/storefront/pkg/apperrors"
)

func validForm() checkout.Form {
	form := checkout.NewForm()
	form.Name = "Ana Silva"
	form.Email = "ana@example.com"
	form.Phone = "+351 912 345 678"
	form.Address = "Rua das Flores 12"
	form.City = "Lisboa"
	form.PostalCode = "1100-001"
	return form
}

func TestNewFormDefaults(t *testing.T) {
	form := checkout.NewForm()
	assert.Equal(t, "Portugal", form.Country)
	assert.Equal(t, domain.PaymentMethodCard, form.PaymentMethod)
}

func TestBuildOrderPayloadEmptyCart(t *testing.T) {
	_, err := checkout.BuildOrderPayload(nil, validForm())

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reasons, "cart")
}

func TestBuildOrderPayloadMissingFields(t *testing.T) {
	form := validForm()
	form.Email = ""
	form.City = "   " // whitespace is as empty as empty

	_, err := checkout.BuildOrderPayload([]cart.LineItem{item("A", 10, 1)}, form)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reasons, "email")
	assert.Contains(t, verr.Reasons, "city")
	assert.NotContains(t, verr.Reasons, "name")
}

func TestBuildOrderPayloadUnknownPaymentMethod(t *testing.T) {
	form := validForm()
	form.PaymentMethod = "barter"

	_, err := checkout.BuildOrderPayload([]cart.LineItem{item("A", 10, 1)}, form)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reasons, "payment_method")
}

func TestBuildOrderPayloadShapesOrder(t *testing.T) {
	items := []cart.LineItem{item("A", 10.00, 1)}

	payload, err := checkout.BuildOrderPayload(items, validForm())
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", payload.UserEmail)
	assert.Equal(t, "Ana Silva", payload.UserName)
	assert.Equal(t, 15.99, payload.Total)
	assert.Equal(t, domain.PaymentMethodCard, payload.PaymentMethod)
	assert.Equal(t, "Lisboa", payload.ShippingAddress.City)
	assert.Equal(t, "+351 912 345 678", payload.ShippingAddress.Phone)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "A", payload.Items[0].ProductID)
	assert.Equal(t, 10.00, payload.Items[0].Price)
}

func TestBuildOrderPayloadIsASnapshot(t *testing.T) {
	items := []cart.LineItem{item("A", 20.00, 2)}

	payload, err := checkout.BuildOrderPayload(items, validForm())
	require.NoError(t, err)

	// Mutating the source after building must not reach the payload
	items[0].Quantity = 99
	items[0].UnitPrice = 0

	require.Len(t, payload.Items, 1)
	assert.Equal(t, 2, payload.Items[0].Quantity)
	assert.Equal(t, 20.00, payload.Items[0].Price)
}
