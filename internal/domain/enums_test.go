package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxdrop/storefront/internal/domain"
)

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
	} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, domain.OrderStatus("cancelled").IsValid())
	assert.False(t, domain.OrderStatus("").IsValid())
}

func TestOrderStatusTransitionsAreForwardOnly(t *testing.T) {
	allowed := map[domain.OrderStatus]domain.OrderStatus{
		domain.OrderStatusPending:   domain.OrderStatusConfirmed,
		domain.OrderStatusConfirmed: domain.OrderStatusShipped,
		domain.OrderStatusShipped:   domain.OrderStatusDelivered,
	}

	all := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
	}
	for _, from := range all {
		for _, to := range all {
			want := allowed[from] == to
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestDeliveredIsTerminal(t *testing.T) {
	for _, to := range []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
	} {
		assert.False(t, domain.OrderStatusDelivered.CanTransitionTo(to))
	}
}

func TestPaymentMethodIsValid(t *testing.T) {
	for _, m := range []domain.PaymentMethod{
		domain.PaymentMethodCard,
		domain.PaymentMethodPayPal,
		domain.PaymentMethodMBWay,
		domain.PaymentMethodRevolut,
	} {
		assert.True(t, m.IsValid(), string(m))
	}
	assert.False(t, domain.PaymentMethod("bitcoin").IsValid())
}
