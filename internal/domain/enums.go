package domain

// OrderStatus represents the lifecycle state of a storefront order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid.
// The lifecycle is strictly forward-moving: pending -> confirmed -> shipped -> delivered.
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return newStatus == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return newStatus == OrderStatusShipped
	case OrderStatusShipped:
		return newStatus == OrderStatusDelivered
	case OrderStatusDelivered:
		return false // Terminal state
	default:
		return false
	}
}

// PaymentMethod identifies how the customer chose to pay. No charge is made
// through this system; the value is only recorded on the order.
type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "stripe"
	PaymentMethodPayPal  PaymentMethod = "paypal"
	PaymentMethodMBWay   PaymentMethod = "mbway"
	PaymentMethodRevolut PaymentMethod = "revolut"
)

// IsValid checks if the payment method is one of the accepted set
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodPayPal, PaymentMethodMBWay, PaymentMethodRevolut:
		return true
	default:
		return false
	}
}
