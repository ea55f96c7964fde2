// Package tracking projects canonical order statuses into presentation pairs
// for the order-tracking view.
package tracking

import "github.com/luxdrop/storefront/internal/domain"

// Icon identifies which pictogram accompanies a status label
type Icon string

const (
	IconClock   Icon = "clock"
	IconCheck   Icon = "check"
	IconTruck   Icon = "truck"
	IconPackage Icon = "package"
)

// StatusView is a presentation-ready label and icon for an order status
type StatusView struct {
	Label string
	Icon  Icon
}

// Project maps an order status to its display pair. It is total: a status
// outside the known set degrades to the raw string with the generic icon
// instead of failing.
func Project(status domain.OrderStatus) StatusView {
	switch status {
	case domain.OrderStatusPending:
		return StatusView{Label: "Awaiting confirmation", Icon: IconClock}
	case domain.OrderStatusConfirmed:
		return StatusView{Label: "Confirmed", Icon: IconCheck}
	case domain.OrderStatusShipped:
		return StatusView{Label: "Shipped", Icon: IconTruck}
	case domain.OrderStatusDelivered:
		return StatusView{Label: "Delivered", Icon: IconPackage}
	default:
		return StatusView{Label: string(status), Icon: IconClock}
	}
}
