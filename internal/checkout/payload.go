package checkout

import (
	"strings"

	"github.com/luxdrop/storefront/internal/cart"
	"github.com/luxdrop/storefront/internal/domain"
	"github.com/luxdrop/storefront/pkg/apperrors"
)

// OrderPayload is the order-submission body. It is a value snapshot: later
// cart mutations, including clearing the cart right after submission, never
// alter a payload already built.
type OrderPayload struct {
	UserEmail       string                 `json:"user_email"`
	UserName        string                 `json:"user_name"`
	Items           []PayloadItem          `json:"items"`
	Total           float64                `json:"total"`
	PaymentMethod   domain.PaymentMethod   `json:"payment_method"`
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
}

// PayloadItem is one deep-copied line item inside an order payload
type PayloadItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// BuildOrderPayload validates the cart and form and shapes the submission
// payload. It fails with a *apperrors.ValidationError carrying a reason per
// failing field; the caller blocks submission until corrected.
func BuildOrderPayload(items []cart.LineItem, form Form) (OrderPayload, error) {
	verr := apperrors.NewValidationError()

	if len(items) == 0 {
		verr.Add("cart", "cart is empty")
	}

	required := map[string]string{
		"name":        form.Name,
		"email":       form.Email,
		"phone":       form.Phone,
		"address":     form.Address,
		"city":        form.City,
		"postal_code": form.PostalCode,
		"country":     form.Country,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			verr.Add(field, "required")
		}
	}

	if !form.PaymentMethod.IsValid() {
		verr.Add("payment_method", "unknown payment method")
	}

	if verr.HasReasons() {
		return OrderPayload{}, verr
	}

	payloadItems := make([]PayloadItem, len(items))
	for i, item := range items {
		payloadItems[i] = PayloadItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
		}
	}

	return OrderPayload{
		UserEmail:     form.Email,
		UserName:      form.Name,
		Items:         payloadItems,
		Total:         GrandTotal(items),
		PaymentMethod: form.PaymentMethod,
		ShippingAddress: domain.ShippingAddress{
			Address:    form.Address,
			City:       form.City,
			PostalCode: form.PostalCode,
			Country:    form.Country,
			Phone:      form.Phone,
		},
	}, nil
}
