package checkout

import "github.com/luxdrop/storefront/internal/domain"

// Form holds the checkout form fields. All fields are required non-empty
// before submission; Country and PaymentMethod carry defaults.
type Form struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	Country       string
	PaymentMethod domain.PaymentMethod
}

// NewForm returns a form with the default country and payment method
func NewForm() Form {
	return Form{
		Country:       "Portugal",
		PaymentMethod: domain.PaymentMethodCard,
	}
}
