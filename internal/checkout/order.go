package checkout

import (
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
)

type Customer struct {
	Name    string
	Phone   string
	Address string
	Email   string
	Notes   string
}

// Form holds everything the customer enters during checkout.
type Form struct {
	Customer Customer
	Delivery DeliveryMethod
	Payment  PaymentMethod
}

// Validate gates submission. All missing fields are reported together in one domain.ValidationError.
func Validate(form Form, items []domain.LineItem) error {
	missing := missingContact(form.Customer)
	if form.Delivery == DeliveryNone {
		missing = append(missing, "delivery method")
	}
	if form.Payment == PaymentNone {
		missing = append(missing, "payment method")
	}
	if len(items) == 0 {
		missing = append(missing, "cart items")
	}

	if len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}
	return nil
}

func missingContact(c Customer) []string {
	var missing []string
	if blank(c.Name) {
		missing = append(missing, "name")
	}
	if blank(c.Phone) {
		missing = append(missing, "phone")
	}
	if blank(c.Address) {
		missing = append(missing, "address")
	}
	return missing
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
