package checkout

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Calculation is the cost breakdown of a checkout. It is derived, never stored.
type Calculation struct {
	Subtotal     decimal.Decimal
	Delivery     DeliveryMethod
	DeliveryCost decimal.Decimal
	// FreeShipping is set when the subtotal reached the method's free-shipping threshold.
	// Methods without a base cost have no threshold and never set it.
	FreeShipping bool
	// FreeShippingRemaining is how much more subtotal unlocks free shipping; zero when not applicable.
	FreeShippingRemaining decimal.Decimal
	Payment               PaymentMethod
	Discount              decimal.Decimal
	Total                 decimal.Decimal
	Currency              currency.Unit
}

// Calculate derives delivery cost, payment discount, total and settlement currency.
// DeliveryNone and PaymentNone are accepted and contribute nothing.
func Calculate(subtotal decimal.Decimal, delivery DeliveryMethod, payment PaymentMethod) (Calculation, error) {
	if subtotal.IsNegative() {
		return Calculation{}, fmt.Errorf("subtotal %s is negative", subtotal)
	}

	calc := Calculation{
		Subtotal:              subtotal,
		Delivery:              delivery,
		DeliveryCost:          decimal.Zero,
		FreeShippingRemaining: decimal.Zero,
		Payment:               payment,
		Discount:              decimal.Zero,
		Currency:              domain.CUP,
	}

	if delivery != DeliveryNone {
		terms, ok := deliveryTable[delivery]
		if !ok {
			return Calculation{}, fmt.Errorf("delivery method %q: %w", delivery, ErrUnknownMethod)
		}
		calc.DeliveryCost, calc.FreeShipping, calc.FreeShippingRemaining = deliveryCost(terms, subtotal)
	}

	if payment != PaymentNone {
		terms, ok := paymentTable[payment]
		if !ok {
			return Calculation{}, fmt.Errorf("payment method %q: %w", payment, ErrUnknownMethod)
		}
		calc.Discount = subtotal.Mul(terms.discountRate).Round(2)
		calc.Currency = terms.currency
	}

	calc.Total = calc.Subtotal.Sub(calc.Discount).Add(calc.DeliveryCost)

	return calc, nil
}

func deliveryCost(terms deliveryTerms, subtotal decimal.Decimal) (cost decimal.Decimal, free bool, remaining decimal.Decimal) {
	if terms.baseCost.IsZero() {
		return decimal.Zero, false, decimal.Zero
	}
	if terms.threshold == nil {
		return terms.baseCost, false, decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(*terms.threshold) {
		return decimal.Zero, true, decimal.Zero
	}
	return terms.baseCost, false, terms.threshold.Sub(subtotal)
}

func (c Calculation) TotalMoney() domain.Money {
	return domain.NewMoney(c.Total, c.Currency)
}

func (c Calculation) Format(amount decimal.Decimal) string {
	return domain.FormatAmount(amount, c.Currency)
}
