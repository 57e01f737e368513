package checkout

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrUnknownMethod = errors.New("unknown method")

type DeliveryMethod string

const (
	DeliveryNone       DeliveryMethod = ""
	DeliveryPickup     DeliveryMethod = "pickup-in-store"
	DeliveryLocal      DeliveryMethod = "local-delivery"
	DeliveryNationwide DeliveryMethod = "nationwide-delivery"
)

type deliveryTerms struct {
	baseCost decimal.Decimal
	// threshold is the subtotal from which delivery is free; nil when the method has none.
	threshold   *decimal.Decimal
	description string
}

var deliveryTable = map[DeliveryMethod]deliveryTerms{
	DeliveryPickup: {
		baseCost:    decimal.Zero,
		description: "Pickup in store",
	},
	DeliveryLocal: {
		baseCost:    decimal.NewFromInt(250),
		threshold:   amount(5000),
		description: "Local delivery",
	},
	DeliveryNationwide: {
		baseCost:    decimal.NewFromInt(500),
		threshold:   amount(20000),
		description: "Nationwide delivery",
	},
}

func DeliveryMethods() []DeliveryMethod {
	return []DeliveryMethod{DeliveryPickup, DeliveryLocal, DeliveryNationwide}
}

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	m := DeliveryMethod(s)
	if _, ok := deliveryTable[m]; !ok {
		return DeliveryNone, fmt.Errorf("delivery method %q: %w", s, ErrUnknownMethod)
	}
	return m, nil
}

func (m DeliveryMethod) Description() string {
	return deliveryTable[m].description
}

func (m DeliveryMethod) BaseCost() decimal.Decimal {
	return deliveryTable[m].baseCost
}

// FreeShippingThreshold returns the subtotal from which the method is free, if it has one.
func (m DeliveryMethod) FreeShippingThreshold() (decimal.Decimal, bool) {
	t := deliveryTable[m].threshold
	if t == nil {
		return decimal.Zero, false
	}
	return *t, true
}

type PaymentMethod string

const (
	PaymentNone         PaymentMethod = ""
	PaymentBankTransfer PaymentMethod = "bank-transfer"
	PaymentCashLocal    PaymentMethod = "cash-local-currency"
	PaymentCashUSD      PaymentMethod = "cash-usd"
	PaymentZelle        PaymentMethod = "zelle"
)

type paymentTerms struct {
	discountRate decimal.Decimal
	currency     currency.Unit
	description  string
}

var paymentTable = map[PaymentMethod]paymentTerms{
	PaymentBankTransfer: {
		discountRate: decimal.Zero,
		currency:     domain.CUP,
		description:  "Bank transfer",
	},
	PaymentCashLocal: {
		discountRate: decimal.RequireFromString("0.05"),
		currency:     domain.CUP,
		description:  "Cash (CUP), 5% off",
	},
	PaymentCashUSD: {
		discountRate: decimal.Zero,
		currency:     currency.USD,
		description:  "Cash (USD)",
	},
	PaymentZelle: {
		discountRate: decimal.Zero,
		currency:     currency.USD,
		description:  "Zelle",
	},
}

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentBankTransfer, PaymentCashLocal, PaymentCashUSD, PaymentZelle}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if _, ok := paymentTable[m]; !ok {
		return PaymentNone, fmt.Errorf("payment method %q: %w", s, ErrUnknownMethod)
	}
	return m, nil
}

func (m PaymentMethod) Description() string {
	return paymentTable[m].description
}

func (m PaymentMethod) DiscountRate() decimal.Decimal {
	return paymentTable[m].discountRate
}

// Currency is the settlement currency. Unselected payment settles in CUP.
func (m PaymentMethod) Currency() currency.Unit {
	terms, ok := paymentTable[m]
	if !ok {
		return domain.CUP
	}
	return terms.currency
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
