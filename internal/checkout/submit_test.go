package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessenger struct {
	messages []string
	err      error
}

func (f *fakeMessenger) HandOff(_ context.Context, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.messages = append(f.messages, message)
	return "https://example.test/order", nil
}

func TestSubmitter_Submit(t *testing.T) {
	placedAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	clock := func() time.Time { return placedAt }

	size, color := "M", "Negro"
	items := []domain.LineItem{
		{
			ID:            "line-1",
			Product:       domain.Product{ID: uuid.New(), Name: "Linen dress", Price: decimal.NewFromInt(400), Stock: 5},
			Quantity:      2,
			SelectedSize:  &size,
			SelectedColor: &color,
		},
		{
			ID:       "line-2",
			Product:  domain.Product{ID: uuid.New(), Name: "Canvas tote", Price: decimal.NewFromInt(200), Stock: 1},
			Quantity: 1,
		},
	}

	form := checkout.Form{
		Customer: checkout.Customer{Name: "Ana Perez", Phone: "+53 5555 5555", Address: "Calle 23, Vedado", Notes: "after 5pm"},
		Delivery: checkout.DeliveryPickup,
		Payment:  checkout.PaymentCashLocal,
	}

	t.Run("valid order: handed off", func(t *testing.T) {
		messenger := &fakeMessenger{}
		submitter := checkout.NewSubmitter(messenger, checkout.WithClock(clock))

		before := cloneItems(items)
		receipt, err := submitter.Submit(t.Context(), form, items)
		require.NoError(t, err)

		assert.Equal(t, "https://example.test/order", receipt.Link)
		assertDecimal(t, "50", receipt.Summary.Calculation.Discount)
		assertDecimal(t, "950", receipt.Summary.Calculation.Total)
		assert.Empty(t, cmp.Diff(before, items), "items must not be mutated")

		require.Len(t, messenger.messages, 1)
		want := `New order
Date: 2026-03-14 10:30

Customer: Ana Perez
Phone: +53 5555 5555
Address: Calle 23, Vedado
Notes: after 5pm

Items:
- 2 x Linen dress (size M, color Negro): 800.00 CUP
- 1 x Canvas tote: 200.00 CUP

Delivery: Pickup in store
Payment: Cash (CUP), 5% off

Subtotal: 1000.00 CUP
Discount: -50.00 CUP
Shipping: 0.00 CUP
Total: 950.00 CUP
`
		assert.Equal(t, want, messenger.messages[0])
	})

	t.Run("incomplete order: not handed off", func(t *testing.T) {
		messenger := &fakeMessenger{}
		submitter := checkout.NewSubmitter(messenger)

		incomplete := form
		incomplete.Payment = checkout.PaymentNone

		_, err := submitter.Submit(t.Context(), incomplete, items)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, messenger.messages)
	})

	t.Run("messenger failure: error", func(t *testing.T) {
		submitter := checkout.NewSubmitter(&fakeMessenger{err: errors.New("offline")})

		_, err := submitter.Submit(t.Context(), form, items)
		require.EqualError(t, err, "messenger.HandOff: offline")
	})
}

func TestSummary_MessageFreeShipping(t *testing.T) {
	calc, err := checkout.Calculate(decimal.NewFromInt(6000), checkout.DeliveryLocal, checkout.PaymentZelle)
	require.NoError(t, err)

	summary := checkout.BuildSummary(completeForm(), []domain.LineItem{randomLineItem(1)}, calc, time.Now())
	message := summary.Message()

	assert.Contains(t, message, "Shipping: free\n")
	assert.Contains(t, message, "Total: 6000.00 USD\n")
	assert.NotContains(t, message, "Discount:")
}

func cloneItems(items []domain.LineItem) []domain.LineItem {
	return append([]domain.LineItem(nil), items...)
}
