package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type SummaryLine struct {
	Name      string
	Variant   string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Summary is the order as handed off to the shop.
type Summary struct {
	Customer    Customer
	Lines       []SummaryLine
	Calculation Calculation
	PlacedAt    time.Time
}

func BuildSummary(form Form, items []domain.LineItem, calc Calculation, placedAt time.Time) Summary {
	lines := make([]SummaryLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, SummaryLine{
			Name:      item.Product.Name,
			Variant:   item.VariantLabel(),
			Quantity:  item.Quantity,
			UnitPrice: item.Product.EffectivePrice(),
			LineTotal: item.LineTotal(),
		})
	}

	return Summary{
		Customer:    form.Customer,
		Lines:       lines,
		Calculation: calc,
		PlacedAt:    placedAt,
	}
}

// Message renders the summary as the plain-text block sent to the shop.
func (s Summary) Message() string {
	var b strings.Builder
	calc := s.Calculation

	b.WriteString("New order\n")
	fmt.Fprintf(&b, "Date: %s\n\n", s.PlacedAt.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "Customer: %s\n", s.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", s.Customer.Phone)
	fmt.Fprintf(&b, "Address: %s\n", s.Customer.Address)
	if s.Customer.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", s.Customer.Email)
	}
	if s.Customer.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", s.Customer.Notes)
	}

	b.WriteString("\nItems:\n")
	for _, line := range s.Lines {
		name := line.Name
		if line.Variant != "" {
			name += " (" + line.Variant + ")"
		}
		fmt.Fprintf(&b, "- %d x %s: %s\n", line.Quantity, name, calc.Format(line.LineTotal))
	}

	fmt.Fprintf(&b, "\nDelivery: %s\n", calc.Delivery.Description())
	fmt.Fprintf(&b, "Payment: %s\n\n", calc.Payment.Description())

	fmt.Fprintf(&b, "Subtotal: %s\n", calc.Format(calc.Subtotal))
	if calc.Discount.IsPositive() {
		fmt.Fprintf(&b, "Discount: -%s\n", calc.Format(calc.Discount))
	}
	if calc.FreeShipping {
		b.WriteString("Shipping: free\n")
	} else {
		fmt.Fprintf(&b, "Shipping: %s\n", calc.Format(calc.DeliveryCost))
	}
	fmt.Fprintf(&b, "Total: %s\n", calc.Format(calc.Total))

	return b.String()
}
