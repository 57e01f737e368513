package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	OwnerID string
	Items   []LineItem
}

type LineItem struct {
	ID            string  `json:"id"`
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SelectedSize  *string `json:"selected_size"`
	SelectedColor *string `json:"selected_color"`

	CreatedAt time.Time `json:"created_at"`
}

func (i LineItem) Key() VariantKey {
	return IdentityOf(i.Product.ID, i.SelectedSize, i.SelectedColor)
}

// Clone returns a copy that shares no memory with i.
func (i LineItem) Clone() LineItem {
	c := i
	c.Product = i.Product.Clone()
	c.SelectedSize = cloneString(i.SelectedSize)
	c.SelectedColor = cloneString(i.SelectedColor)
	return c
}

func (i LineItem) LineTotal() decimal.Decimal {
	return i.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// VariantLabel renders the selected size and color, e.g. "size M, color Negro". Empty when nothing is selected.
func (i LineItem) VariantLabel() string {
	var parts []string
	if i.SelectedSize != nil {
		parts = append(parts, "size "+*i.SelectedSize)
	}
	if i.SelectedColor != nil {
		parts = append(parts, "color "+*i.SelectedColor)
	}
	return strings.Join(parts, ", ")
}

func (c Cart) ItemCount() int {
	return ItemCount(c.Items)
}

func (c Cart) Subtotal() decimal.Decimal {
	return Subtotal(c.Items)
}

// ItemCount sums quantities across line items.
func ItemCount(items []LineItem) int {
	var n int
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

// Subtotal sums quantity times effective price across line items.
func Subtotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
