package domain

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a point-in-time snapshot of a catalog product. The cart references it and never mutates it.
type Product struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category,omitempty"`
	Subcategory string           `json:"subcategory,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	OnSale      bool             `json:"on_sale"`
	Sizes       []string         `json:"sizes,omitempty"`
	Colors      []string         `json:"colors,omitempty"`
	// Stock is shared by all variants of the product.
	Stock int `json:"stock"`
}

// Clone returns a copy that shares no memory with p.
func (p Product) Clone() Product {
	c := p
	if p.SalePrice != nil {
		sale := *p.SalePrice
		c.SalePrice = &sale
	}
	c.Sizes = slices.Clone(p.Sizes)
	c.Colors = slices.Clone(p.Colors)
	return c
}

// EffectivePrice is the unit price actually charged.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.OnSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// HasSize reports whether size is allowed. An empty size list accepts any value.
func (p Product) HasSize(size string) bool {
	return len(p.Sizes) == 0 || slices.Contains(p.Sizes, size)
}

// HasColor reports whether color is allowed. An empty color list accepts any value.
func (p Product) HasColor(color string) bool {
	return len(p.Colors) == 0 || slices.Contains(p.Colors, color)
}
