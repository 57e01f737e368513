package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Option is a nullable variant attribute. An unset Option is a value of its own:
// it never equals a set Option, not even one holding the empty string.
type Option struct {
	Value string
	Set   bool
}

func OptionOf(v *string) Option {
	if v == nil {
		return Option{}
	}
	return Option{Value: *v, Set: true}
}

func (o Option) Ptr() *string {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

func (o Option) String() string {
	if !o.Set {
		return "-"
	}
	return o.Value
}

// VariantKey identifies a purchasable thing: two line items are the same logical item iff their keys are equal.
type VariantKey struct {
	ProductID uuid.UUID
	Size      Option
	Color     Option
}

func IdentityOf(productID uuid.UUID, size, color *string) VariantKey {
	return VariantKey{
		ProductID: productID,
		Size:      OptionOf(size),
		Color:     OptionOf(color),
	}
}

func (k VariantKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.ProductID, k.Size, k.Color)
}

// NewLineItemID derives a fresh line item id from the variant key.
// Every call returns a distinct id, so a variant change always retires the old one.
func NewLineItemID(k VariantKey) string {
	return k.String() + "/" + uuid.NewString()
}
