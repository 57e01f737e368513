package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrStockInsufficient = errors.New("stock insufficient")
	ErrNotFound          = errors.New("line item not found")
	ErrVariantInvalid    = errors.New("variant invalid")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrValidation        = errors.New("order incomplete")
)

// StockInsufficientError reports the product stock and how many units the cart already holds,
// so callers can tell the user how many more can be taken.
type StockInsufficientError struct {
	ProductID uuid.UUID
	Requested int
	Stock     int
	InCart    int
}

// Available is the remaining capacity: stock minus what the cart already holds.
func (e *StockInsufficientError) Available() int {
	return max(e.Stock-e.InCart, 0)
}

func (e *StockInsufficientError) Error() string {
	if e.InCart > 0 {
		return fmt.Sprintf("only %d units of product %s in stock, %d already in cart", e.Stock, e.ProductID, e.InCart)
	}
	return fmt.Sprintf("only %d units of product %s in stock, requested %d", e.Stock, e.ProductID, e.Requested)
}

func (e *StockInsufficientError) Is(target error) bool {
	return target == ErrStockInsufficient
}

type NotFoundError struct {
	LineItemID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("line item %q not found", e.LineItemID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type VariantInvalidError struct {
	Attribute string
	Value     string
	Allowed   []string
}

func (e *VariantInvalidError) Error() string {
	return fmt.Sprintf("%s %q is not available, choose one of [%s]", e.Attribute, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *VariantInvalidError) Is(target error) bool {
	return target == ErrVariantInvalid
}

type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity %d is invalid: must be at least 1", e.Quantity)
}

func (e *InvalidQuantityError) Is(target error) bool {
	return target == ErrInvalidQuantity
}

// ValidationError aggregates every missing field of an order into one failure.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "please complete the order: missing " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
