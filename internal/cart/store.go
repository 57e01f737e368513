package cart

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store owns the in-memory line items of one cart session.
// The in-memory state is authoritative; every successful mutation writes a best-effort snapshot.
type Store struct {
	mu    sync.Mutex
	items []domain.LineItem

	snapshot port.CartSnapshotStore
	notifier port.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

type StoreOption func(*Store)

func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithNotifier(notifier port.Notifier) StoreOption {
	return func(s *Store) {
		s.notifier = notifier
	}
}

func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// VariantChange carries the new size and color of a line item. Nil fields keep the current selection.
type VariantChange struct {
	Size  *string
	Color *string
}

type OptionsResult struct {
	// Item is the line item now holding the units: the mutated item or the merge target.
	Item       domain.LineItem
	PreviousID string
	Merged     bool
	// Capped is set when a merge reduced the summed quantity to the product stock.
	Capped bool
}

// New restores the cart from snapshot. An unreadable snapshot starts an empty cart.
func New(ctx context.Context, snapshot port.CartSnapshotStore, opts ...StoreOption) *Store {
	s := &Store{
		snapshot: snapshot,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier(s.logger)
	}

	s.items = s.load(ctx)

	return s
}

func (s *Store) AddItem(ctx context.Context, product domain.Product, quantity int, size, color *string) (domain.LineItem, error) {
	s.mu.Lock()
	item, err := s.addItem(product, quantity, size, color)
	if err == nil {
		s.persist(ctx)
	}
	s.mu.Unlock()

	if err != nil {
		s.fail(ctx, "item not added", err)
		return domain.LineItem{}, err
	}

	s.succeed(ctx, fmt.Sprintf("%s added to cart", product.Name))
	return item, nil
}

func (s *Store) addItem(product domain.Product, quantity int, size, color *string) (domain.LineItem, error) {
	if quantity < 1 {
		return domain.LineItem{}, &domain.InvalidQuantityError{Quantity: quantity}
	}
	if err := validateVariant(product, size, color); err != nil {
		return domain.LineItem{}, err
	}
	if quantity > product.Stock {
		return domain.LineItem{}, &domain.StockInsufficientError{
			ProductID: product.ID,
			Requested: quantity,
			Stock:     product.Stock,
		}
	}

	key := domain.IdentityOf(product.ID, size, color)

	if i := s.indexOfKey(key); i >= 0 {
		existing := &s.items[i]

		newQuantity := existing.Quantity + quantity
		if newQuantity > product.Stock {
			return domain.LineItem{}, &domain.StockInsufficientError{
				ProductID: product.ID,
				Requested: quantity,
				Stock:     product.Stock,
				InCart:    existing.Quantity,
			}
		}

		existing.Quantity = newQuantity
		existing.Product = product.Clone()
		return existing.Clone(), nil
	}

	item := domain.LineItem{
		ID:            domain.NewLineItemID(key),
		Product:       product.Clone(),
		Quantity:      quantity,
		SelectedSize:  clone(size),
		SelectedColor: clone(color),
		CreatedAt:     s.now(),
	}
	s.items = append(s.items, item)

	return item.Clone(), nil
}

// UpdateQuantity sets the quantity of a line item. Removal goes through RemoveItem.
func (s *Store) UpdateQuantity(ctx context.Context, lineItemID string, quantity int) (domain.LineItem, error) {
	s.mu.Lock()
	item, err := s.updateQuantity(lineItemID, quantity)
	if err == nil {
		s.persist(ctx)
	}
	s.mu.Unlock()

	if err != nil {
		s.fail(ctx, "quantity not updated", err)
		return domain.LineItem{}, err
	}

	return item, nil
}

func (s *Store) updateQuantity(lineItemID string, quantity int) (domain.LineItem, error) {
	i := s.indexOfID(lineItemID)
	if i < 0 {
		return domain.LineItem{}, &domain.NotFoundError{LineItemID: lineItemID}
	}
	if quantity < 1 {
		return domain.LineItem{}, &domain.InvalidQuantityError{Quantity: quantity}
	}

	item := &s.items[i]
	if quantity > item.Product.Stock {
		return domain.LineItem{}, &domain.StockInsufficientError{
			ProductID: item.Product.ID,
			Requested: quantity,
			Stock:     item.Product.Stock,
		}
	}

	item.Quantity = quantity
	return item.Clone(), nil
}

// UpdateItemOptions changes the size and/or color of a line item.
// When the new variant collides with another line item the two are merged, capping the quantity at stock;
// otherwise the line item gets a new id.
func (s *Store) UpdateItemOptions(ctx context.Context, lineItemID string, change VariantChange) (OptionsResult, error) {
	s.mu.Lock()
	result, err := s.updateItemOptions(lineItemID, change)
	if err == nil {
		s.persist(ctx)
	}
	s.mu.Unlock()

	if err != nil {
		s.fail(ctx, "options not updated", err)
		return OptionsResult{}, err
	}

	if result.Capped {
		s.notifier.Notify(ctx, port.Notification{
			Level:   port.NotificationFailure,
			Message: fmt.Sprintf("quantity adjusted to %d due to available stock", result.Item.Quantity),
		})
	} else if result.Merged {
		s.succeed(ctx, "items merged in cart")
	}

	return result, nil
}

func (s *Store) updateItemOptions(lineItemID string, change VariantChange) (OptionsResult, error) {
	i := s.indexOfID(lineItemID)
	if i < 0 {
		return OptionsResult{}, &domain.NotFoundError{LineItemID: lineItemID}
	}
	source := s.items[i]

	size, color := source.SelectedSize, source.SelectedColor
	if change.Size != nil {
		size = change.Size
	}
	if change.Color != nil {
		color = change.Color
	}
	if err := validateVariant(source.Product, change.Size, change.Color); err != nil {
		return OptionsResult{}, err
	}

	newKey := domain.IdentityOf(source.Product.ID, size, color)
	if newKey == source.Key() {
		return OptionsResult{Item: source.Clone(), PreviousID: lineItemID}, nil
	}

	if j := s.indexOfKey(newKey); j >= 0 {
		target := &s.items[j]

		sum := target.Quantity + source.Quantity
		capped := sum > target.Product.Stock
		target.Quantity = min(sum, target.Product.Stock)

		merged := target.Clone()
		s.items = slices.Delete(s.items, i, i+1)

		return OptionsResult{Item: merged, PreviousID: lineItemID, Merged: true, Capped: capped}, nil
	}

	item := &s.items[i]
	item.SelectedSize = clone(size)
	item.SelectedColor = clone(color)
	item.ID = domain.NewLineItemID(newKey)

	return OptionsResult{Item: item.Clone(), PreviousID: lineItemID}, nil
}

func (s *Store) RemoveItem(ctx context.Context, lineItemID string) error {
	s.mu.Lock()
	i := s.indexOfID(lineItemID)
	if i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
		s.persist(ctx)
	}
	s.mu.Unlock()

	if i < 0 {
		err := &domain.NotFoundError{LineItemID: lineItemID}
		s.fail(ctx, "item not removed", err)
		return err
	}

	s.succeed(ctx, "item removed from cart")
	return nil
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.persist(ctx)
	s.mu.Unlock()
}

// IsItemInCart reports whether a line item with exactly this identity exists. Nil size or color means unset.
func (s *Store) IsItemInCart(productID uuid.UUID, size, color *string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.indexOfKey(domain.IdentityOf(productID, size, color)) >= 0
}

func (s *Store) Get(lineItemID string) (domain.LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfID(lineItemID)
	if i < 0 {
		return domain.LineItem{}, false
	}
	return s.items[i].Clone(), true
}

// Items returns a deep copy of the line items in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneItems(s.items)
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.ItemCount(s.items)
}

func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Subtotal(s.items)
}

func (s *Store) indexOfID(lineItemID string) int {
	return slices.IndexFunc(s.items, func(item domain.LineItem) bool {
		return item.ID == lineItemID
	})
}

func (s *Store) indexOfKey(key domain.VariantKey) int {
	return slices.IndexFunc(s.items, func(item domain.LineItem) bool {
		return item.Key() == key
	})
}

func validateVariant(product domain.Product, size, color *string) error {
	if size != nil && !product.HasSize(*size) {
		return &domain.VariantInvalidError{Attribute: "size", Value: *size, Allowed: product.Sizes}
	}
	if color != nil && !product.HasColor(*color) {
		return &domain.VariantInvalidError{Attribute: "color", Value: *color, Allowed: product.Colors}
	}
	return nil
}

func cloneItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}

func clone(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
