package cart

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// persist must be called with s.mu held. Failures are logged, never returned.
func (s *Store) persist(ctx context.Context) {
	if s.snapshot == nil {
		return
	}

	items := cloneItems(s.items)

	if err := s.snapshot.Save(ctx, items); err != nil {
		s.logger.Error("cart snapshot not saved", zap.Int("items", len(items)), zap.Error(err))
	}
}

func (s *Store) load(ctx context.Context) []domain.LineItem {
	if s.snapshot == nil {
		return nil
	}

	items, err := s.snapshot.Load(ctx)
	if err != nil {
		s.logger.Warn("cart snapshot unreadable, starting with an empty cart", zap.Error(err))
		return nil
	}

	return s.reconcile(cloneItems(items))
}

// reconcile restores the cart invariants on loaded data: quantities within 1..stock
// and at most one line item per variant key.
func (s *Store) reconcile(items []domain.LineItem) []domain.LineItem {
	var result []domain.LineItem
	positions := make(map[domain.VariantKey]int, len(items))

	for _, item := range items {
		quantity := min(item.Quantity, item.Product.Stock)
		if quantity < 1 {
			s.logger.Warn("dropping restored line item", zap.String("line_item_id", item.ID), zap.Int("quantity", item.Quantity), zap.Int("stock", item.Product.Stock))
			continue
		}
		item.Quantity = quantity

		key := item.Key()
		if item.ID == "" {
			item.ID = domain.NewLineItemID(key)
		}

		if i, ok := positions[key]; ok {
			result[i].Quantity = min(result[i].Quantity+item.Quantity, result[i].Product.Stock)
			continue
		}

		positions[key] = len(result)
		result = append(result, item)
	}

	return result
}

func (s *Store) succeed(ctx context.Context, message string) {
	s.notifier.Notify(ctx, port.Notification{Level: port.NotificationSuccess, Message: message})
}

func (s *Store) fail(ctx context.Context, message string, err error) {
	s.logger.Debug(message, zap.Error(err))
	s.notifier.Notify(ctx, port.Notification{Level: port.NotificationFailure, Message: err.Error()})
}
