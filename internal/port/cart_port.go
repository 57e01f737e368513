package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

// CartRepository stores the cart line items of many owners.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	ReplaceItems(ctx context.Context, ownerID string, items []domain.LineItem) error
}

// CartSnapshotStore is a single durable slot holding one cart snapshot.
// Load returns an empty slice when nothing was saved yet.
type CartSnapshotStore interface {
	Load(ctx context.Context) ([]domain.LineItem, error)
	Save(ctx context.Context, items []domain.LineItem) error
}
