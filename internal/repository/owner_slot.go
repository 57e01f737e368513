package repository

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

// ownerSlot exposes one owner's cart in a CartRepository as a snapshot slot.
type ownerSlot struct {
	repo    port.CartRepository
	ownerID string
}

func NewOwnerSlot(repo port.CartRepository, ownerID string) (port.CartSnapshotStore, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	return &ownerSlot{repo: repo, ownerID: ownerID}, nil
}

func (s *ownerSlot) Load(ctx context.Context) ([]domain.LineItem, error) {
	cart, err := s.repo.GetCart(ctx, s.ownerID)
	if err != nil {
		return nil, fmt.Errorf("repo.GetCart: %w", err)
	}

	if cart.Items == nil {
		return []domain.LineItem{}, nil
	}
	return cart.Items, nil
}

func (s *ownerSlot) Save(ctx context.Context, items []domain.LineItem) error {
	if err := s.repo.ReplaceItems(ctx, s.ownerID, items); err != nil {
		return fmt.Errorf("repo.ReplaceItems: %w", err)
	}
	return nil
}
