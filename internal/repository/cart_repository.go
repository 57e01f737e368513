package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) (port.CartRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	dbCartItems, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(dbCartItems)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

// ReplaceItems overwrites the owner's cart with items in one transaction.
func (r *cartRepository) ReplaceItems(ctx context.Context, ownerID string, items []domain.LineItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	params := make([]db.AddItemParams, 0, len(items))
	for i, item := range items {
		p, err := mapLineItemToParams(ownerID, i, item)
		if err != nil {
			return fmt.Errorf("mapLineItemToParams: %w", err)
		}
		params = append(params, p)
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (int64, error) {
		deleted, err := q.DeleteCart(ctx, ownerID)
		if err != nil {
			return 0, fmt.Errorf("q.DeleteCart: %w", err)
		}

		for _, p := range params {
			if err := q.AddItem(ctx, p); err != nil {
				return 0, fmt.Errorf("q.AddItem: %w", err)
			}
		}

		return deleted, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapLineItemToParams(ownerID string, position int, item domain.LineItem) (db.AddItemParams, error) {
	if item.ID == "" {
		return db.AddItemParams{}, fmt.Errorf("line item id is empty")
	}

	product, err := json.Marshal(item.Product)
	if err != nil {
		return db.AddItemParams{}, fmt.Errorf("json.Marshal: %w", err)
	}

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return db.AddItemParams{
		OwnerID:       ownerID,
		LineID:        item.ID,
		Position:      int32(position),
		ProductID:     item.Product.ID,
		Product:       product,
		Quantity:      int32(item.Quantity),
		SelectedSize:  item.SelectedSize,
		SelectedColor: item.SelectedColor,
		CreatedAt:     createdAt.UTC(),
	}, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.LineItem, error) {
	var product domain.Product
	if err := json.Unmarshal(row.Product, &product); err != nil {
		return domain.LineItem{}, fmt.Errorf("product of line item[%s] is not valid: %w", row.LineID, err)
	}

	return domain.LineItem{
		ID:            row.LineID,
		Product:       product,
		Quantity:      int(row.Quantity),
		SelectedSize:  row.SelectedSize,
		SelectedColor: row.SelectedColor,
		CreatedAt:     row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.LineItem, error) {
	var items []domain.LineItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
