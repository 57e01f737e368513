package repository_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

type cartRepositorySuite struct {
	suite.Suite

	repo      port.CartRepository
	pool      *pgxpool.Pool
	container *postgres.PostgresContainer
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before all tests in the suite
func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	container, connStr, err := startPostgres(ctx)
	suite.container = container
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo, err = repository.NewCart(suite.pool)
	suite.Require().NoError(err)
}

// after all tests in the suite
func (suite *cartRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *cartRepositorySuite) TestReplaceItems() {
	defer suite.deleteAll()

	product := randomProduct()

	tests := []struct {
		name      string
		ownerID   string
		items     []domain.LineItem
		wantError string
	}{
		{
			name:    "replace with items: ok",
			ownerID: gofakeit.UUID(),
			items:   []domain.LineItem{randomLineItem(product, "M", "Negro"), randomLineItem(product, "M", "Blanco")},
		},
		{
			name:    "replace with empty cart: ok",
			ownerID: gofakeit.UUID(),
			items:   []domain.LineItem{},
		},
		{
			name:    "unset variant next to set variant: ok",
			ownerID: gofakeit.UUID(),
			items: []domain.LineItem{
				{ID: gofakeit.UUID(), Product: product, Quantity: 1},
				randomLineItem(product, "S", "Rojo"),
			},
		},
		{
			name:      "replace with empty owner ID: error",
			ownerID:   "",
			items:     []domain.LineItem{randomLineItem(product, "M", "Negro")},
			wantError: "ownerID is empty",
		},
		{
			name:      "line item without id: error",
			ownerID:   gofakeit.UUID(),
			items:     []domain.LineItem{{Product: product, Quantity: 1}},
			wantError: "mapLineItemToParams: line item id is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			// a previous cart must be fully overwritten
			if tt.ownerID != "" {
				err := suite.repo.ReplaceItems(ctx, tt.ownerID, []domain.LineItem{randomLineItem(randomProduct(), "L", "Negro")})
				require.NoError(t, err)
			}

			err := suite.repo.ReplaceItems(ctx, tt.ownerID, tt.items)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			got, err := suite.repo.GetCart(ctx, tt.ownerID)
			require.NoError(t, err)

			assert.Equal(t, tt.ownerID, got.OwnerID)
			require.Len(t, got.Items, len(tt.items))
			for i, expected := range tt.items {
				assertLineItem(t, expected, got.Items[i])
			}
		})
	}
}

func (suite *cartRepositorySuite) TestReplaceItems_DuplicateVariantRollsBack() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	ownerID := gofakeit.UUID()
	product := randomProduct()

	original := []domain.LineItem{randomLineItem(product, "M", "Negro")}
	require.NoError(t, suite.repo.ReplaceItems(ctx, ownerID, original))

	duplicate := []domain.LineItem{randomLineItem(product, "S", "Rojo"), randomLineItem(product, "S", "Rojo")}
	err := suite.repo.ReplaceItems(ctx, ownerID, duplicate)
	require.Error(t, err)

	got, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assertLineItem(t, original[0], got.Items[0])
}

func (suite *cartRepositorySuite) TestReplaceItems_InCallerTx() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	ownerID := gofakeit.UUID()
	items := []domain.LineItem{randomLineItem(randomProduct(), "M", "Negro")}

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, repository.NewCartWithTx(tx).ReplaceItems(ctx, ownerID, items))
	require.NoError(t, tx.Rollback(ctx))

	got, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)

	tx, err = suite.pool.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, repository.NewCartWithTx(tx).ReplaceItems(ctx, ownerID, items))
	require.NoError(t, tx.Commit(ctx))

	got, err = suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assertLineItem(t, items[0], got.Items[0])
}

func (suite *cartRepositorySuite) TestGetCart() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		ownerID   string
		wantError string
	}{
		{
			name:    "get unknown cart: empty",
			ownerID: gofakeit.UUID(),
		},
		{
			name:      "get cart with empty owner ID: error",
			ownerID:   "",
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			got, err := suite.repo.GetCart(t.Context(), tt.ownerID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.ownerID, got.OwnerID)
			assert.Empty(t, got.Items)
		})
	}
}

func (suite *cartRepositorySuite) TestOwnerSlotBacksCartStore() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	slot, err := repository.NewOwnerSlot(suite.repo, gofakeit.UUID())
	require.NoError(t, err)

	items, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	product := randomProduct()
	store := cart.New(ctx, slot)
	first, err := store.AddItem(ctx, product, 2, ptr("M"), ptr("Negro"))
	require.NoError(t, err)
	second, err := store.AddItem(ctx, product, 3, ptr("M"), ptr("Blanco"))
	require.NoError(t, err)

	result, err := store.UpdateItemOptions(ctx, second.ID, cart.VariantChange{Color: ptr("Negro")})
	require.NoError(t, err)
	assert.True(t, result.Merged)
	assert.Equal(t, first.ID, result.Item.ID)

	restored := cart.New(ctx, slot)
	require.Len(t, restored.Items(), 1)
	assertLineItem(t, result.Item, restored.Items()[0])
}

func (suite *cartRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE cart_items CASCADE")
	suite.NoError(err)
}

func TestNewOwnerSlot_Errors(t *testing.T) {
	_, err := repository.NewOwnerSlot(nil, "owner")
	require.EqualError(t, err, "repo is nil")

	_, err = repository.NewCart(nil)
	require.EqualError(t, err, "pool is nil")
}

func randomProduct() domain.Product {
	sale := decimal.NewFromFloat(gofakeit.Price(1, 50)).Round(2)

	return domain.Product{
		ID:          uuid.MustParse(gofakeit.UUID()),
		Name:        gofakeit.ProductName(),
		Category:    gofakeit.ProductCategory(),
		Subcategory: gofakeit.Noun(),
		Price:       decimal.NewFromFloat(gofakeit.Price(51, 100)).Round(2),
		SalePrice:   &sale,
		OnSale:      gofakeit.Bool(),
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"Negro", "Blanco", "Rojo"},
		Stock:       gofakeit.IntRange(5, 20),
	}
}

func randomLineItem(product domain.Product, size, color string) domain.LineItem {
	return domain.LineItem{
		ID:            domain.NewLineItemID(domain.IdentityOf(product.ID, &size, &color)),
		Product:       product,
		Quantity:      gofakeit.IntRange(1, product.Stock),
		SelectedSize:  &size,
		SelectedColor: &color,
	}
}

func assertLineItem(t *testing.T, expected, actual domain.LineItem) {
	t.Helper()

	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	// Ignore the CreatedAt field in LineItem
	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.LineItem{}, "CreatedAt"),
		decimalComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}

func ptr(s string) *string {
	return &s
}
