package cart_test

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
)

// memorySnapshot is an in-memory port.CartSnapshotStore.
type memorySnapshot struct {
	mu      sync.Mutex
	items   []domain.LineItem
	saves   int
	loadErr error
	saveErr error
}

func (m *memorySnapshot) Load(_ context.Context) ([]domain.LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return slices.Clone(m.items), nil
}

func (m *memorySnapshot) Save(_ context.Context, items []domain.LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items = slices.Clone(items)
	return nil
}

func (m *memorySnapshot) saved() ([]domain.LineItem, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.items), m.saves
}

type recordingNotifier struct {
	notifications []port.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n port.Notification) {
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) last() port.Notification {
	if len(r.notifications) == 0 {
		return port.Notification{}
	}
	return r.notifications[len(r.notifications)-1]
}

var errBroken = errors.New("slot broken")

func randomProduct(stock int) domain.Product {
	return domain.Product{
		ID:     uuid.MustParse(gofakeit.UUID()),
		Name:   gofakeit.ProductName(),
		Price:  decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Sizes:  []string{"S", "M", "L"},
		Colors: []string{"Negro", "Blanco", "Rojo"},
		Stock:  stock,
	}
}

func ptr(s string) *string {
	return &s
}
