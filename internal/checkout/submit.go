package checkout

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type Receipt struct {
	Summary Summary
	Link    string
}

// Submitter validates an order and hands its summary to a messenger. It never touches the cart;
// clearing it after a hand-off is up to the caller.
type Submitter struct {
	messenger port.Messenger
	logger    *zap.Logger
	now       func() time.Time
}

type SubmitterOption func(*Submitter)

func WithLogger(logger *zap.Logger) SubmitterOption {
	return func(s *Submitter) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) SubmitterOption {
	return func(s *Submitter) {
		s.now = now
	}
}

func NewSubmitter(messenger port.Messenger, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		messenger: messenger,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Submitter) Submit(ctx context.Context, form Form, items []domain.LineItem) (Receipt, error) {
	if err := Validate(form, items); err != nil {
		return Receipt{}, err
	}

	items = slices.Clone(items)

	calc, err := Calculate(domain.Subtotal(items), form.Delivery, form.Payment)
	if err != nil {
		return Receipt{}, fmt.Errorf("Calculate: %w", err)
	}

	summary := BuildSummary(form, items, calc, s.now())

	link, err := s.messenger.HandOff(ctx, summary.Message())
	if err != nil {
		return Receipt{}, fmt.Errorf("messenger.HandOff: %w", err)
	}

	s.logger.Info("order handed off",
		zap.Int("lines", len(summary.Lines)),
		zap.String("delivery", string(form.Delivery)),
		zap.String("payment", string(form.Payment)),
		zap.Stringer("total", calc.TotalMoney()),
	)

	return Receipt{Summary: summary, Link: link}, nil
}
