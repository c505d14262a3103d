// Package services orchestrates the order store, the pure core logic and
// the outbound event/export clients.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"foodspend/internal/amqp"
	"foodspend/internal/core"
	"foodspend/internal/store"
)

// OrderService handles order submission, listing and analysis.
type OrderService struct {
	store      store.Store
	categories core.CategorySet
	events     *amqp.Client
	newID      func() string

	// Analysis memo. Valid while the order count is unchanged, which is
	// sound because the store is append-only.
	mu        sync.Mutex
	memo      core.Analysis
	memoCount int
	memoValid bool
}

func NewOrderService(st store.Store, categories core.CategorySet, events *amqp.Client) *OrderService {
	return &OrderService{
		store:      st,
		categories: categories,
		events:     events,
		newID:      uuid.NewString,
	}
}

// Submit validates a candidate, assigns it a fresh id, appends it to the
// store and announces it. A failed announcement is logged, not surfaced:
// the order is already accepted locally.
func (s *OrderService) Submit(ctx context.Context, c core.Candidate) (core.Order, error) {
	order, err := core.ValidateCandidate(c, s.categories)
	if err != nil {
		return core.Order{}, err
	}
	order.ID = s.newID()

	if err := s.store.Append(ctx, order); err != nil {
		return core.Order{}, fmt.Errorf("append order: %w", err)
	}

	slog.InfoContext(ctx, "Order recorded",
		"order_id", order.ID,
		"category", order.Category,
		"amount_cents", order.Amount.Cents,
		"quantity", order.Quantity,
		"order_date", order.Date.Format("2006-01-02"))

	if s.events != nil {
		if err := s.events.PublishOrderRecorded(ctx, amqp.NewOrderRecordedMessage(order)); err != nil {
			slog.ErrorContext(ctx, "Failed to publish order recorded message",
				"order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

// List returns the stored orders matching the optional filter, in
// insertion order.
func (s *OrderService) List(ctx context.Context, f core.ListFilter) ([]core.Order, error) {
	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return core.FilterOrders(orders, f, s.categories)
}

// Analysis returns the aggregate view over all stored orders.
func (s *OrderService) Analysis(ctx context.Context) (core.Analysis, error) {
	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return core.Analysis{}, fmt.Errorf("read orders: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.memoValid && s.memoCount == len(orders) {
		return s.memo, nil
	}

	s.memo = core.Analyze(orders)
	s.memoCount = len(orders)
	s.memoValid = true
	return s.memo, nil
}

// Summary reduces the stored orders over the given period relative to ref.
func (s *OrderService) Summary(ctx context.Context, p core.Period, ref time.Time) (core.PeriodSummary, error) {
	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return core.PeriodSummary{}, fmt.Errorf("read orders: %w", err)
	}
	return core.Summarize(orders, p, ref), nil
}

// Categories returns the configured category set.
func (s *OrderService) Categories() core.CategorySet {
	return s.categories
}
