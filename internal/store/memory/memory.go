// Package memory provides the volatile in-memory order store.
package memory

import (
	"context"
	"sync"

	"foodspend/internal/core"
)

// Store keeps accepted orders in insertion order. The mutex serializes the
// single-writer append against concurrent snapshot reads.
type Store struct {
	mu     sync.Mutex
	orders []core.Order
}

func New() *Store {
	return &Store{}
}

// Append stores the order.
func (s *Store) Append(_ context.Context, o core.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
	return nil
}

// AllOrders returns a snapshot copy in insertion order.
func (s *Store) AllOrders(_ context.Context) ([]core.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Order(nil), s.orders...), nil
}

// Len reports the number of stored orders.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
