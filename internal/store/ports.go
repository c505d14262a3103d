// Package store defines the ports for the order store. The store is
// append-only: accepted orders are never updated or deleted.
package store

import (
	"context"

	"foodspend/internal/core"
)

type (
	// Appender accepts a validated order into the store.
	Appender interface {
		Append(ctx context.Context, o core.Order) error
	}

	// Lister returns a snapshot of all stored orders in insertion order.
	// Callers may retain and re-read the snapshot; it never reflects
	// later appends.
	Lister interface {
		AllOrders(ctx context.Context) ([]core.Order, error)
	}

	// Store combines both sides of the contract.
	Store interface {
		Appender
		Lister
	}
)
