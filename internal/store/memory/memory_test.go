package memory

import (
	"context"
	"testing"
	"time"

	"foodspend/internal/core"
)

func testOrder(id, category string, cents int64) core.Order {
	return core.Order{
		ID:       id,
		Category: core.Category(category),
		Amount:   core.Money{Cents: cents},
		Quantity: 1,
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestAppendAndAllOrders(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.Append(ctx, testOrder("a", "Pizza", 1000)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(ctx, testOrder("b", "Sushi", 5000)); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.AllOrders(ctx)
	if err != nil {
		t.Fatalf("all orders: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("insertion order not preserved: %v", got)
	}
}

func TestAllOrdersSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.Append(ctx, testOrder("a", "Pizza", 1000)); err != nil {
		t.Fatalf("append: %v", err)
	}

	snap, err := s.AllOrders(ctx)
	if err != nil {
		t.Fatalf("all orders: %v", err)
	}
	if err := s.Append(ctx, testOrder("b", "Sushi", 5000)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(snap) != 1 {
		t.Fatalf("snapshot grew after append, len = %d", len(snap))
	}

	// Mutating the snapshot must not touch the store.
	snap[0].Category = "Drinks"
	again, err := s.AllOrders(ctx)
	if err != nil {
		t.Fatalf("all orders: %v", err)
	}
	if again[0].Category != "Pizza" {
		t.Fatal("snapshot mutation leaked into store")
	}
}

func TestReadIdempotence(t *testing.T) {
	ctx := context.Background()
	s := New()
	for i, o := range []core.Order{testOrder("a", "Pizza", 1000), testOrder("b", "Sushi", 5000)} {
		if err := s.Append(ctx, o); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	first, _ := s.AllOrders(ctx)
	second, _ := s.AllOrders(ctx)
	if len(first) != len(second) {
		t.Fatalf("lens differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("read %d differs between calls", i)
		}
	}
}
