// Package storage provides the durable SQLite-backed order store.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"foodspend/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements store.Appender.
func (r *SQLiteRepository) Append(ctx context.Context, o core.Order) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO orders (id, category, amount_cents, quantity, order_date) VALUES (?, ?, ?, ?, ?)`,
		o.ID, string(o.Category), o.Amount.Cents, o.Quantity, o.Date.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	slog.InfoContext(ctx, "Order saved to SQLite",
		"id", o.ID,
		"category", o.Category,
		"amount_cents", o.Amount.Cents,
		"quantity", o.Quantity,
		"order_date", o.Date.Format("2006-01-02"))

	return nil
}

// AllOrders implements store.Lister. Rows come back in insertion order.
func (r *SQLiteRepository) AllOrders(ctx context.Context) ([]core.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category, amount_cents, quantity, order_date FROM orders ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []core.Order
	for rows.Next() {
		var (
			o       core.Order
			cat     string
			rawDate string
		)
		if err := rows.Scan(&o.ID, &cat, &o.Amount.Cents, &o.Quantity, &rawDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Category = core.Category(cat)
		o.Date, err = time.Parse(time.RFC3339, rawDate)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", rawDate, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}

// CountOrders returns the number of stored orders.
func (r *SQLiteRepository) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}
