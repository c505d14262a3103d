package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Week  Period = "week"
	Month Period = "month"
)

type (
	// Period selects the window for a spending summary.
	Period string

	// Category is one of a fixed, closed set of food classifications.
	Category string

	Money struct {
		Cents int64
	}

	// Order is one recorded food purchase. Orders are immutable after
	// acceptance and are never updated or deleted.
	Order struct {
		ID       string
		Category Category
		Amount   Money // unit price
		Quantity int64
		Date     time.Time
	}
)

var (
	ErrInvalidOrder     = errors.New("invalid order")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidAmount    = errors.New("invalid amount")
)

// DefaultCategories is the category set used when none is configured.
var DefaultCategories = []string{"Pizza", "Burger", "Sushi", "Pasta", "Salad", "Dessert", "Drinks"}

// CategorySet is the process-wide closed set of recognized categories.
// It is built once at startup and never mutated afterwards.
type CategorySet struct {
	names   []Category
	members map[Category]struct{}
}

// NewCategorySet builds a set from the given names, trimming blanks and
// dropping duplicates while preserving order.
func NewCategorySet(names []string) CategorySet {
	set := CategorySet{members: make(map[Category]struct{}, len(names))}
	for _, n := range names {
		c := Category(strings.TrimSpace(n))
		if c == "" {
			continue
		}
		if _, ok := set.members[c]; ok {
			continue
		}
		set.members[c] = struct{}{}
		set.names = append(set.names, c)
	}
	return set
}

// Contains reports whether c is a recognized category.
func (s CategorySet) Contains(c Category) bool {
	_, ok := s.members[c]
	return ok
}

// Names returns the categories in declaration order.
func (s CategorySet) Names() []Category {
	return append([]Category(nil), s.names...)
}

func (s CategorySet) Len() int {
	return len(s.names)
}

// IsValid reports whether p is a supported summary period.
func (p Period) IsValid() bool {
	return p == Week || p == Month
}

// LineTotal is amount * quantity for a single order.
func (o Order) LineTotal() Money {
	return Money{Cents: o.Amount.Cents * o.Quantity}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate parses a calendar date in one of the accepted layouts.
// Date-only input normalizes to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
