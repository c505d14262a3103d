package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Candidate is a raw order submission before validation. All fields arrive
// as strings so the validator owns every parse decision.
type Candidate struct {
	Category string
	Amount   string
	Quantity string
	Date     string
}

// ValidateCandidate checks a candidate against the category set and returns
// the normalized order on success. The returned order carries no ID; the
// caller assigns one at acceptance time.
//
// Every failure is the single ErrInvalidOrder kind. The wrapped detail text
// names the failing field for diagnostics but callers must branch on
// errors.Is(err, ErrInvalidOrder) only.
func ValidateCandidate(c Candidate, categories CategorySet) (Order, error) {
	category := Category(strings.TrimSpace(c.Category))
	if category == "" {
		return Order{}, fmt.Errorf("%w: missing category", ErrInvalidOrder)
	}
	if !categories.Contains(category) {
		return Order{}, fmt.Errorf("%w: unrecognized category %q", ErrInvalidOrder, category)
	}

	cents, err := ParseDecimalToCents(c.Amount)
	if err != nil {
		return Order{}, fmt.Errorf("%w: amount must be a positive number", ErrInvalidOrder)
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(c.Quantity), 10, 64)
	if err != nil || quantity <= 0 {
		return Order{}, fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidOrder)
	}

	date, err := ParseDate(c.Date)
	if err != nil {
		return Order{}, fmt.Errorf("%w: unparseable date", ErrInvalidOrder)
	}

	return Order{
		Category: category,
		Amount:   Money{Cents: cents},
		Quantity: quantity,
		Date:     date,
	}, nil
}
