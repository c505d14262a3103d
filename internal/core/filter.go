package core

import (
	"fmt"
	"strings"
	"time"
)

// ListFilter holds the optional predicates for listing orders. Zero values
// mean "no filtering".
type ListFilter struct {
	Category  string
	StartDate string
	EndDate   string
}

// FilterOrders applies the optional category and date-range predicates,
// preserving insertion order. The input slice is never mutated.
//
// An unrecognized category is treated as absent rather than an error.
// A date range only applies when both endpoints are present; a single
// endpoint is ignored. When both endpoints are present and either fails to
// parse, the whole operation fails with ErrInvalidDateRange. A range whose
// start is after its end matches nothing.
func FilterOrders(orders []Order, f ListFilter, categories CategorySet) ([]Order, error) {
	category := Category(strings.TrimSpace(f.Category))
	byCategory := category != "" && categories.Contains(category)

	start, end, byRange, err := parseRange(f.StartDate, f.EndDate)
	if err != nil {
		return nil, err
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if byCategory && o.Category != category {
			continue
		}
		if byRange && (o.Date.Before(start) || o.Date.After(end)) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func parseRange(startDate, endDate string) (start, end time.Time, ok bool, err error) {
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)
	if startDate == "" || endDate == "" {
		// A single endpoint is not enough to form a range.
		return start, end, false, nil
	}
	start, err = ParseDate(startDate)
	if err != nil {
		return start, end, false, fmt.Errorf("%w: bad start date %q", ErrInvalidDateRange, startDate)
	}
	end, err = ParseDate(endDate)
	if err != nil {
		return start, end, false, fmt.Errorf("%w: bad end date %q", ErrInvalidDateRange, endDate)
	}
	return start, end, true, nil
}
