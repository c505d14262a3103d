package core

import "fmt"

type (
	// CategoryTotal pairs a category with its summed line totals.
	CategoryTotal struct {
		Category Category
		Total    Money
	}

	// Analysis is the full aggregate view over a sequence of orders.
	Analysis struct {
		CategoryTotals map[Category]Money
		Highest        CategoryTotal
		MonthlyTotals  map[string]Money
	}
)

// MonthKey returns the "month-year" token used for monthly totals,
// e.g. "3-2024" for March 2024. Months are 1-indexed.
func (o Order) MonthKey() string {
	return fmt.Sprintf("%d-%d", int(o.Date.Month()), o.Date.Year())
}

// Analyze folds a sequence of orders into category totals, the highest
// spending category and monthly totals. It is a pure reduction: the input
// is never mutated and the result is deterministic for a fixed sequence.
//
// Categories with no orders are absent from the maps. Ties for the highest
// category resolve to the first category encountered in input order, which
// is why the argmax scans the encounter order rather than the accumulated
// map (Go map iteration order is randomized).
func Analyze(orders []Order) Analysis {
	a := Analysis{
		CategoryTotals: make(map[Category]Money),
		MonthlyTotals:  make(map[string]Money),
	}

	var seen []Category
	for _, o := range orders {
		line := o.LineTotal()
		if _, ok := a.CategoryTotals[o.Category]; !ok {
			seen = append(seen, o.Category)
		}
		a.CategoryTotals[o.Category] = a.CategoryTotals[o.Category].Add(line)
		key := o.MonthKey()
		a.MonthlyTotals[key] = a.MonthlyTotals[key].Add(line)
	}

	for _, c := range seen {
		if total := a.CategoryTotals[c]; total.Cents > a.Highest.Total.Cents {
			a.Highest = CategoryTotal{Category: c, Total: total}
		}
	}

	return a
}
