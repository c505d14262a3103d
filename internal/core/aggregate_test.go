package core

import "testing"

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(nil)
	if len(a.CategoryTotals) != 0 {
		t.Fatalf("category totals should be empty, got %v", a.CategoryTotals)
	}
	if len(a.MonthlyTotals) != 0 {
		t.Fatalf("monthly totals should be empty, got %v", a.MonthlyTotals)
	}
	if a.Highest.Category != "" || a.Highest.Total.Cents != 0 {
		t.Fatalf("highest should be zero, got %+v", a.Highest)
	}
}

func TestAnalyzeTotals(t *testing.T) {
	orders := []Order{
		order("Pizza", 1000, 2, "2024-03-05"),  // 20.00
		order("Sushi", 5000, 1, "2024-03-01"),  // 50.00
		order("Pizza", 500, 1, "2024-04-02"),   // 5.00
		order("Drinks", 300, 3, "2024-03-20"),  // 9.00
	}
	a := Analyze(orders)

	if got := a.CategoryTotals["Pizza"].Cents; got != 2500 {
		t.Fatalf("Pizza total = %d, want 2500", got)
	}
	if got := a.CategoryTotals["Sushi"].Cents; got != 5000 {
		t.Fatalf("Sushi total = %d, want 5000", got)
	}
	if _, ok := a.CategoryTotals["Salad"]; ok {
		t.Fatal("zero-order categories must be absent")
	}

	if got := a.MonthlyTotals["3-2024"].Cents; got != 7900 {
		t.Fatalf("3-2024 total = %d, want 7900", got)
	}
	if got := a.MonthlyTotals["4-2024"].Cents; got != 500 {
		t.Fatalf("4-2024 total = %d, want 500", got)
	}

	if a.Highest.Category != "Sushi" || a.Highest.Total.Cents != 5000 {
		t.Fatalf("highest = %+v, want Sushi/5000", a.Highest)
	}

	// Conservation: category totals sum to the grand total.
	var sum, grand int64
	for _, m := range a.CategoryTotals {
		sum += m.Cents
	}
	for _, o := range orders {
		grand += o.LineTotal().Cents
	}
	if sum != grand {
		t.Fatalf("category totals sum %d != grand total %d", sum, grand)
	}
}

func TestAnalyzeHighestTieBreak(t *testing.T) {
	// Pizza and Sushi both end at 50.00; Pizza is encountered first.
	orders := []Order{
		order("Pizza", 2000, 1, "2024-03-01"),
		order("Sushi", 5000, 1, "2024-03-02"),
		order("Pizza", 3000, 1, "2024-03-03"),
	}
	a := Analyze(orders)
	if a.Highest.Category != "Pizza" || a.Highest.Total.Cents != 5000 {
		t.Fatalf("highest = %+v, want Pizza/5000 (first encountered wins)", a.Highest)
	}
}

func TestAnalyzeHighestMatchesMax(t *testing.T) {
	orders := []Order{
		order("Pizza", 1000, 1, "2024-03-01"),
		order("Sushi", 5000, 1, "2024-03-01"),
	}
	a := Analyze(orders)
	var max int64
	for _, m := range a.CategoryTotals {
		if m.Cents > max {
			max = m.Cents
		}
	}
	if a.Highest.Total.Cents != max {
		t.Fatalf("highest %d != max %d", a.Highest.Total.Cents, max)
	}
	if a.Highest.Category != "Sushi" {
		t.Fatalf("highest = %+v, want Sushi", a.Highest)
	}
}

func TestMonthKey(t *testing.T) {
	o := order("Pizza", 1000, 1, "2024-03-05")
	if got := o.MonthKey(); got != "3-2024" {
		t.Fatalf("MonthKey = %q, want 3-2024", got)
	}
	o = order("Pizza", 1000, 1, "2023-12-31")
	if got := o.MonthKey(); got != "12-2023" {
		t.Fatalf("MonthKey = %q, want 12-2023", got)
	}
}
