package core

import "time"

// PeriodSummary is the reduction of all orders dated on or after a period
// boundary: how many there were and what they cost in total.
type PeriodSummary struct {
	Period Period
	Total  Money
	Count  int
}

// PeriodStart computes the start boundary of the current week or month
// relative to ref. Weeks start Sunday at 00:00; months start on the 1st at
// 00:00. The boundary keeps ref's location.
func PeriodStart(p Period, ref time.Time) time.Time {
	switch p {
	case Week:
		day := ref.AddDate(0, 0, -int(ref.Weekday()))
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, ref.Location())
	case Month:
		return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	default:
		return time.Time{}
	}
}

// Summarize reduces the orders dated on or after the period boundary to a
// count and total. There is no upper bound: future-dated orders already
// stored are included.
func Summarize(orders []Order, p Period, ref time.Time) PeriodSummary {
	boundary := PeriodStart(p, ref)
	s := PeriodSummary{Period: p}
	for _, o := range orders {
		if o.Date.Before(boundary) {
			continue
		}
		s.Total = s.Total.Add(o.LineTotal())
		s.Count++
	}
	return s
}
