package services

import (
	"time"

	"foodspend/internal/core"
)

// DuenessChecker decides whether a periodic summary should be emitted.
// A summary is due once per period: when the last emission happened before
// the period's current start boundary.
type DuenessChecker interface {
	IsDue(lastEmitted, now time.Time) bool
}

// WeekChecker emits once per week, after Sunday 00:00 has passed.
type WeekChecker struct{}

func (WeekChecker) IsDue(lastEmitted, now time.Time) bool {
	if lastEmitted.IsZero() {
		return true
	}
	return lastEmitted.Before(core.PeriodStart(core.Week, now))
}

// MonthChecker emits once per month, after the 1st at 00:00 has passed.
type MonthChecker struct{}

func (MonthChecker) IsDue(lastEmitted, now time.Time) bool {
	if lastEmitted.IsZero() {
		return true
	}
	return lastEmitted.Before(core.PeriodStart(core.Month, now))
}

// CheckerFor returns the dueness checker for a period.
func CheckerFor(p core.Period) DuenessChecker {
	if p == core.Month {
		return MonthChecker{}
	}
	return WeekChecker{}
}
