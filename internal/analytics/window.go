// Package analytics computes spending breakdowns and insights over expense records.
package analytics

import (
	"time"

	"mannwallet/internal/models"
)

// Window selects the recency window for an analysis pass.
type Window string

const (
	WindowAll     Window = "all"
	WindowToday   Window = "today"
	WindowWeek    Window = "this-week"
	WindowMonth   Window = "this-month"
	WindowQuarter Window = "this-quarter"
)

// Windows lists all valid windows in declaration order.
var Windows = []Window{WindowAll, WindowToday, WindowWeek, WindowMonth, WindowQuarter}

// IsValid reports whether the window token is one of the fixed set.
func (w Window) IsValid() bool {
	for _, v := range Windows {
		if w == v {
			return true
		}
	}
	return false
}

// days returns the day threshold for the window. WindowAll and WindowToday
// are handled separately by Filter.
func (w Window) days() int {
	switch w {
	case WindowWeek:
		return 7
	case WindowMonth:
		return 30
	case WindowQuarter:
		return 90
	default:
		return 0
	}
}

// Filter returns the subset of records falling within the window relative to
// now. It is a pure function of (records, window, now); an unknown window
// behaves like WindowAll. The input slice is never mutated.
func Filter(records []models.ExpenseRecord, window Window, now time.Time) []models.ExpenseRecord {
	if window == WindowAll || !window.IsValid() {
		out := make([]models.ExpenseRecord, len(records))
		copy(out, records)
		return out
	}

	out := make([]models.ExpenseRecord, 0, len(records))
	for _, r := range records {
		if inWindow(r.Timestamp, window, now) {
			out = append(out, r)
		}
	}
	return out
}

func inWindow(ts time.Time, window Window, now time.Time) bool {
	if window == WindowToday {
		y1, m1, d1 := ts.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
	age := now.Sub(ts)
	return age <= time.Duration(window.days())*24*time.Hour
}

// WithinDays reports whether ts is at most days back from now. Future
// timestamps count as within the window.
func WithinDays(ts, now time.Time, days int) bool {
	return now.Sub(ts) <= time.Duration(days)*24*time.Hour
}
