package datemath

import (
	"fmt"
	"strings"
	"time"
)

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// Window is a half-open [From, To) interval. A zero Window means unbounded.
type Window struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether the window is unbounded.
func (w Window) IsZero() bool {
	return w.From.IsZero() && w.To.IsZero()
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.IsZero() {
		return true
	}
	return !t.Before(w.From) && t.Before(w.To)
}

// Window returns the interval for a named period relative to now.
//   - today: [midnight, +1 day)
//   - week:  [Monday 00:00, +7 days)
//   - month: [1st 00:00, next 1st)
//   - all:   unbounded
func (p *Parser) Window(period string, now time.Time) (Window, error) {
	today := p.startOfDay(now)

	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", PeriodToday:
		return Window{From: today, To: today.AddDate(0, 0, 1)}, nil
	case PeriodWeek:
		offset := (int(today.Weekday()) + 6) % 7 // days since Monday
		start := today.AddDate(0, 0, -offset)
		return Window{From: start, To: start.AddDate(0, 0, 7)}, nil
	case PeriodMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, p.location)
		return Window{From: start, To: start.AddDate(0, 1, 0)}, nil
	case PeriodAll:
		return Window{}, nil
	}

	return Window{}, fmt.Errorf("unknown period: %q", period)
}

// Month returns the interval covering the given calendar month.
func (p *Parser) Month(year int, month time.Month) (Window, error) {
	if month < time.January || month > time.December {
		return Window{}, fmt.Errorf("invalid month: %d", month)
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, p.location)
	return Window{From: start, To: start.AddDate(0, 1, 0)}, nil
}
