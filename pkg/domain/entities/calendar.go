package entities

import (
	"sort"
	"time"
)

// DateLayout is the serialization format for every date leaving the planner
const DateLayout = "2006-01-02"

// Date truncates t to a UTC calendar date
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Calendar is the ordered, immutable sequence of business days for a planning horizon
type Calendar struct {
	days  []time.Time
	index map[string]int
}

// NewCalendar builds a calendar from the given days. Days are truncated to dates,
// deduplicated and sorted chronologically.
func NewCalendar(days []time.Time) (*Calendar, error) {
	seen := make(map[string]struct{}, len(days))
	unique := make([]time.Time, 0, len(days))
	for _, d := range days {
		d = Date(d)
		key := d.Format(DateLayout)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, d)
	}

	if len(unique) == 0 {
		return nil, ErrCalendarEmpty
	}

	sort.Slice(unique, func(i, j int) bool { return unique[i].Before(unique[j]) })

	index := make(map[string]int, len(unique))
	for i, d := range unique {
		index[d.Format(DateLayout)] = i
	}

	return &Calendar{days: unique, index: index}, nil
}

// Len returns the number of business days in the horizon
func (c *Calendar) Len() int {
	return len(c.days)
}

// Position returns the zero-based index of d in the calendar. A date that is not
// a business day reports false.
func (c *Calendar) Position(d time.Time) (int, bool) {
	i, ok := c.index[Date(d).Format(DateLayout)]
	return i, ok
}

// Contains reports whether d is a business day of this calendar
func (c *Calendar) Contains(d time.Time) bool {
	_, ok := c.Position(d)
	return ok
}

// DayAt returns the business day at index i
func (c *Calendar) DayAt(i int) (time.Time, bool) {
	if i < 0 || i >= len(c.days) {
		return time.Time{}, false
	}
	return c.days[i], true
}

// Start returns the first business day of the horizon
func (c *Calendar) Start() time.Time {
	return c.days[0]
}

// End returns the last business day of the horizon
func (c *Calendar) End() time.Time {
	return c.days[len(c.days)-1]
}

// Days returns a copy of the business-day sequence
func (c *Calendar) Days() []time.Time {
	out := make([]time.Time, len(c.days))
	copy(out, c.days)
	return out
}

// PrepDay walks leadTimeDays business days back from d. It returns nil when d is
// not a business day or when the walk leaves the start of the horizon.
func (c *Calendar) PrepDay(d time.Time, leadTimeDays int) *time.Time {
	pos, ok := c.Position(d)
	if !ok {
		return nil
	}
	day, ok := c.DayAt(pos - leadTimeDays)
	if !ok {
		return nil
	}
	return &day
}
