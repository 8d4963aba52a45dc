// Package calendar answers working-day questions against a holiday set and a
// weekend convention. It is a standalone capability: the assignment engine
// reads it only for reporting, never to move tasks.
package calendar

import "time"

// dateKey is the holiday set key format: the calendar date without a time
// component.
const dateKey = "2006-01-02"

// Calendar holds the non-working configuration for one deployment.
type Calendar struct {
	holidays map[string]struct{}
	weekend  map[time.Weekday]bool
}

// New builds a Calendar from ISO-formatted holiday dates (YYYY-MM-DD,
// malformed entries are ignored) and an explicit weekend. An empty weekend
// defaults to Saturday and Sunday.
func New(holidays []string, weekend ...time.Weekday) *Calendar {
	c := &Calendar{
		holidays: make(map[string]struct{}, len(holidays)),
		weekend:  make(map[time.Weekday]bool),
	}
	for _, h := range holidays {
		if t, err := time.Parse(dateKey, h); err == nil {
			c.holidays[t.Format(dateKey)] = struct{}{}
		}
	}
	if len(weekend) == 0 {
		weekend = []time.Weekday{time.Saturday, time.Sunday}
	}
	for _, d := range weekend {
		c.weekend[d] = true
	}
	return c
}

// IsWorkingDay reports whether t falls on a working day: not in the weekend
// and not a holiday. Only the calendar date of t is considered.
func (c *Calendar) IsWorkingDay(t time.Time) bool {
	if c.weekend[t.Weekday()] {
		return false
	}
	_, holiday := c.holidays[t.Format(dateKey)]
	return !holiday
}

// NextWorkingDay returns the first working day strictly after t, preserving
// the time of day. Holiday sets are finite, so the scan terminates.
func (c *Calendar) NextWorkingDay(t time.Time) time.Time {
	d := t.AddDate(0, 0, 1)
	for !c.IsWorkingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
