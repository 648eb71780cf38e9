package service

import (
	"fmt"
	"time"

	"nocturna/internal/model"
)

// Calendar answers date questions in the venue's time zone.
type Calendar struct {
	loc        *time.Location
	cutoffHour int
	now        func() time.Time
}

// NewCalendar loads the venue zone. Hours before cutoffHour count as the
// previous business day (the night is still going on).
func NewCalendar(timezone string, cutoffHour int) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	if cutoffHour < 0 || cutoffHour > 23 {
		return nil, fmt.Errorf("business day cutoff hour %d out of range", cutoffHour)
	}
	return &Calendar{loc: loc, cutoffHour: cutoffHour, now: time.Now}, nil
}

// WithClock returns a copy of the calendar reading time from now.
func (c *Calendar) WithClock(now func() time.Time) *Calendar {
	cp := *c
	cp.now = now
	return &cp
}

// Location is the venue time zone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Now is the current instant in the venue zone.
func (c *Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

// Today is the venue's calendar date.
func (c *Calendar) Today() string {
	return c.Now().Format(model.DateLayout)
}

// BusinessDay is the date of the night currently in progress.
func (c *Calendar) BusinessDay() string {
	now := c.Now()
	if now.Hour() < c.cutoffHour {
		now = now.AddDate(0, 0, -1)
	}
	return now.Format(model.DateLayout)
}

// ParseDate parses a YYYY-MM-DD date as midnight in the venue zone.
func (c *Calendar) ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(model.DateLayout, date, c.loc)
}

// DaysFromToday returns how many calendar days date lies after today (negative for the past).
func (c *Calendar) DaysFromToday(date time.Time) int {
	today, _ := c.ParseDate(c.Today())
	y1, m1, d1 := today.Date()
	y2, m2, d2 := date.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
