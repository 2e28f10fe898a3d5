// Package daily owns the calendar policy: which calendar day it is, how many
// days have passed since the epoch, and whether today's challenge is done.
//
// Every date the game records (daily index, stats lastPlayed) is computed in
// one configured time zone so the two can never disagree around midnight.
package daily

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the ISO calendar date used for keys and stats.
	DateLayout = "2006-01-02"

	DefaultEpoch    = "2024-01-01"
	DefaultTimezone = "UTC"
)

// Calendar maps instants to calendar days in a fixed location.
type Calendar struct {
	epoch civil
	loc   *time.Location
	now   func() time.Time
}

// civil is a date with no time or zone.
type civil struct {
	y int
	m time.Month
	d int
}

func civilOf(t time.Time) civil {
	y, m, d := t.Date()
	return civil{y, m, d}
}

// days counts whole days from a to b. Both are pinned to UTC midnight so DST
// transitions in the configured zone cannot produce 23h or 25h days.
func (a civil) daysUntil(b civil) int {
	ta := time.Date(a.y, a.m, a.d, 0, 0, 0, 0, time.UTC)
	tb := time.Date(b.y, b.m, b.d, 0, 0, 0, 0, time.UTC)
	return int(tb.Sub(ta).Hours() / 24)
}

// NewCalendar parses epoch (YYYY-MM-DD) and an IANA zone name. Empty values
// select DefaultEpoch and DefaultTimezone.
func NewCalendar(epoch, timezone string) (*Calendar, error) {
	if epoch == "" {
		epoch = DefaultEpoch
	}
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	e, err := time.Parse(DateLayout, epoch)
	if err != nil {
		return nil, fmt.Errorf("parse epoch %q: %w", epoch, err)
	}
	return &Calendar{epoch: civilOf(e), loc: loc, now: time.Now}, nil
}

// WithClock returns a copy of c that reads the current time from now.
func (c *Calendar) WithClock(now func() time.Time) *Calendar {
	cp := *c
	cp.now = now
	return &cp
}

// Location is the configured zone.
func (c *Calendar) Location() *time.Location { return c.loc }

// Epoch returns the epoch date as YYYY-MM-DD.
func (c *Calendar) Epoch() string {
	return time.Date(c.epoch.y, c.epoch.m, c.epoch.d, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// DateKey returns the calendar date of t in the configured zone.
func (c *Calendar) DateKey(t time.Time) string {
	return t.In(c.loc).Format(DateLayout)
}

// Today is DateKey of the current instant.
func (c *Calendar) Today() string { return c.DateKey(c.now()) }

// DayIndex is the number of calendar days between the epoch and t's date.
// Dates before the epoch yield negative values.
func (c *Calendar) DayIndex(t time.Time) int {
	return c.epoch.daysUntil(civilOf(t.In(c.loc)))
}

// DaysSinceEpoch is DayIndex of the current instant.
func (c *Calendar) DaysSinceEpoch() int { return c.DayIndex(c.now()) }

// DaysBetween returns the whole days from date a to date b (both
// YYYY-MM-DD). It is negative when b precedes a.
func DaysBetween(a, b string) (int, error) {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, err
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, err
	}
	return civilOf(ta).daysUntil(civilOf(tb)), nil
}
