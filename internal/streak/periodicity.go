// Package streak computes habit streaks: the longest run of consecutive
// periods (days or ISO weeks) that each contain at least one completion.
package streak

import (
	"fmt"
	"strings"
	"time"
)

// Periodicity is the cadence a habit is expected to repeat at.
// The zero value is not a valid periodicity.
type Periodicity int

const (
	Daily Periodicity = iota + 1
	Weekly
)

// policy holds everything that differs between periodicities: how a
// timestamp maps onto its period key, and the largest gap between two
// keys that still counts as consecutive.
type policy struct {
	name   string
	bucket func(time.Time) time.Time
	span   time.Duration
}

const day = 24 * time.Hour

var policies = map[Periodicity]policy{
	Daily:  {name: "daily", bucket: dateOf, span: day},
	Weekly: {name: "weekly", bucket: isoWeekStart, span: 7 * day},
}

// ParsePeriodicity maps the stored/wire name onto a Periodicity.
func ParsePeriodicity(s string) (Periodicity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, pol := range policies {
		if pol.name == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPeriodicity, s)
}

// Names returns the wire names of all known periodicities in stable order.
func Names() []string {
	return []string{policies[Daily].name, policies[Weekly].name}
}

// Valid reports whether p is a known periodicity.
func (p Periodicity) Valid() bool {
	_, ok := policies[p]
	return ok
}

func (p Periodicity) String() string {
	if pol, ok := policies[p]; ok {
		return pol.name
	}
	return fmt.Sprintf("Periodicity(%d)", int(p))
}

// Adjacent reports whether two period keys gap apart are consecutive.
func (p Periodicity) Adjacent(gap time.Duration) bool {
	pol, ok := policies[p]
	if !ok {
		return false
	}
	return gap <= pol.span
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// isoWeekStart returns the Monday of the ISO week containing t. Two
// timestamps share a key exactly when time.ISOWeek agrees on them.
func isoWeekStart(t time.Time) time.Time {
	date := dateOf(t)
	offset := (int(date.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return date.AddDate(0, 0, -offset)
}
