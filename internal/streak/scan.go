package streak

import (
	"slices"
	"strings"
	"time"
)

// TimestampLayout is the layout completions are stored in. Fixed-width
// fractional seconds keep lexical order equal to chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// timestampLayouts are tried in order by ParseTimestamp. Every date-time
// layout is accepted with either "T" or a space as the separator.
var timestampLayouts = append(withSpaceSeparator(
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15Z0700",
	"2006-01-02T15",
), time.DateOnly)

func withSpaceSeparator(layouts ...string) []string {
	out := make([]string, 0, 2*len(layouts))
	for _, l := range layouts {
		out = append(out, l, strings.Replace(l, "T", " ", 1))
	}
	return out
}

// ParseTimestamp parses an ISO-8601 date or date-time. Values with an
// offset are converted to UTC; values without one are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	value := strings.TrimSpace(s)
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &ParseError{Value: s, Err: firstErr}
}

// Normalize maps raw timestamps onto their period keys, dropping
// duplicates, and returns the keys in ascending order.
func (p Periodicity) Normalize(timestamps []string) ([]time.Time, error) {
	pol, ok := policies[p]
	if !ok {
		return nil, ErrInvalidPeriodicity
	}

	seen := make(map[time.Time]struct{}, len(timestamps))
	keys := make([]time.Time, 0, len(timestamps))
	for _, raw := range timestamps {
		t, err := ParseTimestamp(raw)
		if err != nil {
			return nil, err
		}
		key := pol.bucket(t)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	slices.SortFunc(keys, func(a, b time.Time) int { return a.Compare(b) })
	return keys, nil
}

// Scan returns the length of the longest run of adjacent keys. keys must
// be ascending and distinct.
func Scan(keys []time.Time, adjacent func(gap time.Duration) bool) int {
	if len(keys) == 0 {
		return 0
	}
	current, best := 1, 1
	for i := 1; i < len(keys); i++ {
		if adjacent(keys[i].Sub(keys[i-1])) {
			current++
			best = max(best, current)
		} else {
			current = 1
		}
	}
	return best
}

// Longest computes the longest streak of raw timestamps under p.
func Longest(timestamps []string, p Periodicity) (int, error) {
	if !p.Valid() {
		return 0, ErrInvalidPeriodicity
	}
	if len(timestamps) == 0 {
		return 0, nil
	}
	keys, err := p.Normalize(timestamps)
	if err != nil {
		return 0, err
	}
	return Scan(keys, p.Adjacent), nil
}
