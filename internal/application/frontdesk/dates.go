package frontdesk

import (
	"fmt"
	"time"
)

// DateFormat is the canonical calendar-date layout. Every same-day and
// in-range check in this package compares canonical strings; lexicographic
// order on YYYY-MM-DD is date-order-correct.
const DateFormat = "2006-01-02"

// Canonical formats t as a canonical date string under local calendar
// semantics. Two times on the same local day are equal after Canonical even
// if their UTC days differ.
func Canonical(t time.Time) string {
	return t.In(time.Local).Format(DateFormat)
}

// NormalizeDate coerces a backend or query date string to canonical form.
// Accepts YYYY-MM-DD (returned unchanged) and RFC 3339 timestamps (reduced
// to their local calendar day).
// PRE: none
// POST: result is canonical, or an error for unparseable input
func NormalizeDate(s string) (string, error) {
	if _, err := time.ParseInLocation(DateFormat, s, time.Local); err == nil {
		return s, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Canonical(t), nil
	}
	return "", fmt.Errorf("unrecognised date %q (want YYYY-MM-DD or RFC 3339)", s)
}

// ParseCanonical parses a canonical date string into a local midnight time.
func ParseCanonical(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}
