package domain

import (
	"strings"
	"time"
)

// Timestamp is a date-time value kept exactly as the API rendered it.
// The API mixes offsets ("-07:00") and fractional UTC ("Z") forms, so the
// text is preserved and parsed on demand.
type Timestamp string

// Time parses the timestamp as RFC 3339 (fractional seconds allowed).
func (ts Timestamp) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(string(ts)))
}

// IsZero reports whether the timestamp is empty.
func (ts Timestamp) IsZero() bool {
	return strings.TrimSpace(string(ts)) == ""
}

func (ts Timestamp) String() string {
	return string(ts)
}
