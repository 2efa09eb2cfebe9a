package model

import (
	"fmt"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// Date is a calendar date exchanged with the API. The server emits full
// RFC 3339 timestamps; users type plain dates.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{t}, nil
}

// MarshalJSON encodes the date as an RFC 3339 timestamp, matching what the
// API stores.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON accepts RFC 3339 timestamps and bare dates.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, dateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date{t}
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

// String renders the date portion only.
func (d Date) String() string {
	return d.Format(dateFormat)
}
