package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// Date is a calendar date decoded from either YYYY-MM-DD or RFC 3339.
// The zero value means the date is absent.
type Date struct {
	time.Time
	instant bool // decoded from a timestamp; the calendar day depends on the reader's zone
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD first and RFC 3339 second.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return Date{Time: t, instant: true}, nil
}

// CalendarDay returns the calendar day of d as a plain date. A date decoded from a timestamp is
// read in loc; a date given as YYYY-MM-DD keeps the day it was written with.
func (d Date) CalendarDay(loc *time.Location) Date {
	if !d.IsSet() {
		return Date{}
	}
	t := d.Time
	if d.instant && loc != nil {
		t = t.In(loc)
	}
	y, m, day := t.Date()
	return NewDate(y, m, day)
}

// IsSet reports whether the date carries a value.
func (d Date) IsSet() bool {
	return !d.Time.IsZero()
}

// String renders the date as YYYY-MM-DD, or an empty string when absent.
func (d Date) String() string {
	if !d.IsSet() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON renders absent dates as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON accepts null, "", YYYY-MM-DD and RFC 3339.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
