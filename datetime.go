package cxf

import (
	"fmt"
	"time"
)

// dateTimeLayout identifies which ISO-8601 shape a DateTime was parsed from,
// so encoding reproduces the same shape.
type dateTimeLayout int

const (
	layoutZoned dateTimeLayout = iota // 2006-01-02T15:04:05[.fff]Z07:00
	layoutLocal                       // 2006-01-02T15:04:05[.fff] (no zone)
	layoutDate                        // 2006-01-02
)

// DateTime is an ISO-8601 calendar timestamp as CxF3 uses it: either a full
// timestamp (with or without a zone offset) or a date-only value. The parsed
// shape is retained so a decoded value re-encodes in its original form.
type DateTime struct {
	Time   time.Time
	layout dateTimeLayout
}

// Date constructs a date-only DateTime.
func Date(year int, month time.Month, day int) DateTime {
	return DateTime{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), layout: layoutDate}
}

// Timestamp constructs a zoned DateTime from t.
func Timestamp(t time.Time) DateTime {
	return DateTime{Time: t, layout: layoutZoned}
}

// ParseDateTime accepts the ISO-8601 forms CxF3 documents carry: a zoned
// timestamp, a zoneless timestamp, or a plain date. Fractional seconds are
// optional in both timestamp forms.
func ParseDateTime(s string) (DateTime, error) {
	if t, err := time.Parse("2006-01-02T15:04:05.999999999Z07:00", s); err == nil {
		return DateTime{Time: t, layout: layoutZoned}, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", s); err == nil {
		return DateTime{Time: t, layout: layoutLocal}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return DateTime{Time: t, layout: layoutDate}, nil
	}
	return DateTime{}, fmt.Errorf("invalid ISO-8601 date/time %q", s)
}

// String renders the canonical text form for the value's shape. Trailing zero
// fractional digits are trimmed, so the output re-parses to an identical
// DateTime.
func (d DateTime) String() string {
	switch d.layout {
	case layoutDate:
		return d.Time.Format("2006-01-02")
	case layoutLocal:
		return d.Time.Format("2006-01-02T15:04:05.999999999")
	default:
		return d.Time.Format("2006-01-02T15:04:05.999999999Z07:00")
	}
}

// IsDateOnly reports whether the value carries a date without a time of day.
func (d DateTime) IsDateOnly() bool { return d.layout == layoutDate }

// Equal reports whether two DateTimes denote the same instant in the same
// textual shape.
func (d DateTime) Equal(o DateTime) bool {
	return d.layout == o.layout && d.Time.Equal(o.Time)
}

// MarshalJSON emits the canonical string form (used by the codec package).
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string in any of the forms ParseDateTime
// accepts.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid JSON date/time %s", b)
	}
	parsed, err := ParseDateTime(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
