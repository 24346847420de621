package cxf_test

import (
	"testing"
	"time"

	cxf "github.com/colour-science/cxf-go"
)

func TestParseDateTimeForms(t *testing.T) {
	cases := []struct {
		in       string
		dateOnly bool
	}{
		{"2024-03-15T10:30:00Z", false},
		{"2024-03-15T10:30:00+02:00", false},
		{"2024-03-15T10:30:00.25Z", false},
		{"2024-03-15T10:30:00", false},
		{"2024-03-15T10:30:00.123456", false},
		{"2024-03-15", true},
	}
	for _, tc := range cases {
		d, err := cxf.ParseDateTime(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if d.IsDateOnly() != tc.dateOnly {
			t.Fatalf("%q: IsDateOnly = %v", tc.in, d.IsDateOnly())
		}
		if got := d.String(); got != tc.in {
			t.Fatalf("%q: String = %q", tc.in, got)
		}
	}
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "15/03/2024", "2024-13-40", "yesterday", "2024-03-15T25:00:00Z"} {
		if _, err := cxf.ParseDateTime(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestDateTimeStringTrimsTrailingZeros(t *testing.T) {
	d, err := cxf.ParseDateTime("2024-03-15T10:30:00.500Z")
	if err != nil {
		t.Fatal(err)
	}
	if got := d.String(); got != "2024-03-15T10:30:00.5Z" {
		t.Fatalf("String = %q", got)
	}
	// the trimmed form re-parses to the same value
	d2, err := cxf.ParseDateTime(d.String())
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(d2) {
		t.Fatalf("trimmed form is not stable")
	}
}

func TestDateTimeEqualDistinguishesShape(t *testing.T) {
	date, err := cxf.ParseDateTime("2024-03-15")
	if err != nil {
		t.Fatal(err)
	}
	zoned, err := cxf.ParseDateTime("2024-03-15T00:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if date.Equal(zoned) {
		t.Fatalf("date-only and zoned midnight must not compare equal")
	}
	if !date.Time.Equal(zoned.Time) {
		t.Fatalf("instants should match")
	}
}

func TestDateTimeJSONRoundTrip(t *testing.T) {
	for _, in := range []string{"2024-03-15T10:30:00Z", "2024-03-15T10:30:00.25", "2024-03-15"} {
		d, err := cxf.ParseDateTime(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		b, err := d.MarshalJSON()
		if err != nil {
			t.Fatalf("%q: marshal: %v", in, err)
		}
		var back cxf.DateTime
		if err := back.UnmarshalJSON(b); err != nil {
			t.Fatalf("%q: unmarshal: %v", in, err)
		}
		if !d.Equal(back) {
			t.Fatalf("%q: round trip changed value or shape", in)
		}
	}
	var d cxf.DateTime
	for _, bad := range []string{`"yesterday"`, `42`, `""`} {
		if err := d.UnmarshalJSON([]byte(bad)); err == nil {
			t.Fatalf("%s: expected error", bad)
		}
	}
}

func TestDateTimeConstructors(t *testing.T) {
	d := cxf.Date(2024, time.March, 15)
	if !d.IsDateOnly() || d.String() != "2024-03-15" {
		t.Fatalf("Date = %q", d.String())
	}
	ts := cxf.Timestamp(time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC))
	if ts.String() != "2024-03-15T10:30:00Z" {
		t.Fatalf("Timestamp = %q", ts.String())
	}
}
