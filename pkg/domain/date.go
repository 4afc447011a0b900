package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

const (
	// StorageLayout is the day-first layout used for stored and exchanged dates
	StorageLayout = "02/01/2006"
	// QueryLayout is the ISO layout used in query parameters and cursors
	QueryLayout = "2006-01-02"

	secondsPerDay = 24 * 60 * 60
)

var (
	storagePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	queryPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Date is a calendar day without time component.
// The zero value is not a valid date; use IsZero to detect it.
type Date struct {
	t time.Time // UTC midnight
}

// NewDate makes a Date from year, month and day, normalizing overflow the way time.Date does
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// DateFromDays is the inverse of Date.Days
func DateFromDays(days int64) Date {
	return Date{t: time.Unix(days*secondsPerDay, 0).UTC()}
}

// ParseStorage parses a DD/MM/YYYY date, rejecting impossible calendar dates
func ParseStorage(s string) (Date, error) {
	return parseWith(s, storagePattern, StorageLayout, "DD/MM/YYYY")
}

// ParseQuery parses a YYYY-MM-DD date, rejecting impossible calendar dates
func ParseQuery(s string) (Date, error) {
	return parseWith(s, queryPattern, QueryLayout, "YYYY-MM-DD")
}

func parseWith(s string, pattern *regexp.Regexp, layout, human string) (Date, error) {
	if !pattern.MatchString(s) {
		return Date{}, fmt.Errorf("%w: %q must be in %s format", ErrInvalidDate, s, human)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// ISOToStorage converts YYYY-MM-DD into DD/MM/YYYY
func ISOToStorage(iso string) (string, error) {
	d, err := ParseQuery(iso)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// StorageToISO converts DD/MM/YYYY into YYYY-MM-DD
func StorageToISO(s string) (string, error) {
	d, err := ParseStorage(s)
	if err != nil {
		return "", err
	}
	return d.ISO(), nil
}

// IsValidStorageDate reports whether s is a real DD/MM/YYYY date
func IsValidStorageDate(s string) bool {
	_, err := ParseStorage(s)
	return err == nil
}

// String returns the date in storage format
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(StorageLayout)
}

// ISO returns the date in query format
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(QueryLayout)
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool { return d.t.IsZero() }

// Days returns the number of days since 1970-01-01, the numeric key used for ordering
func (d Date) Days() int64 { return d.t.Unix() / secondsPerDay }

// AddDays returns the date n days later (earlier for negative n)
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o
func (d Date) Compare(o Date) int {
	switch a, b := d.Days(), o.Days(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than o
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Equal reports whether both dates are the same day
func (d Date) Equal(o Date) bool { return d.Compare(o) == 0 }

// Time returns the date as UTC midnight
func (d Date) Time() time.Time { return d.t }

// MarshalJSON encodes the date in storage format
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a storage format date
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: date must be a string", ErrInvalidDate)
	}
	parsed, err := ParseStorage(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan reads a storage format date from a TEXT column
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		parsed, err := ParseStorage(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	}
	return fmt.Errorf("%w: can't scan %T into date", ErrInvalidDate, src)
}

// Value writes the date in storage format
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}
