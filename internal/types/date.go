// Package types implements special types for the expense backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the textual format for dates, e.g. 2023-01-15.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in yyyy-MM-dd format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

// Year returns the year of the date.
func (d Date) Year() int {
	return time.Time(d).Year()
}

// Month returns the month of the year, 1 to 12.
func (d Date) Month() int {
	return int(time.Time(d).Month())
}

// Day returns the day of the month.
func (d Date) Day() int {
	return time.Time(d).Day()
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Equal reports whether d and e represent the same calendar date.
func (d Date) Equal(e Date) bool {
	return d.String() == e.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

var plainDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected as "2006-01-02". RFC3339 timestamps are accepted
// and truncated to their date.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	pattern := time.RFC3339
	if plainDate.MatchString(value) {
		pattern = DateLayout
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	// Some drivers hand out DATE columns as text
	switch v := value.(type) {
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	}

	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	if err != nil {
		return err
	}

	*d = DateOf(nullTime.Time)
	return nil
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(DateLayout) {
		s = s[:len(DateLayout)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	return time.Time(NewDate(d.Year(), time.Month(d.Month()), d.Day())), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}
