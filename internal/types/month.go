// Package types implements special types for the kakeibo backend.
package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Month is a month in a specific year.
//
// It identifies a month record and is serialized as "YYYY-MM", which
// sorts lexicographically in calendar order.
type Month time.Time

var japaneseMonth = regexp.MustCompile(`(\d{4})年(\d{1,2})月`)

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// ParseJapanese parses a month written as "2025年10月". Text around the
// date is ignored, the month may have one or two digits.
func ParseJapanese(s string) (Month, error) {
	match := japaneseMonth.FindStringSubmatch(s)
	if match == nil {
		return Month{}, fmt.Errorf("%q does not contain a month in 2006年1月 format", s)
	}

	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("%d is not a valid month", month)
	}

	return NewMonth(year, time.Month(month)), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Japanese returns the month formatted as "2006年01月".
func (m Month) Japanese() string {
	return fmt.Sprintf("%d年%02d月", time.Time(m).Year(), time.Time(m).Month())
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Month returns the month of the year.
func (m Month) Month() time.Month {
	return time.Time(m).Month()
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// "YYYY-MM" is the canonical format. "YYYY-MM-DD" and RFC3339 timestamps
// are accepted too, everything but the year and month is then ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := time.RFC3339
	switch len(value) {
	case len("2006-01"):
		pattern = "2006-01"
	case len("2006-01-02"):
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = MonthOf(t)
	return nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Next returns the month after m.
func (m Month) Next() Month {
	return m.AddDate(0, 1)
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}
