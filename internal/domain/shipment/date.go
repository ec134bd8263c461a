package shipment

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a civil date anchored at UTC midnight. Anchoring both ends of an
// interval at UTC midnight keeps elapsed-day counts stable across timezones
// and times of day.
type Date struct {
	t time.Time
}

// DateOf returns the civil date of the given instant, read in UTC.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	year, month, day := t.UTC().Date()
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string. Malformed or empty input yields the
// zero Date rather than an error; elapsed-day computations treat it as "no
// date" instead of failing.
func ParseDate(s string) Date {
	if s == "" {
		return Date{}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DateOf(t)
	}
	// Tolerate full timestamps from older stored records.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t)
	}
	return Date{}
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the UTC midnight anchor of the date.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		*d = Date{}
		return nil
	}
	*d = ParseDate(s[1 : len(s)-1])
	return nil
}

// Value implements driver.Valuer so GORM stores the date as SQL DATE / NULL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		*d = ParseDate(v)
		return nil
	case []byte:
		*d = ParseDate(string(v))
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}
