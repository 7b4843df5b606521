package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/attendance/internal/common"
)

const (
	// TimeLayout is the stored form of every timestamp: local wall-clock time
	// without zone, the same text SQLite's datetime() produces.
	TimeLayout = "2006-01-02 15:04:05"
	// DateLayout is the date component used by filters and daily stats.
	DateLayout = "2006-01-02"
)

var acceptedLayouts = []string{
	TimeLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Timestamp is a local date-time kept in TimeLayout form.
type Timestamp string

// NewTimestamp formats t in its own location.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Format(TimeLayout))
}

// ParseTimestamp normalizes operator input into TimeLayout form.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return NewTimestamp(t), nil
		}
	}
	return "", fmt.Errorf("%w: timestamp %q must look like %s", common.ErrInvalidInput, s, TimeLayout)
}

// Date returns the "YYYY-MM-DD" part.
func (t Timestamp) Date() string {
	d, _, _ := strings.Cut(string(t), " ")
	return d
}

// Clock returns the time-of-day part, or an empty string.
func (t Timestamp) Clock() string {
	_, c, _ := strings.Cut(string(t), " ")
	return c
}

// Scan accepts text as well as time.Time, which the sqlite driver produces
// for columns declared DATETIME.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = ""
	case string:
		*t = Timestamp(v)
	case []byte:
		*t = Timestamp(v)
	case time.Time:
		*t = Timestamp(v.Format(TimeLayout))
	default:
		return fmt.Errorf("unsupported timestamp source %T", src)
	}
	return nil
}

// Value stores the timestamp as text.
func (t Timestamp) Value() (driver.Value, error) {
	return string(t), nil
}
