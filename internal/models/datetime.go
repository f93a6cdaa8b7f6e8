package models

import (
	"errors"
	"time"
)

// Wire format for every timestamp the API emits. Zoneless, second precision,
// so a value submitted as "2025-09-16T10:30:00" reads back byte-identical.
const DateTimeLayout = "2006-01-02T15:04:05"

// Accepted input layouts, tried in order. Offsets and bare dates are
// tolerated the way the clients already send them.
var dateTimeLayouts = []string{
	DateTimeLayout,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

var ErrBadDateTime = errors.New("unparseable date_time")

// ParseDateTime parses an ISO-8601 timestamp such as 2025-09-16T10:30:00.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		// ParseInLocation keeps the submitted wall clock intact so the
		// value survives the MySQL DATETIME round trip unchanged.
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDateTime
}

// FormatDateTime renders a timestamp in the wire format.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
