// Package localtime converts a user-chosen calendar date and optional
// clock time into an offset-qualified ISO-8601 timestamp. The emitted
// instant is exactly the wall-clock moment the user selected, carrying
// the UTC offset in effect in the given zone on that date.
package localtime

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
	// ISO-8601 with a mandatory signed offset. The local components are
	// kept as-is; the value is never re-expressed in UTC.
	outLayout = "2006-01-02T15:04:05-07:00"
)

// Encode combines date ("YYYY-MM-DD") and an optional time of day
// ("HH:MM", empty means midnight) into "YYYY-MM-DDTHH:MM:SS±HH:MM" in
// loc. The offset is the one active in loc at the selected date, so
// daylight-saving transitions produce the correct, date-dependent
// offset rather than the offset in effect now.
func Encode(date, tod string, loc *time.Location) (string, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}

	hour, minute := 0, 0
	if tod != "" {
		t, err := time.Parse(timeLayout, tod)
		if err != nil {
			return "", fmt.Errorf("invalid time %q: %w", tod, err)
		}
		hour, minute = t.Hour(), t.Minute()
	}

	at := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)
	return at.Format(outLayout), nil
}

// EncodeLocal encodes in the process's local zone, the interpretation
// that matches the user's own wall clock.
func EncodeLocal(date, tod string) (string, error) {
	return Encode(date, tod, time.Local)
}
