// Package model contains the wire-level structs for the remote data service.
// They mirror the service's snake_case JSON contract and are converted to and
// from domain entities at the repository boundary.
package model

import (
	"fmt"
	"strings"
	"time"
)

// apiTimeLayouts are the inbound timestamp shapes the service is known to
// emit. Responses mix fractional seconds, numeric offsets with and without a
// colon, and the literal Z suffix depending on which backend path produced
// the row.
var apiTimeLayouts = []string{
	time.RFC3339Nano, // 2024-05-01T17:30:00.000+00:00 / ...Z
	time.RFC3339,     // 2024-05-01T17:30:00+00:00
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05Z07",
}

// canonicalTimeLayout is the single outbound form: RFC 3339 in UTC.
const canonicalTimeLayout = "2006-01-02T15:04:05Z07:00"

// APITime wraps time.Time with the service's tolerant decode / canonical
// encode behavior.
type APITime time.Time

// Time returns the wrapped value.
func (t APITime) Time() time.Time {
	return time.Time(t)
}

// MarshalJSON emits the canonical RFC 3339 UTC form.
func (t APITime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(canonicalTimeLayout) + `"`), nil
}

// UnmarshalJSON accepts any of the known inbound layouts.
func (t *APITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = APITime(time.Time{})

		return nil
	}

	for _, layout := range apiTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = APITime(parsed)

			return nil
		}
	}

	return fmt.Errorf("cannot decode timestamp %q", s)
}

// timeOfDayLayouts cover availability windows, which carry only a clock time
// and an offset.
var timeOfDayLayouts = []string{
	"15:04:05Z07:00",
	"15:04:05-0700",
	"15:04:05",
}

// TimeOfDay is a clock time without a date, as used by availability windows.
type TimeOfDay time.Time

// Time returns the wrapped value. The date component is meaningless.
func (t TimeOfDay) Time() time.Time {
	return time.Time(t)
}

// MarshalJSON emits HH:MM:SS with the UTC offset.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format("15:04:05Z07:00") + `"`), nil
}

// UnmarshalJSON accepts clock times with and without an offset.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	for _, layout := range timeOfDayLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = TimeOfDay(parsed)

			return nil
		}
	}

	return fmt.Errorf("cannot decode time of day %q", s)
}
