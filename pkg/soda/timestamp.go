package soda

import (
	"fmt"
	"time"
)

// FloatingTimestampLayout is the SODA floating timestamp format: no zone, no
// fractional seconds.
//
// Reference: https://dev.socrata.com/docs/datatypes/floating_timestamp.html
const FloatingTimestampLayout = "2006-01-02T15:04:05"

// ParseFloatingTimestamp parses a SODA floating timestamp. The input must
// match FloatingTimestampLayout exactly; any deviation (fractional seconds,
// zone suffix, missing component) fails with *FormatError.
//
// With a nil location the result carries the literal calendar values in UTC.
// With a non-nil location the same wall-clock fields are interpreted in that
// zone, not converted from UTC. For wall-clock times that are ambiguous or
// nonexistent around a DST transition, the mapping chosen by the zone
// database applies; callers needing stricter handling must check themselves.
func ParseFloatingTimestamp(ts string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(FloatingTimestampLayout, ts, loc)
	if err != nil {
		return time.Time{}, &FormatError{
			Reason: fmt.Sprintf("parse floating timestamp %q", ts),
			Err:    err,
		}
	}
	return t, nil
}
