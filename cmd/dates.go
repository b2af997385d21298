package cmd

import (
	"fmt"
	"time"
)

// Accepted ISO-8601 layouts for the -start and -end flags, most specific
// first.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDateTime parses an ISO-8601 datetime flag. Layouts without an offset
// are read in local time, the way the range defaults are produced.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as an ISO-8601 datetime", value)
}
