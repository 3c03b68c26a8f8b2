package runtime

import (
	"strings"
	"time"
)

// iso8601Layouts covers the date shapes the venue emits, most specific first.
var iso8601Layouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISO8601 parses an ISO-8601-like venue date string into epoch
// milliseconds. It returns (0, false) for empty or unparseable input; callers
// must treat that as an absent timestamp, never as the epoch.
func ParseISO8601(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	for _, layout := range iso8601Layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UnixMilli(), true
		}
	}
	return 0, false
}
