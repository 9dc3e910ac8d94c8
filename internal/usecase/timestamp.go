package usecase

import (
	"time"
)

// Timestamp layouts accepted on the wire. Map clients historically send
// "YYYY-MM-DD HH:MM:SS"; RFC3339 is accepted as well.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// resolveTimestamp parses an optional client timestamp, falling back to now.
// Unparseable values also fall back to now rather than failing the write.
func resolveTimestamp(ts *string) time.Time {
	if ts == nil || *ts == "" {
		return time.Now()
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *ts); err == nil {
			return t
		}
	}

	return time.Now()
}
