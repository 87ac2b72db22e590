package ingest

import (
	"strings"
	"time"
)

// dateLayouts is the fallback chain for the timestamp columns. Sheet
// exports mix ISO timestamps with regional spreadsheet formats depending on
// who exported the file last.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"02-Jan-2006",
}

// ParseTimestamp parses a sheet timestamp through the layout chain.
// Unparseable values map to the zero time, the documented sentinel: the
// analytics core then drops the affected gap instead of the whole row.
func ParseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
