// Package dataset loads skill interval records from CSV or YAML
// files. Loading is strict: the first malformed record aborts the
// load, so a garbled row can never silently corrupt the chart.
package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Record is one skill interval as read from the input file. Name
// keeps any leading ordinal prefix; display cleanup happens later in
// the layout stage.
type Record struct {
	Name  string
	Start time.Time
	End   time.Time
}

// MalformedRecordError reports a record that cannot be charted:
// missing field, unparseable date, or an end before its start.
type MalformedRecordError struct {
	Row     int // 1-based data row number, 0 when the file itself is at fault
	Field   string
	Message string
}

func (e *MalformedRecordError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("malformed dataset: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("malformed record at row %d: %s - %s", e.Row, e.Field, e.Message)
}

// Load reads records from path, choosing the loader by file
// extension: .yaml/.yml uses the YAML loader, everything else is
// treated as CSV.
func Load(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return LoadCSV(path)
	}
}

// dateLayouts are tried in order when parsing a date field. Partial
// dates snap to the start of their period.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC3339,
}

// parseDate parses s against the accepted layouts in UTC.
func parseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", trimmed)
}

// validate checks one record's invariants and returns a
// *MalformedRecordError naming the offending field.
func validate(rec Record, row int) error {
	if strings.TrimSpace(rec.Name) == "" {
		return &MalformedRecordError{Row: row, Field: "name", Message: "name is required"}
	}
	if rec.Start.IsZero() {
		return &MalformedRecordError{Row: row, Field: "start", Message: "start date is required"}
	}
	if rec.End.IsZero() {
		return &MalformedRecordError{Row: row, Field: "end", Message: "end date is required"}
	}
	if rec.End.Before(rec.Start) {
		return &MalformedRecordError{
			Row:   row,
			Field: "end",
			Message: fmt.Sprintf("end %s is before start %s",
				rec.End.Format("2006-01-02"), rec.Start.Format("2006-01-02")),
		}
	}
	return nil
}
