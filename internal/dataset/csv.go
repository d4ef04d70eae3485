package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadCSV reads records from a CSV file with a header row containing
// the columns name, start and end. Header matching is
// case-insensitive and column order does not matter; extra columns
// are ignored.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, &MalformedRecordError{Field: "header", Message: "file is empty"}
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 1
		rec := Record{Name: strings.TrimSpace(row[cols["name"]])}

		rec.Start, err = parseDate(row[cols["start"]])
		if err != nil {
			return nil, &MalformedRecordError{Row: rowNum, Field: "start", Message: err.Error()}
		}
		rec.End, err = parseDate(row[cols["end"]])
		if err != nil {
			return nil, &MalformedRecordError{Row: rowNum, Field: "end", Message: err.Error()}
		}

		if err := validate(rec, rowNum); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// headerIndex maps the required column names to their positions in
// the header row.
func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "start", "end"} {
		if _, ok := cols[required]; !ok {
			return nil, &MalformedRecordError{
				Field:   required,
				Message: fmt.Sprintf("missing column %q in header", required),
			}
		}
	}
	return cols, nil
}
