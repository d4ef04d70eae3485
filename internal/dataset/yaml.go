package dataset

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlFile is the YAML dataset shape: a top-level skills list with
// dates kept as strings so the shared date parsing applies.
type yamlFile struct {
	Skills []yamlRecord `yaml:"skills"`
}

type yamlRecord struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// LoadYAML reads records from a YAML file with a top-level `skills:`
// list of {name, start, end} entries.
func LoadYAML(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if file.Skills == nil {
		return nil, &MalformedRecordError{Field: "skills", Message: "missing top-level skills list"}
	}

	records := make([]Record, 0, len(file.Skills))
	for i, entry := range file.Skills {
		rowNum := i + 1
		rec := Record{Name: strings.TrimSpace(entry.Name)}

		rec.Start, err = parseDate(entry.Start)
		if err != nil {
			return nil, &MalformedRecordError{Row: rowNum, Field: "start", Message: err.Error()}
		}
		rec.End, err = parseDate(entry.End)
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
