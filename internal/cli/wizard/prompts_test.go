package wizard

import (
	"testing"
)

func TestValidateDatasetPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"skills.csv", false},
		{"data/skills.yaml", false},
		{"skills.yml", false},
		{"SKILLS.CSV", false},
		{"  skills.csv  ", false},
		{"", true},
		{"   ", true},
		{"skills.json", true},
		{"skills", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := ValidateDatasetPath(tt.path)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateDatasetPath(%q) = nil, want error", tt.path)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateDatasetPath(%q) = %v, want nil", tt.path, err)
			}
		})
	}
}

func TestContains(t *testing.T) {
	formats := []string{"svg", "html"}
	if !contains(formats, "svg") {
		t.Error(`contains([svg html], "svg") = false, want true`)
	}
	if contains(formats, "png") {
		t.Error(`contains([svg html], "png") = true, want false`)
	}
	if contains(nil, "svg") {
		t.Error(`contains(nil, "svg") = true, want false`)
	}
}
