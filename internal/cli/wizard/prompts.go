// Package wizard provides interactive prompts for CLI commands.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// ChartSetup holds the answers collected by the init wizard.
type ChartSetup struct {
	Title       string
	DatasetPath string
	OutputDir   string
	Formats     []string
}

// PromptChartSetup walks the user through chart configuration,
// seeded with the given defaults.
func PromptChartSetup(defaults ChartSetup) (ChartSetup, error) {
	setup := defaults

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Chart Title").
				Value(&setup.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("chart title is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Dataset File (.csv, .yaml or .yml)").
				Value(&setup.DatasetPath).
				Validate(ValidateDatasetPath),

			huh.NewInput().
				Title("Output Directory").
				Value(&setup.OutputDir),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Output Formats").
				Options(
					huh.NewOption("SVG (static, embeds in a CV)", "svg").Selected(contains(defaults.Formats, "svg")),
					huh.NewOption("HTML (interactive, self-contained)", "html").Selected(contains(defaults.Formats, "html")),
				).
				Value(&setup.Formats).
				Validate(func(formats []string) error {
					if len(formats) == 0 {
						return fmt.Errorf("select at least one format")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return ChartSetup{}, fmt.Errorf("prompt cancelled: %w", err)
	}

	setup.Title = strings.TrimSpace(setup.Title)
	setup.DatasetPath = strings.TrimSpace(setup.DatasetPath)
	setup.OutputDir = strings.TrimSpace(setup.OutputDir)
	if setup.OutputDir == "" {
		setup.OutputDir = "public"
	}

	return setup, nil
}

// ValidateDatasetPath checks a dataset path answer for the supported
// file extensions.
func ValidateDatasetPath(path string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return fmt.Errorf("dataset path is required")
	}
	lower := strings.ToLower(trimmed)
	for _, ext := range []string{".csv", ".yaml", ".yml"} {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return fmt.Errorf("dataset must be a .csv, .yaml or .yml file")
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
