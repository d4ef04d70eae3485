package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/andywolf/skillchart/internal/chart"
	"github.com/andywolf/skillchart/internal/config"
	"github.com/andywolf/skillchart/internal/dataset"
	"github.com/andywolf/skillchart/internal/render"
	"github.com/andywolf/skillchart/internal/timescale"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the skills timeline",
	Long: `Render the skills timeline chart from the configured dataset.

This loads the dataset, plans the chart layout against a single
reference date, renders every requested format in memory and only then
writes the artifacts to the output directory.

Example:
  skillchart render --data skills.csv --out-dir public --formats svg,html`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("data", "", "Dataset file (.csv, .yaml or .yml)")
	renderCmd.Flags().String("out-dir", "", "Output directory for artifacts")
	renderCmd.Flags().StringSlice("formats", nil, "Output formats (svg, html)")
	renderCmd.Flags().String("title", "", "Chart title")
	renderCmd.Flags().String("reference", "", "Reference date (YYYY-MM-DD, default today)")
	renderCmd.Flags().Int("width", 0, "Chart width in pixels")
	renderCmd.Flags().Int("height", 0, "Chart height in pixels")
	renderCmd.Flags().Bool("dry-run", false, "Plan the chart without writing artifacts")

	_ = viper.BindPFlag("dataset.path", renderCmd.Flags().Lookup("data"))
	_ = viper.BindPFlag("output.dir", renderCmd.Flags().Lookup("out-dir"))
	_ = viper.BindPFlag("output.formats", renderCmd.Flags().Lookup("formats"))
	_ = viper.BindPFlag("chart.title", renderCmd.Flags().Lookup("title"))
	_ = viper.BindPFlag("chart.reference", renderCmd.Flags().Lookup("reference"))
}

func runRender(cmd *cobra.Command, args []string) error {
	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI flags
	if data := viper.GetString("dataset.path"); data != "" {
		cfg.Dataset.Path = data
	}
	if outDir := viper.GetString("output.dir"); outDir != "" {
		cfg.Output.Dir = outDir
	}
	if formats := viper.GetStringSlice("output.formats"); len(formats) > 0 {
		cfg.Output.Formats = formats
	}
	if title := viper.GetString("chart.title"); title != "" {
		cfg.Chart.Title = title
	}
	if reference := viper.GetString("chart.reference"); reference != "" {
		cfg.Chart.Reference = reference
	}
	if cmd.Flags().Changed("width") {
		width, _ := cmd.Flags().GetInt("width")
		cfg.Chart.Width = width
	}
	if cmd.Flags().Changed("height") {
		height, _ := cmd.Flags().GetInt("height")
		cfg.Chart.Height = height
	}

	// Validate configuration after applying CLI flags
	if err = cfg.ValidateForRender(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Capture the reference date once; every transform in this run
	// shares it.
	reference, err := cfg.ReferenceDate(time.Now())
	if err != nil {
		return err
	}

	// Generate run ID
	runID := fmt.Sprintf("skillchart-%s", uuid.New().String()[:8])

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose := viper.GetBool("verbose")

	fmt.Printf("Run ID: %s\n", runID)
	fmt.Printf("Dataset: %s\n", cfg.Dataset.Path)
	fmt.Printf("Reference date: %s\n", reference.Format("2006-01-02"))

	fmt.Println("Loading skills data...")
	records, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	planned, err := buildChart(records, reference, cfg)
	if err != nil {
		return err
	}

	first, last := yearSpan(records)
	fmt.Printf("Found %d skills spanning %d to %d\n", len(records), first, last)

	if dryRun {
		fmt.Println("Dry run - no artifacts will be written")
		return nil
	}

	// Render every format fully in memory before writing anything, so
	// a render failure leaves no partial output behind.
	fmt.Println("Creating timeline visualization...")
	type artifact struct {
		path string
		data []byte
	}
	artifacts := make([]artifact, 0, len(cfg.Output.Formats))
	for _, format := range cfg.Output.Formats {
		r, rendErr := render.New(format, render.Options{
			Width:  cfg.Chart.Width,
			Height: cfg.Chart.Height,
		})
		if rendErr != nil {
			return rendErr
		}
		data, rendErr := r.Render(planned)
		if rendErr != nil {
			return fmt.Errorf("failed to render %s: %w", format, rendErr)
		}
		artifacts = append(artifacts, artifact{
			path: filepath.Join(cfg.Output.Dir, r.Filename()),
			data: data,
		})
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, a := range artifacts {
		if err := os.WriteFile(a.path, a.data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.path, err)
		}
		if verbose {
			fmt.Printf("Wrote %s (%d bytes)\n", a.path, len(a.data))
		}
	}

	fmt.Println("Skills timeline generated successfully!")
	for _, a := range artifacts {
		fmt.Printf("  %s\n", a.path)
	}

	return nil
}

// buildChart plans the chart for the loaded records against the
// run's reference date.
func buildChart(records []dataset.Record, reference time.Time, cfg *config.Config) (*chart.Chart, error) {
	scale := timescale.New(reference)
	planned, err := chart.Build(records, scale, chart.Options{
		Title:     cfg.Chart.Title,
		TickStart: cfg.Chart.TickStart,
		TickEnd:   cfg.Chart.TickEnd,
		TickStep:  cfg.Chart.TickStep,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to plan chart: %w", err)
	}
	return planned, nil
}

// yearSpan returns the earliest start year and latest end year.
func yearSpan(records []dataset.Record) (int, int) {
	first, last := records[0].Start.Year(), records[0].End.Year()
	for _, rec := range records[1:] {
		if rec.Start.Year() < first {
			first = rec.Start.Year()
		}
		if rec.End.Year() > last {
			last = rec.End.Year()
		}
	}
	return first, last
}
