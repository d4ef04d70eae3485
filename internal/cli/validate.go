package cli

import (
	"fmt"
	"time"

	"github.com/andywolf/skillchart/internal/category"
	"github.com/andywolf/skillchart/internal/config"
	"github.com/andywolf/skillchart/internal/dataset"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset and chart plan without writing artifacts",
	Long: `Validate loads the dataset and plans the full chart layout exactly as
render does, but writes nothing. It reports per-category counts and
the planned row order, and exits nonzero on the first malformed record
or out-of-domain date.

Example:
  skillchart validate --data skills.csv`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("data", "", "Dataset file (.csv, .yaml or .yml)")
	validateCmd.Flags().String("reference", "", "Reference date (YYYY-MM-DD, default today)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.Dataset.Path = data
	}
	if reference, _ := cmd.Flags().GetString("reference"); reference != "" {
		cfg.Chart.Reference = reference
	}

	if err = cfg.ValidateForRender(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	reference, err := cfg.ReferenceDate(time.Now())
	if err != nil {
		return err
	}

	records, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	planned, err := buildChart(records, reference, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Dataset: %s\n", cfg.Dataset.Path)
	fmt.Printf("Reference date: %s\n", reference.Format("2006-01-02"))
	fmt.Printf("Entries: %d\n\n", len(planned.Entries))

	counts := make(map[category.Category]int)
	for _, e := range planned.Entries {
		counts[e.Category]++
	}
	fmt.Println("Categories:")
	for _, c := range category.All {
		if counts[c] > 0 {
			fmt.Printf("  %-24s %d\n", c, counts[c])
		}
	}

	if viper.GetBool("verbose") {
		fmt.Println("\nPlanned rows (top to bottom):")
		for i := len(planned.Entries) - 1; i >= 0; i-- {
			e := planned.Entries[i]
			fmt.Printf("  %2d. %-20s %s  %s to %s\n",
				e.Row, e.DisplayName, e.Category,
				e.Start.Format("2006-01"), e.End.Format("2006-01"))
		}
	}

	fmt.Println("\nDataset and chart plan are valid.")
	return nil
}
