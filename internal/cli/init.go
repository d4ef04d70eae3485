package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andywolf/skillchart/internal/cli/wizard"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize project configuration",
	Long: `Initialize skillchart configuration for the current project.

This creates a .skillchart.yaml file with sensible defaults and a
starter skills.csv you can fill in.

Example:
  skillchart init
  skillchart init --title "My Skills" --data skills.csv
  skillchart init --interactive`,
	RunE: initProject,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("name", "", "Project name")
	initCmd.Flags().String("title", "Skills Timeline", "Chart title")
	initCmd.Flags().String("data", "skills.csv", "Dataset file path")
	initCmd.Flags().String("out-dir", "public", "Output directory")
	initCmd.Flags().Bool("interactive", false, "Prompt for settings interactively")
	initCmd.Flags().Bool("force", false, "Overwrite existing config")
}

type projectConfig struct {
	Project struct {
		Name string `yaml:"name"`
	} `yaml:"project"`
	Dataset struct {
		Path string `yaml:"path"`
	} `yaml:"dataset"`
	Chart struct {
		Title     string `yaml:"title"`
		Width     int    `yaml:"width"`
		Height    int    `yaml:"height"`
		Reference string `yaml:"reference,omitempty"`
		TickStart int    `yaml:"tick_start"`
		TickEnd   int    `yaml:"tick_end"`
		TickStep  int    `yaml:"tick_step"`
	} `yaml:"chart"`
	Output struct {
		Dir     string   `yaml:"dir"`
		Formats []string `yaml:"formats"`
	} `yaml:"output"`
}

// starterCSV seeds a new project with a couple of example rows.
const starterCSV = `name,start,end
1 Python,2015-01-01,2024-01-01
2 Git,2012-06-01,2024-01-01
`

func writeStarterCSV(path string) error {
	return os.WriteFile(path, []byte(starterCSV), 0644)
}

func initProject(cmd *cobra.Command, args []string) error {
	configPath := filepath.Join(".", ".skillchart.yaml")

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	cfg := projectConfig{}

	// Get values from flags or defaults
	cfg.Project.Name, _ = cmd.Flags().GetString("name")
	cfg.Chart.Title, _ = cmd.Flags().GetString("title")
	cfg.Dataset.Path, _ = cmd.Flags().GetString("data")
	cfg.Output.Dir, _ = cmd.Flags().GetString("out-dir")

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		answers, err := wizard.PromptChartSetup(wizard.ChartSetup{
			Title:       cfg.Chart.Title,
			DatasetPath: cfg.Dataset.Path,
			OutputDir:   cfg.Output.Dir,
			Formats:     []string{"svg", "html"},
		})
		if err != nil {
			return err
		}
		cfg.Chart.Title = answers.Title
		cfg.Dataset.Path = answers.DatasetPath
		cfg.Output.Dir = answers.OutputDir
		cfg.Output.Formats = answers.Formats
	}

	// Set default values
	if cfg.Project.Name == "" {
		cwd, _ := os.Getwd()
		cfg.Project.Name = filepath.Base(cwd)
	}
	cfg.Chart.Width = 1200
	cfg.Chart.Height = 800
	cfg.Chart.TickStart = 1998
	cfg.Chart.TickEnd = 2025
	cfg.Chart.TickStep = 3
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{"svg", "html"}
	}

	// Write config file
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := `# Skillchart Configuration
# See https://github.com/andywolf/skillchart for documentation

`

	if err := os.WriteFile(configPath, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Printf("Created %s\n", configPath)

	// Seed a starter dataset unless one already exists
	if _, err := os.Stat(cfg.Dataset.Path); os.IsNotExist(err) {
		if err := writeStarterCSV(cfg.Dataset.Path); err != nil {
			return fmt.Errorf("failed to write starter dataset: %w", err)
		}
		fmt.Printf("Created %s\n", cfg.Dataset.Path)
	}

	fmt.Println("\nNext steps:")
	fmt.Printf("  1. Fill in %s with your skills\n", cfg.Dataset.Path)
	fmt.Println("  2. Run 'skillchart validate' to check the dataset")
	fmt.Println("  3. Run 'skillchart render' to generate the chart")

	return nil
}
