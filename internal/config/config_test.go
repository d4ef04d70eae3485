package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero width",
			mutate:  func(c *Config) { c.Chart.Width = -10 },
			wantErr: true,
			errMsg:  "chart width must be positive",
		},
		{
			name:    "zero height",
			mutate:  func(c *Config) { c.Chart.Height = -1 },
			wantErr: true,
			errMsg:  "chart height must be positive",
		},
		{
			name:    "zero tick step",
			mutate:  func(c *Config) { c.Chart.TickStep = -3 },
			wantErr: true,
			errMsg:  "tick_step must be at least 1",
		},
		{
			name: "inverted tick range",
			mutate: func(c *Config) {
				c.Chart.TickStart = 2030
				c.Chart.TickEnd = 2000
			},
			wantErr: true,
			errMsg:  "tick_start 2030 is after tick_end 2000",
		},
		{
			name:    "invalid format",
			mutate:  func(c *Config) { c.Output.Formats = []string{"svg", "png"} },
			wantErr: true,
			errMsg:  "invalid output format: png",
		},
		{
			name:    "bad reference date",
			mutate:  func(c *Config) { c.Chart.Reference = "someday" },
			wantErr: true,
			errMsg:  "invalid reference date",
		},
		{
			name:    "valid reference date",
			mutate:  func(c *Config) { c.Chart.Reference = "2024-01-01" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateForRender(t *testing.T) {
	t.Run("valid defaults pass", func(t *testing.T) {
		cfg := validConfig()
		if err := cfg.ValidateForRender(); err != nil {
			t.Errorf("ValidateForRender() unexpected error: %v", err)
		}
	})

	t.Run("missing dataset path", func(t *testing.T) {
		cfg := validConfig()
		cfg.Dataset.Path = ""
		err := cfg.ValidateForRender()
		if err == nil {
			t.Fatal("ValidateForRender() expected error, got nil")
		}
		if !strings.Contains(err.Error(), "dataset path is required") {
			t.Errorf("ValidateForRender() error = %q, want dataset path message", err.Error())
		}
	})

	t.Run("no formats", func(t *testing.T) {
		cfg := validConfig()
		cfg.Output.Formats = nil
		err := cfg.ValidateForRender()
		if err == nil {
			t.Fatal("ValidateForRender() expected error, got nil")
		}
		if !strings.Contains(err.Error(), "at least one output format") {
			t.Errorf("ValidateForRender() error = %q, want formats message", err.Error())
		}
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	applyDefaults(&cfg)

	if cfg.Dataset.Path != "skills.csv" {
		t.Errorf("Dataset.Path = %q, want skills.csv", cfg.Dataset.Path)
	}
	if cfg.Chart.Title != "Skills Timeline" {
		t.Errorf("Chart.Title = %q, want Skills Timeline", cfg.Chart.Title)
	}
	if cfg.Chart.Width != 1200 || cfg.Chart.Height != 800 {
		t.Errorf("Chart size = %dx%d, want 1200x800", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Chart.TickStart != 1998 || cfg.Chart.TickEnd != 2025 || cfg.Chart.TickStep != 3 {
		t.Errorf("ticks = %d..%d step %d, want 1998..2025 step 3",
			cfg.Chart.TickStart, cfg.Chart.TickEnd, cfg.Chart.TickStep)
	}
	if cfg.Output.Dir != "public" {
		t.Errorf("Output.Dir = %q, want public", cfg.Output.Dir)
	}
	if len(cfg.Output.Formats) != 2 {
		t.Errorf("Output.Formats = %v, want [svg html]", cfg.Output.Formats)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{}
	cfg.Chart.Width = 600
	cfg.Output.Formats = []string{"svg"}
	applyDefaults(&cfg)

	if cfg.Chart.Width != 600 {
		t.Errorf("Chart.Width = %d, want explicit 600 preserved", cfg.Chart.Width)
	}
	if len(cfg.Output.Formats) != 1 || cfg.Output.Formats[0] != "svg" {
		t.Errorf("Output.Formats = %v, want explicit [svg] preserved", cfg.Output.Formats)
	}
}

func TestConfig_ReferenceDate(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.Local)

	t.Run("empty reference uses now in UTC", func(t *testing.T) {
		cfg := validConfig()
		ref, err := cfg.ReferenceDate(now)
		if err != nil {
			t.Fatalf("ReferenceDate() unexpected error: %v", err)
		}
		if !ref.Equal(now) {
			t.Errorf("ReferenceDate() = %v, want %v", ref, now)
		}
		if ref.Location() != time.UTC {
			t.Errorf("ReferenceDate() location = %v, want UTC", ref.Location())
		}
	})

	t.Run("explicit reference wins", func(t *testing.T) {
		cfg := validConfig()
		cfg.Chart.Reference = "2024-01-01"
		ref, err := cfg.ReferenceDate(now)
		if err != nil {
			t.Fatalf("ReferenceDate() unexpected error: %v", err)
		}
		want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !ref.Equal(want) {
			t.Errorf("ReferenceDate() = %v, want %v", ref, want)
		}
	})

	t.Run("bad reference errors", func(t *testing.T) {
		cfg := validConfig()
		cfg.Chart.Reference = "nope"
		if _, err := cfg.ReferenceDate(now); err == nil {
			t.Fatal("ReferenceDate() expected error, got nil")
		}
	})
}
