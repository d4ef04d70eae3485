package cli

import (
	"testing"
	"time"

	"github.com/andywolf/skillchart/internal/config"
	"github.com/andywolf/skillchart/internal/dataset"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearSpan(t *testing.T) {
	tests := []struct {
		name      string
		records   []dataset.Record
		wantFirst int
		wantLast  int
	}{
		{
			name: "single record",
			records: []dataset.Record{
				{Start: date(2015, time.January, 1), End: date(2024, time.January, 1)},
			},
			wantFirst: 2015,
			wantLast:  2024,
		},
		{
			name: "span across records",
			records: []dataset.Record{
				{Start: date(2015, time.January, 1), End: date(2020, time.January, 1)},
				{Start: date(1998, time.June, 1), End: date(2010, time.January, 1)},
				{Start: date(2019, time.January, 1), End: date(2024, time.June, 1)},
			},
			wantFirst: 1998,
			wantLast:  2024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := yearSpan(tt.records)
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("yearSpan() = %d, %d, want %d, %d", first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestBuildChart(t *testing.T) {
	cfg := &config.Config{}
	cfg.Chart.Title = "Test"
	cfg.Chart.TickStart = 1998
	cfg.Chart.TickEnd = 2025
	cfg.Chart.TickStep = 3

	records := []dataset.Record{
		{Name: "1 Python", Start: date(2015, time.January, 1), End: date(2024, time.January, 1)},
	}

	planned, err := buildChart(records, date(2024, time.January, 1), cfg)
	if err != nil {
		t.Fatalf("buildChart() unexpected error: %v", err)
	}
	if len(planned.Entries) != 1 {
		t.Fatalf("buildChart() returned %d entries, want 1", len(planned.Entries))
	}
	if got, want := planned.Title, "Test • Updated January 2024"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
}

func TestBuildChart_FutureEndDate(t *testing.T) {
	cfg := &config.Config{}
	cfg.Chart.TickStart = 1998
	cfg.Chart.TickEnd = 2025
	cfg.Chart.TickStep = 3

	records := []dataset.Record{
		{Name: "Python", Start: date(2015, time.January, 1), End: date(2030, time.January, 1)},
	}

	if _, err := buildChart(records, date(2024, time.January, 1), cfg); err == nil {
		t.Fatal("buildChart() expected error for a date past the reference, got nil")
	}
}

func TestStarterCSVParses(t *testing.T) {
	// The init scaffold must survive the loader it feeds.
	dir := t.TempDir()
	path := dir + "/skills.csv"
	if err := writeStarterCSV(path); err != nil {
		t.Fatalf("writeStarterCSV() unexpected error: %v", err)
	}

	records, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load(starter CSV) unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Load(starter CSV) returned %d records, want 2", len(records))
	}
}
