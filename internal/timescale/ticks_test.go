package timescale

import (
	"testing"
	"time"
)

func TestScale_YearTicks(t *testing.T) {
	ref := date(2024, time.January, 1)
	s := New(ref)

	ticks := s.YearTicks(1998, 2025, 3)

	// 1998..2025 step 3 covers ten years; 2025 lies after the
	// reference and is skipped.
	if got, want := len(ticks), 9; got != want {
		t.Fatalf("YearTicks(1998, 2025, 3) returned %d ticks, want %d", got, want)
	}
	if got, want := ticks[0].Label, "1998"; got != want {
		t.Errorf("first tick label = %q, want %q", got, want)
	}
	if got, want := ticks[len(ticks)-1].Label, "2022"; got != want {
		t.Errorf("last tick label = %q, want %q", got, want)
	}

	for i := 1; i < len(ticks); i++ {
		if ticks[i].Position <= ticks[i-1].Position {
			t.Errorf("tick %q position %v not greater than tick %q position %v",
				ticks[i].Label, ticks[i].Position, ticks[i-1].Label, ticks[i-1].Position)
		}
	}
}

func TestScale_YearTicks_RoundTrip(t *testing.T) {
	// A tick and a data point at the same instant must share an
	// identical position.
	ref := date(2024, time.January, 1)
	s := New(ref)

	ticks := s.YearTicks(1998, 2025, 3)
	for _, tick := range ticks {
		year, err := time.Parse("2006", tick.Label)
		if err != nil {
			t.Fatalf("tick label %q is not a year: %v", tick.Label, err)
		}
		pos, err := s.Position(date(year.Year(), time.January, 1))
		if err != nil {
			t.Fatalf("Position(%s-01-01) unexpected error: %v", tick.Label, err)
		}
		if pos != tick.Position {
			t.Errorf("tick %q position = %v, Position() = %v, want identical", tick.Label, tick.Position, pos)
		}
	}
}

func TestScale_YearTicks_Edges(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		first     int
		last      int
		step      int
		wantLen   int
		wantLast  string
	}{
		{
			name:      "reference on a tick year includes it at zero",
			reference: date(2025, time.January, 1),
			first:     1998, last: 2025, step: 3,
			wantLen:  10,
			wantLast: "2025",
		},
		{
			name:      "all years after reference",
			reference: date(1990, time.June, 1),
			first:     1998, last: 2025, step: 3,
			wantLen: 0,
		},
		{
			name:      "single year range",
			reference: date(2024, time.January, 1),
			first:     2020, last: 2020, step: 3,
			wantLen:  1,
			wantLast: "2020",
		},
		{
			name:      "zero step yields nothing",
			reference: date(2024, time.January, 1),
			first:     1998, last: 2025, step: 0,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.reference)
			ticks := s.YearTicks(tt.first, tt.last, tt.step)
			if len(ticks) != tt.wantLen {
				t.Fatalf("YearTicks(%d, %d, %d) returned %d ticks, want %d",
					tt.first, tt.last, tt.step, len(ticks), tt.wantLen)
			}
			if tt.wantLen == 0 {
				return
			}
			if got := ticks[len(ticks)-1].Label; got != tt.wantLast {
				t.Errorf("last tick label = %q, want %q", got, tt.wantLast)
			}
			if tt.name == "reference on a tick year includes it at zero" {
				if got := ticks[len(ticks)-1].Position; got != 0 {
					t.Errorf("tick at the reference date position = %v, want 0", got)
				}
			}
		})
	}
}
