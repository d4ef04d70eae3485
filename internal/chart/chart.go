// Package chart plans the skills timeline layout: it classifies,
// orders and styles the loaded records and transforms their dates
// onto the logarithmic axis. The result is a renderer-agnostic Chart
// that the render package turns into artifacts.
package chart

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/andywolf/skillchart/internal/category"
	"github.com/andywolf/skillchart/internal/dataset"
	"github.com/andywolf/skillchart/internal/timescale"
)

// Line thickness decays with the age of an entry's start date and is
// floored so old entries stay visible.
const (
	minLineWidth = 2.0
	baseWidth    = 8.0
	decayYears   = 5.0
)

// Palette is the fixed chart color cycle. An entry's color is the
// palette slot of its category, wrapping if categories outnumber
// colors.
var Palette = []string{"#2E86AB", "#A23B72", "#F18F01", "#C73E1D", "#592E83", "#048A81"}

// Entry is one planned timeline segment. Entries are immutable after
// Build returns.
type Entry struct {
	Name        string
	DisplayName string
	Category    category.Category
	Start       time.Time
	End         time.Time
	StartPos    float64
	EndPos      float64
	Row         int
	LineWidth   float64
	Color       string
}

// Duration returns the entry's span in fractional years.
func (e Entry) Duration() float64 {
	return e.End.Sub(e.Start).Hours() / (24 * 365.25)
}

// Options configures chart assembly.
type Options struct {
	Title     string
	TickStart int
	TickEnd   int
	TickStep  int
}

// Chart is the fully planned timeline, ready for rendering. Entries
// are in display order: renderers draw the last entry topmost, so the
// most recent rows of each group appear first.
type Chart struct {
	Title     string
	Reference time.Time
	Entries   []Entry
	Ticks     []timescale.Tick
	XMin      float64
	XMax      float64
}

// Build plans the chart for the given records. Every record is
// classified, styled and transformed against the one shared scale; a
// date past the scale's reference aborts the build so no partial
// chart escapes. Rows group by category rank with older entries
// first within each group.
func Build(records []dataset.Record, scale timescale.Scale, opts Options) (*Chart, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to chart")
	}

	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		cat := category.Classify(rec.Name)

		startPos, err := scale.Position(rec.Start)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", rec.Name, err)
		}
		endPos, err := scale.Position(rec.End)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", rec.Name, err)
		}

		entries = append(entries, Entry{
			Name:        rec.Name,
			DisplayName: displayName(rec.Name),
			Category:    cat,
			Start:       rec.Start,
			End:         rec.End,
			StartPos:    startPos,
			EndPos:      endPos,
			LineWidth:   lineWidth(scale.YearsSince(rec.Start)),
			Color:       Palette[category.PaletteIndex(cat)%len(Palette)],
		})
	}

	// Category rank first, then chronological within each group.
	// SliceStable keeps input order for exact ties.
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := category.Rank(entries[i].Category), category.Rank(entries[j].Category)
		if ri != rj {
			return ri < rj
		}
		return entries[i].Start.Before(entries[j].Start)
	})

	xMin, xMax := entries[0].StartPos, entries[0].EndPos
	for i := range entries {
		entries[i].Row = i
		if entries[i].StartPos < xMin {
			xMin = entries[i].StartPos
		}
		if entries[i].EndPos > xMax {
			xMax = entries[i].EndPos
		}
	}

	return &Chart{
		Title:     title(opts.Title, scale.Reference),
		Reference: scale.Reference,
		Entries:   entries,
		Ticks:     scale.YearTicks(opts.TickStart, opts.TickEnd, opts.TickStep),
		XMin:      xMin,
		XMax:      xMax,
	}, nil
}

// lineWidth thins the segment as its start date recedes, floored at
// minLineWidth.
func lineWidth(yearsSinceStart float64) float64 {
	width := baseWidth - yearsSinceStart/decayYears
	if width < minLineWidth {
		return minLineWidth
	}
	return width
}

// displayName drops a leading ordinal token ("3 Docker" -> "Docker").
// The full name, prefix included, stays on the entry for
// classification and identity.
func displayName(name string) string {
	if idx := strings.Index(name, " "); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

func title(configured string, reference time.Time) string {
	if configured == "" {
		configured = "Skills Timeline"
	}
	return fmt.Sprintf("%s • Updated %s", configured, reference.Format("January 2006"))
}
