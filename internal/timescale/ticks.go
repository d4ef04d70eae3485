package timescale

import (
	"strconv"
	"time"
)

// Tick is one labelled position on the x-axis.
type Tick struct {
	Position float64
	Label    string
}

// YearTicks builds axis ticks by transforming January 1st of every
// step-th year from first through last inclusive with the same scale
// used for data points, so a tick and a data point at the same instant
// share an identical position. Years whose January 1st falls after the
// reference date are skipped.
func (s Scale) YearTicks(first, last, step int) []Tick {
	if step < 1 {
		return nil
	}

	var ticks []Tick
	for year := first; year <= last; year += step {
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		pos, err := s.Position(jan1)
		if err != nil {
			continue
		}
		ticks = append(ticks, Tick{Position: pos, Label: strconv.Itoa(year)})
	}
	return ticks
}
