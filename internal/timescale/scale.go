// Package timescale maps calendar dates onto the chart's logarithmic
// x-axis. Recent dates land near zero while older dates stretch toward
// increasingly negative positions, which gives recent years more room.
package timescale

import (
	"fmt"
	"math"
	"time"
)

// hoursPerYear converts elapsed time to fractional years using the
// Julian year of 365.25 days.
const hoursPerYear = 24 * 365.25

// Scale transforms dates relative to a fixed reference date. The
// reference is captured once per run and threaded through every
// transform call, so all positions in one chart are mutually
// consistent.
type Scale struct {
	Reference time.Time
}

// New returns a Scale anchored at the given reference date.
func New(reference time.Time) Scale {
	return Scale{Reference: reference}
}

// YearsSince returns the fractional years between d and the reference
// date. Negative when d lies after the reference.
func (s Scale) YearsSince(d time.Time) float64 {
	return s.Reference.Sub(d).Hours() / hoursPerYear
}

// Position maps d onto the logarithmic axis as -ln(years + 1), where
// years is the time elapsed between d and the reference date. The
// reference itself maps to exactly 0 and older dates grow more
// negative. Dates after the reference are outside the scale's domain
// and return a *DomainError; they are never clamped.
func (s Scale) Position(d time.Time) (float64, error) {
	if d.After(s.Reference) {
		return 0, &DomainError{Date: d, Reference: s.Reference}
	}
	return -math.Log(s.YearsSince(d) + 1), nil
}

// DomainError reports a date that lies after the scale's reference
// date, where the logarithmic transform is undefined.
type DomainError struct {
	Date      time.Time
	Reference time.Time
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("date %s is after the reference date %s",
		e.Date.Format("2006-01-02"), e.Reference.Format("2006-01-02"))
}
