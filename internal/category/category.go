// Package category assigns skill entries to a fixed set of named
// buckets by keyword matching against the entry name. Buckets drive
// both the chart's row grouping and its color assignment.
package category

// Category is one of the fixed classification buckets.
type Category string

const (
	// Programming covers languages and their standard libraries.
	Programming Category = "Programming"
	// ToolsSystems covers editors, build tools and operating systems.
	ToolsSystems Category = "Tools & Systems"
	// ProtocolsStandards covers wire protocols and industry standards.
	ProtocolsStandards Category = "Protocols & Standards"
	// PlatformsCloud covers cloud providers and hardware platforms.
	PlatformsCloud Category = "Platforms & Cloud"
	// FrameworksLibraries covers application frameworks and libraries.
	FrameworksLibraries Category = "Frameworks & Libraries"
	// Other is the fallback for names no keyword matches.
	Other Category = "Other"
)

// All lists every category in classification priority order. The
// priority order doubles as the palette slot order.
var All = []Category{
	Programming,
	ToolsSystems,
	ProtocolsStandards,
	PlatformsCloud,
	FrameworksLibraries,
	Other,
}

// sortRanks orders categories for row grouping on the chart. This is
// deliberately a different order than the classification priority:
// platform work is grouped above protocol work even though protocols
// classify first.
var sortRanks = map[Category]int{
	Programming:         0,
	ToolsSystems:        1,
	PlatformsCloud:      2,
	ProtocolsStandards:  3,
	FrameworksLibraries: 4,
	Other:               5,
}

// paletteIndexes maps each category to its slot in the color palette,
// which is its position in the classification priority order.
var paletteIndexes = func() map[Category]int {
	m := make(map[Category]int, len(All))
	for i, c := range All {
		m[c] = i
	}
	return m
}()

// Rank returns the category's row-grouping rank. Unknown categories
// sort last.
func Rank(c Category) int {
	if rank, ok := sortRanks[c]; ok {
		return rank
	}
	return len(All)
}

// PaletteIndex returns the category's slot in the color palette.
func PaletteIndex(c Category) int {
	if idx, ok := paletteIndexes[c]; ok {
		return idx
	}
	return 0
}

// IsValid reports whether c is one of the fixed categories.
func IsValid(c Category) bool {
	_, ok := paletteIndexes[c]
	return ok
}
