package render

import (
	"fmt"
	"strings"

	"github.com/andywolf/skillchart/internal/chart"
)

func init() {
	register("svg", func(opts Options) Renderer {
		return &svgRenderer{opts: opts}
	})
}

// Chart styling shared with the HTML renderer.
const (
	marginLeft   = 50
	marginRight  = 50
	marginTop    = 80
	marginBottom = 80

	titleColor = "#2C3E50"
	gridColor  = "#ECF0F1"
	tickColor  = "#34495E"
)

// svgRenderer draws the chart as a standalone SVG document.
type svgRenderer struct {
	opts Options
}

func (r *svgRenderer) Filename() string { return "skills.svg" }

func (r *svgRenderer) Render(c *chart.Chart) ([]byte, error) {
	if len(c.Entries) == 0 {
		return nil, fmt.Errorf("chart has no entries")
	}

	width, height := r.opts.Width, r.opts.Height
	plot := newPlotArea(c, width, height)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="Arial, sans-serif">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="white"/>`+"\n", width, height)

	// Title, centered above the plot.
	fmt.Fprintf(&b, `  <text x="%g" y="40" text-anchor="middle" font-size="16" fill="%s">%s</text>`+"\n",
		float64(width)/2, titleColor, escapeXML(c.Title))

	// Vertical gridlines and rotated year labels at each tick.
	for _, tick := range c.Ticks {
		x := plot.x(tick.Position)
		fmt.Fprintf(&b, `  <line x1="%.2f" y1="%d" x2="%.2f" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
			x, marginTop, x, height-marginBottom, gridColor)
		fmt.Fprintf(&b, `  <text x="%.2f" y="%d" text-anchor="start" font-size="10" fill="%s" transform="rotate(45 %.2f %d)">%s</text>`+"\n",
			x, height-marginBottom+15, tickColor, x, height-marginBottom+15, escapeXML(tick.Label))
	}

	// One segment per entry plus its mid-point label. Zero-length
	// entries still emit a (degenerate) line so every skill shows a
	// label.
	for _, e := range c.Entries {
		x1, x2 := plot.x(e.StartPos), plot.x(e.EndPos)
		y := plot.y(e.Row)
		fmt.Fprintf(&b, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="round"/>`+"\n",
			x1, y, x2, y, e.Color, e.LineWidth)
		fmt.Fprintf(&b, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="7" font-weight="bold" fill="white">%s</text>`+"\n",
			(x1+x2)/2, y, escapeXML(e.DisplayName))
	}

	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}

// plotArea maps chart coordinates onto pixels.
type plotArea struct {
	xMin, xMax float64
	left, span float64
	top, rowH  float64
	rows       int
}

func newPlotArea(c *chart.Chart, width, height int) plotArea {
	xMin, xMax := c.XMin, c.XMax
	// All positions identical: widen the range so division below
	// stays finite.
	if xMax == xMin {
		xMax = xMin + 1
	}
	rows := len(c.Entries)
	return plotArea{
		xMin: xMin,
		xMax: xMax,
		left: marginLeft,
		span: float64(width - marginLeft - marginRight),
		top:  marginTop,
		rowH: float64(height-marginTop-marginBottom) / float64(rows),
		rows: rows,
	}
}

func (p plotArea) x(pos float64) float64 {
	return p.left + (pos-p.xMin)/(p.xMax-p.xMin)*p.span
}

// y returns the pixel center of a row. Rows are presented in reverse
// table order: the last-sorted entry is drawn topmost.
func (p plotArea) y(row int) float64 {
	return p.top + (float64(p.rows-1-row)+0.5)*p.rowH
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
