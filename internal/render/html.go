package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/andywolf/skillchart/internal/chart"
)

func init() {
	register("html", func(opts Options) Renderer {
		return &htmlRenderer{opts: opts, tmpl: pageTmpl}
	})
}

var pageTmpl = template.Must(template.New("timeline").Parse(timelinePageTemplate))

// htmlRenderer produces a self-contained interactive page: the chart
// data is serialized into the document and inline JS draws it on a
// canvas. No external scripts, so the artifact works offline.
type htmlRenderer struct {
	opts Options
	tmpl *template.Template
}

func (r *htmlRenderer) Filename() string { return "timeline.html" }

// payload is the JSON shape handed to the page script. Tooltip text
// is precomputed here so the page does no date math.
type payload struct {
	Title   string         `json:"title"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	XMin    float64        `json:"xMin"`
	XMax    float64        `json:"xMax"`
	Entries []payloadEntry `json:"entries"`
	Ticks   []payloadTick  `json:"ticks"`
}

type payloadEntry struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	StartPos float64 `json:"startPos"`
	EndPos   float64 `json:"endPos"`
	Row      int     `json:"row"`
	Width    float64 `json:"width"`
	Color    string  `json:"color"`
	StartTip string  `json:"startTip"`
	EndTip   string  `json:"endTip"`
	Duration string  `json:"duration"`
}

type payloadTick struct {
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

func (r *htmlRenderer) Render(c *chart.Chart) ([]byte, error) {
	if len(c.Entries) == 0 {
		return nil, fmt.Errorf("chart has no entries")
	}

	p := payload{
		Title:  c.Title,
		Width:  r.opts.Width,
		Height: r.opts.Height,
		XMin:   c.XMin,
		XMax:   c.XMax,
	}
	if p.XMax == p.XMin {
		p.XMax = p.XMin + 1
	}
	for _, e := range c.Entries {
		p.Entries = append(p.Entries, payloadEntry{
			Name:     e.DisplayName,
			Category: string(e.Category),
			StartPos: e.StartPos,
			EndPos:   e.EndPos,
			Row:      e.Row,
			Width:    e.LineWidth,
			Color:    e.Color,
			StartTip: e.Start.Format("Jan 2006"),
			EndTip:   e.End.Format("Jan 2006"),
			Duration: fmt.Sprintf("%.1f years", e.Duration()),
		})
	}
	for _, tick := range c.Ticks {
		p.Ticks = append(p.Ticks, payloadTick{Position: tick.Position, Label: tick.Label})
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart data: %w", err)
	}

	var buf bytes.Buffer
	err = r.tmpl.Execute(&buf, struct {
		Title    string
		JSONData template.JS
	}{
		Title:    c.Title,
		JSONData: template.JS(data),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}
