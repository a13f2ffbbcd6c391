// Package charts renders the dashboard's bar and line charts as inline SVG.
package charts

import (
	"bytes"
	"html/template"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 360
)

var ErrNoData = errors.New("chart has no data")

// Bar is one labelled bar.
type Bar struct {
	Label string
	Value float64
}

// Line is a named series plotted against shared timestamps.
type Line struct {
	Name   string
	Values []float64
}

var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorOrange,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorCyan,
}

// Bars renders a bar chart. The y-axis always includes zero so that small
// differences are not exaggerated, and extends below it for negative values.
func Bars(title string, bars []Bar) (template.HTML, error) {
	if len(bars) == 0 {
		return "", errors.Wrapf(ErrNoData, "%q", title)
	}

	values := make([]chart.Value, len(bars))
	for i, b := range bars {
		col := palette[0]
		values[i] = chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{FillColor: col, StrokeColor: col},
		}
	}

	bc := chart.BarChart{
		Title:        title,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		BarWidth:     DefaultWidth / (len(bars) * 2),
		UseBaseValue: true,
		BaseValue:    0,
		Background:   chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		YAxis:        chart.YAxis{Range: barRange(bars)},
		Bars:         values,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.SVG, &buf); err != nil {
		return "", errors.Wrapf(err, "rendering %q", title)
	}
	return template.HTML(buf.String()), nil
}

// barRange spans zero and every bar with a tenth of headroom on each side
// that has values.
func barRange(bars []Bar) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, b := range bars {
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
	}
	// go-chart rejects a zero-height range.
	if lo == 0 && hi == 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	return &chart.ContinuousRange{Min: lo * 1.1, Max: hi * 1.1}
}

// Lines renders one or more series over time with a legend.
func Lines(title string, times []time.Time, lines ...Line) (template.HTML, error) {
	if len(times) < 2 || len(lines) == 0 {
		return "", errors.Wrapf(ErrNoData, "%q", title)
	}

	series := make([]chart.Series, 0, len(lines))
	for i, l := range lines {
		if len(l.Values) != len(times) {
			return "", errors.Newf("series %q has %d values for %d timestamps", l.Name, len(l.Values), len(times))
		}
		col := palette[i%len(palette)]
		series = append(series, chart.TimeSeries{
			Name:    l.Name,
			XValues: times,
			YValues: l.Values,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 1.5},
		})
	}

	c := chart.Chart{
		Title:      title,
		Width:      DefaultWidth * 3 / 2,
		Height:     DefaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{ValueFormatter: chart.TimeDateValueFormatter},
		Series:     series,
	}
	c.Elements = []chart.Renderable{chart.Legend(&c)}

	var buf bytes.Buffer
	if err := c.Render(chart.SVG, &buf); err != nil {
		return "", errors.Wrapf(err, "rendering %q", title)
	}
	return template.HTML(buf.String()), nil
}
