package charts

import (
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBars(t *testing.T) {
	svg, err := Bars("Technical & Engineering", []Bar{
		{Label: "Control", Value: 80},
		{Label: "Analysis", Value: 95},
	})
	require.NoError(t, err)

	out := string(svg)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<svg"), "got %.40q", out)
	assert.Contains(t, out, "Control")
}

func TestBars_SingleBar(t *testing.T) {
	svg, err := Bars("one", []Bar{{Label: "SVM", Value: 8.1}})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestBars_AllZero(t *testing.T) {
	svg, err := Bars("zeros", []Bar{{Label: "A", Value: 0}, {Label: "B", Value: 0}})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestBars_NegativeValue(t *testing.T) {
	svg, err := Bars("R²", []Bar{{Label: "Baseline", Value: -0.4}, {Label: "LSTM", Value: 0.94}})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestBarRange(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		min, max float64
	}{
		{"positive", []float64{80, 95}, 0, 104.5},
		{"all zero", []float64{0, 0}, 0, 1},
		{"mixed sign", []float64{-0.4, 0.94}, -0.44, 1.034},
		{"all negative", []float64{-2, -1}, -2.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars := make([]Bar, len(tt.values))
			for i, v := range tt.values {
				bars[i] = Bar{Label: "b", Value: v}
			}

			r := barRange(bars)
			assert.InDelta(t, tt.min, r.Min, 1e-9)
			assert.InDelta(t, tt.max, r.Max, 1e-9)
			for _, v := range tt.values {
				assert.GreaterOrEqual(t, v, r.Min)
				assert.LessOrEqual(t, v, r.Max)
			}
		})
	}
}

func TestBars_Empty(t *testing.T) {
	_, err := Bars("none", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestLines(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)}

	svg, err := Lines("CO", times,
		Line{Name: "Actual", Values: []float64{200, 210, 190}},
		Line{Name: "Predicted", Values: []float64{205, 207, 185}},
	)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "Predicted")
}

func TestLines_Mismatch(t *testing.T) {
	start := time.Now()
	_, err := Lines("CO", []time.Time{start, start.Add(time.Hour)}, Line{Name: "Actual", Values: []float64{1}})
	require.Error(t, err)
	assert.ErrorContains(t, err, `"Actual"`)
}

func TestLines_NoData(t *testing.T) {
	_, err := Lines("CO", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoData))
}
