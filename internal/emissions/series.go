// Package emissions produces the synthetic kiln CO series shown on the
// dashboard and the figures used to compare the candidate models.
package emissions

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultPeriods = 100
	DefaultSeed    = 42

	baseline    = 200.0
	amplitude   = 50.0
	cycles      = 10.0
	sensorNoise = 5.0
	modelNoise  = 8.0
	ActualName  = "Actual CO Level (ppm)"
	PredictName = "Predicted CO Level (ppm)"
)

var ErrPeriods = errors.New("periods must be positive")

// Options controls series generation.
type Options struct {
	Start   time.Time
	Periods int
	Step    time.Duration
	Seed    uint64
}

// DefaultOptions returns 100 hourly points from 2024-06-01 with seed 42.
func DefaultOptions() Options {
	return Options{
		Start:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Periods: DefaultPeriods,
		Step:    time.Hour,
		Seed:    DefaultSeed,
	}
}

// Series is an hourly CO reading alongside the model's prediction for it.
type Series struct {
	Times     []time.Time
	Actual    []float64
	Predicted []float64
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.Times) }

// Generate builds a sinusoidal CO signal with Gaussian sensor noise and a
// noisier prediction that tracks it. The same options always produce the same
// series.
func Generate(opts Options) (Series, error) {
	if opts.Periods <= 0 {
		return Series{}, errors.Wrapf(ErrPeriods, "got %d", opts.Periods)
	}
	if opts.Step <= 0 {
		opts.Step = time.Hour
	}

	n := opts.Periods
	src := rand.NewPCG(opts.Seed, opts.Seed)
	sensor := distuv.Normal{Mu: 0, Sigma: sensorNoise, Src: src}
	model := distuv.Normal{Mu: 0, Sigma: modelNoise, Src: src}

	x := make([]float64, n)
	if n > 1 {
		floats.Span(x, 0, cycles)
	}

	s := Series{
		Times:     make([]time.Time, n),
		Actual:    make([]float64, n),
		Predicted: make([]float64, n),
	}
	for i := range x {
		s.Times[i] = opts.Start.Add(time.Duration(i) * opts.Step)
		s.Actual[i] = math.Sin(x[i])*amplitude + baseline + sensor.Rand()
	}
	for i := range s.Actual {
		s.Predicted[i] = s.Actual[i] + model.Rand()
	}

	return s, nil
}

// Fit summarises how closely the prediction tracks the actual readings.
type Fit struct {
	RMSE float64
	R2   float64
}

// Evaluate computes RMSE and R² of the prediction against the actual values.
func (s Series) Evaluate() Fit {
	n := float64(len(s.Actual))
	if n == 0 {
		return Fit{}
	}
	return Fit{
		RMSE: floats.Distance(s.Predicted, s.Actual, 2) / math.Sqrt(n),
		R2:   stat.RSquaredFrom(s.Predicted, s.Actual, nil),
	}
}
