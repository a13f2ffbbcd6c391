package emissions

import (
	"github.com/cockroachdb/errors"
)

// Metrics the model comparison chart can show.
const (
	MetricRMSE = "RMSE (Lower is Better)"
	MetricR2   = "R² Score (Higher is Better)"
)

var ErrUnknownMetric = errors.New("unknown metric")

// Metrics lists the selectable metrics, default first.
func Metrics() []string {
	return []string{MetricRMSE, MetricR2}
}

// ModelScore is one model's result in the comparative study.
type ModelScore struct {
	Model string  `yaml:"model"`
	RMSE  float64 `yaml:"rmse"`
	R2    float64 `yaml:"r2"`
}

// Point is a labelled value ready for a bar chart.
type Point struct {
	Label string
	Value float64
}

// DefaultModels returns the study's published scores.
func DefaultModels() []ModelScore {
	return []ModelScore{
		{Model: "Linear Regression", RMSE: 12.5, R2: 0.65},
		{Model: "Random Forest", RMSE: 4.2, R2: 0.89},
		{Model: "XGBoost", RMSE: 3.8, R2: 0.92},
		{Model: "LSTM (Deep Learning)", RMSE: 3.5, R2: 0.94},
		{Model: "SVM", RMSE: 8.1, R2: 0.78},
	}
}

// Select returns each model's value for metric in model order.
func Select(scores []ModelScore, metric string) ([]Point, error) {
	var pick func(ModelScore) float64
	switch metric {
	case MetricRMSE:
		pick = func(m ModelScore) float64 { return m.RMSE }
	case MetricR2:
		pick = func(m ModelScore) float64 { return m.R2 }
	default:
		return nil, errors.Wrapf(ErrUnknownMetric, "%q", metric)
	}

	out := make([]Point, len(scores))
	for i, m := range scores {
		out[i] = Point{Label: m.Model, Value: pick(m)}
	}
	return out, nil
}

// Best returns the model that scores best on metric: lowest RMSE or highest
// R². ok is false when scores is empty or metric is unknown.
func Best(scores []ModelScore, metric string) (ModelScore, bool) {
	var better func(a, b ModelScore) bool
	switch metric {
	case MetricRMSE:
		better = func(a, b ModelScore) bool { return a.RMSE < b.RMSE }
	case MetricR2:
		better = func(a, b ModelScore) bool { return a.R2 > b.R2 }
	default:
		return ModelScore{}, false
	}
	if len(scores) == 0 {
		return ModelScore{}, false
	}

	best := scores[0]
	for _, m := range scores[1:] {
		if better(m, best) {
			best = m
		}
	}
	return best, true
}
