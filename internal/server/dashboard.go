package server

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/pakomoretlwe/profiler/internal/charts"
	"github.com/pakomoretlwe/profiler/internal/emissions"
	"github.com/pakomoretlwe/profiler/internal/page"
	"github.com/pakomoretlwe/profiler/internal/profile"
	"github.com/pakomoretlwe/profiler/internal/publications"
)

const (
	modelsID       = "models"
	publicationsID = "publications"
	uploadAccept   = ".csv,.xlsx"
)

// dashboard builds the full page with the model chart showing metric.
func (s *Server) dashboard(metric string, log zerolog.Logger) (*page.Page, error) {
	p := s.profile.Get()
	b := page.New(p.Name + " - Professional Profile")

	b.Title(p.Name + " - Professional Profile")
	b.Header("Overview")
	b.Field("Name", p.Name)
	b.Field("Academic Role", fmt.Sprintf("%s at %s", p.Academic.Title, p.Academic.Institution))
	b.Field("Professional Role", fmt.Sprintf("%s at %s", p.Professional.Title, p.Professional.Institution))
	b.Text(p.Summary)
	if p.Image.URL != "" {
		b.Image(p.Image.URL, p.Image.Caption)
	}

	b.Header("Skills Matrix")
	tech, err := skillColumn("Technical & Engineering", p.TechnicalSkill)
	if err != nil {
		return nil, err
	}
	biz, err := skillColumn("Business & Strategy", p.BusinessSkill)
	if err != nil {
		return nil, err
	}
	b.Columns(tech, biz)

	b.Divider()
	b.Header("Final Year Research Project")
	b.Subheader(p.Project.Title)
	b.Field("Objective", p.Project.Objective)

	b.Subheader("Model Performance Comparison")
	opts := make([]page.Option, 0, len(emissions.Metrics()))
	for _, m := range emissions.Metrics() {
		opts = append(opts, page.Option{Label: m, Value: m, Selected: m == metric})
	}
	b.Radio("Select Metric to Visualize", "metric", "/models", modelsID, opts)
	models, err := modelsFragment(p, metric)
	if err != nil {
		return nil, err
	}
	b.Fragment(modelsID, models)
	if p.Project.Insight != "" {
		b.Field("Insight", p.Project.Insight)
	}

	b.Subheader("Interactive Prediction Analysis")
	b.Text("Explore how the best performing model tracks actual emissions data over time.")
	if err := s.predictionChart(b); err != nil {
		return nil, err
	}

	b.Divider()
	b.Header("Publications & Reports")
	b.Upload("Upload a CSV of Publications", "/publications", publicationsID, uploadAccept)
	pubs := page.New("")
	publications.Render(pubs, publications.Input{}, log)
	b.Fragment(publicationsID, pubs.Page())

	b.Divider()
	b.Header("Contact Information")
	b.Text(fmt.Sprintf(profile.ContactPitch, p.Email))
	links := make([]page.Link, len(p.Links))
	for i, l := range p.Links {
		links[i] = page.Link{Label: l.Label, URL: l.URL}
	}
	b.Links(links...)

	return b.Page(), nil
}

func skillColumn(title string, skills []profile.Skill) (*page.Page, error) {
	b := page.New("").Subheader(title)
	if len(skills) == 0 {
		return b.Page(), nil
	}
	bars := make([]charts.Bar, len(skills))
	for i, sk := range skills {
		bars[i] = charts.Bar{Label: sk.Name, Value: float64(sk.Proficiency)}
	}
	svg, err := charts.Bars(title, bars)
	if err != nil {
		return nil, errors.Wrapf(err, "rendering %s skills", title)
	}
	return b.Chart(svg, "").Page(), nil
}

// modelsFragment is the model comparison chart for metric. It returns an
// error wrapping emissions.ErrUnknownMetric for metrics it cannot plot.
func modelsFragment(p profile.Profile, metric string) (*page.Page, error) {
	points, err := emissions.Select(p.Models, metric)
	if err != nil {
		return nil, err
	}
	b := page.New("")
	if len(points) == 0 {
		return b.Info("No model results to compare.").Page(), nil
	}

	bars := make([]charts.Bar, len(points))
	for i, pt := range points {
		bars[i] = charts.Bar{Label: pt.Label, Value: pt.Value}
	}
	svg, err := charts.Bars(metric, bars)
	if err != nil {
		return nil, errors.Wrap(err, "rendering model comparison")
	}

	caption := ""
	if best, ok := emissions.Best(p.Models, metric); ok {
		caption = "Best: " + best.Model
	}
	return b.Chart(svg, caption).Page(), nil
}

func (s *Server) predictionChart(b *page.Builder) error {
	svg, err := charts.Lines("CO Emissions",
		s.series.Times,
		charts.Line{Name: emissions.ActualName, Values: s.series.Actual},
		charts.Line{Name: emissions.PredictName, Values: s.series.Predicted},
	)
	if err != nil {
		return errors.Wrap(err, "rendering prediction chart")
	}
	fit := s.series.Evaluate()
	b.Chart(svg, fmt.Sprintf("RMSE %.2f ppm, R² %.3f over %d hours", fit.RMSE, fit.R2, s.series.Len()))
	return nil
}
