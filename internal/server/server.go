// Package server serves the profile dashboard over HTTP. Full pages and the
// HTMX fragments that replace parts of them are both rendered from page.Page
// values through the embedded templates.
package server

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pakomoretlwe/profiler/internal/dataset"
	"github.com/pakomoretlwe/profiler/internal/emissions"
	"github.com/pakomoretlwe/profiler/internal/profile"
)

//go:embed templates/*.html
var templatesFS embed.FS

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	// Mode is the gin mode. Empty means release.
	Mode    string
	Profile *profile.Store
	Limits  dataset.Limits
	Seed    uint64
	Logger  zerolog.Logger
}

// Server is the dashboard HTTP server.
type Server struct {
	engine  *gin.Engine
	profile *profile.Store
	parser  *dataset.Parser
	limits  dataset.Limits
	series  emissions.Series
	log     zerolog.Logger
}

// New builds the gin engine and registers the routes.
func New(opts Options) (*Server, error) {
	if opts.Profile == nil {
		store, err := profile.NewStore("")
		if err != nil {
			return nil, err
		}
		opts.Profile = store
	}
	if opts.Limits == (dataset.Limits{}) {
		opts.Limits = dataset.DefaultLimits()
	}
	if opts.Mode == "" {
		opts.Mode = gin.ReleaseMode
	}

	seriesOpts := emissions.DefaultOptions()
	seriesOpts.Seed = opts.Seed
	series, err := emissions.Generate(seriesOpts)
	if err != nil {
		return nil, errors.Wrap(err, "generating emissions series")
	}

	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}

	gin.SetMode(opts.Mode)
	engine := gin.New()
	engine.Use(requestLogger(opts.Logger), gin.Recovery())
	engine.SetHTMLTemplate(tmpl)

	s := &Server{
		engine:  engine,
		profile: opts.Profile,
		parser:  dataset.NewParser(opts.Limits),
		limits:  opts.Limits,
		series:  series,
		log:     opts.Logger,
	}

	engine.GET("/", s.handleIndex)
	engine.GET("/models", s.handleModels)
	engine.POST("/publications", s.handlePublications)
	engine.GET("/healthz", s.handleHealth)

	return s, nil
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, "listening on %s", addr)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down")
	}
	return nil
}
