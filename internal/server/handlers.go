package server

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/pakomoretlwe/profiler/internal/dataset"
	"github.com/pakomoretlwe/profiler/internal/emissions"
	"github.com/pakomoretlwe/profiler/internal/logging"
	"github.com/pakomoretlwe/profiler/internal/page"
	"github.com/pakomoretlwe/profiler/internal/publications"
	"github.com/pakomoretlwe/profiler/internal/version"
)

// formOverhead is the multipart framing allowed on top of the file limit.
const formOverhead = 64 << 10

func (s *Server) handleIndex(c *gin.Context) {
	log := logging.FromContext(c.Request.Context())

	p, err := s.dashboard(emissions.MetricRMSE, log)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"title": p.Title, "page": p})
}

func (s *Server) handleModels(c *gin.Context) {
	metric := c.DefaultQuery("metric", emissions.MetricRMSE)

	frag, err := modelsFragment(s.profile.Get(), metric)
	switch {
	case errors.Is(err, emissions.ErrUnknownMetric):
		s.fail(c, http.StatusBadRequest, err)
		return
	case err != nil:
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "fragment.html", gin.H{"page": frag})
}

// handlePublications renders the publications widget for the posted file and
// keyword. Upload problems are shown inside the fragment with a 200 so the
// swap still happens.
func (s *Server) handlePublications(c *gin.Context) {
	log := logging.FromContext(c.Request.Context())

	if s.limits.MaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.limits.MaxBytes+formOverhead)
	}
	in := s.readUpload(c)

	b := page.New("")
	publications.Render(b, in, log)
	c.HTML(http.StatusOK, "fragment.html", gin.H{"page": b.Page()})
}

func (s *Server) readUpload(c *gin.Context) publications.Input {
	fh, err := c.FormFile("file")
	in := publications.Input{Keyword: c.PostForm("keyword")}

	var tooBig *http.MaxBytesError
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return in
	case errors.As(err, &tooBig):
		in.ParseErr = errors.Wrapf(dataset.ErrTooLarge, "upload exceeds %d bytes", s.limits.MaxBytes)
		return in
	case err != nil:
		in.ParseErr = errors.Wrap(err, "reading upload")
		return in
	}

	f, err := fh.Open()
	if err != nil {
		in.ParseErr = errors.Wrapf(err, "opening %q", fh.Filename)
		return in
	}
	defer f.Close()

	in.Table, in.ParseErr = s.parser.Parse(fh.Filename, f)
	return in
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version.GetInfo().Version,
	})
}

// fail renders err as an error fragment with the given status.
func (s *Server) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "Something went wrong while rendering this page."
	}
	c.HTML(status, "fragment.html", gin.H{"page": page.New("").Error(msg).Page()})
}
