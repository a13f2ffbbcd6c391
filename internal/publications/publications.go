// Package publications renders the upload-and-filter widget: the uploaded
// table, an optional keyword, and the filtered result.
package publications

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pakomoretlwe/profiler/internal/page"
	"github.com/pakomoretlwe/profiler/internal/table"
)

const (
	Placeholder = "Upload a CSV file to view publications list."
	ShowingAll  = "Showing all publications"
)

// Input is what one render of the widget sees. Table is nil when nothing was
// uploaded; ParseErr is set when the upload could not be read.
type Input struct {
	Table    *table.Table
	ParseErr error
	Keyword  string
}

// Status returns the line shown above the results for keyword.
func Status(keyword string) string {
	if keyword == "" {
		return ShowingAll
	}
	return fmt.Sprintf("Filtered Results for '%s':", keyword)
}

// Render appends the widget's blocks to b and returns the table that was
// shown as the result (nil when no table was available).
func Render(b *page.Builder, in Input, log zerolog.Logger) *table.Table {
	switch {
	case in.ParseErr != nil:
		log.Warn().Err(in.ParseErr).Msg("upload rejected")
		b.Error(fmt.Sprintf("Could not read the uploaded file: %v", in.ParseErr))
		return nil
	case in.Table == nil:
		b.Info(Placeholder)
		return nil
	}

	b.Table(in.Table)
	if in.Keyword == "" {
		b.Status(ShowingAll)
		return in.Table
	}

	filtered := table.Filter(in.Table, in.Keyword)
	log.Debug().
		Str("keyword", in.Keyword).
		Int("rows", in.Table.Len()).
		Int("matches", filtered.Len()).
		Msg("publications filtered")

	b.Status(Status(in.Keyword))
	b.Table(filtered)
	return filtered
}
