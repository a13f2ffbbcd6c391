package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pakomoretlwe/profiler/internal/config"
	"github.com/pakomoretlwe/profiler/internal/dataset"
	"github.com/pakomoretlwe/profiler/internal/logging"
	"github.com/pakomoretlwe/profiler/internal/publications"
	"github.com/pakomoretlwe/profiler/internal/table"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

type filterOptions struct {
	keyword string
	format  string
}

func newFilterCommand() *cobra.Command {
	opts := &filterOptions{}

	cmd := &cobra.Command{
		Use:   "filter <file>",
		Short: "Filter a publications file by keyword",
		Long: `Filter reads a CSV or XLSX file the same way the dashboard upload does
and prints the rows containing the keyword in any column, ignoring case.

Without --keyword every row is printed.

Supported formats:
  table  Aligned columns preceded by the status line
  csv    Comma-separated rows with a header
  json   An object with the status, columns, and rows`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.keyword, "keyword", "k", "", "keyword to search for")
	f.StringVar(&opts.format, "format", formatTable, "output format: table, csv, json")
	registerLimitFlags(cmd)

	return cmd
}

func runFilter(cmd *cobra.Command, path string, opts *filterOptions) error {
	switch opts.format {
	case formatTable, formatCSV, formatJSON:
	default:
		return &ExitError{Code: 2, Err: errors.Newf("invalid format %q: must be one of table, csv, json", opts.format)}
	}

	cfg := config.FromContext(cmd.Context())
	log := logging.FromContext(cmd.Context())

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	parser := dataset.NewParser(dataset.Limits{MaxBytes: cfg.MaxUploadBytes, MaxRows: cfg.MaxRows})
	tbl, err := parser.Parse(path, f)
	if err != nil {
		return errors.Wrapf(err, "parsing %q", path)
	}

	result := table.Filter(tbl, opts.keyword)
	log.Debug().
		Str("file", path).
		Str("keyword", opts.keyword).
		Int("rows", tbl.Len()).
		Int("matches", result.Len()).
		Msg("filtered")

	status := publications.Status(opts.keyword)
	out := cmd.OutOrStdout()

	switch opts.format {
	case formatCSV:
		return writeCSV(out, result)
	case formatJSON:
		return writeJSON(out, status, result)
	default:
		return writeTable(out, status, result)
	}
}

func writeTable(w io.Writer, status string, t *table.Table) error {
	if _, err := fmt.Fprintln(w, status); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, rec := range t.Records() {
		if _, err := fmt.Fprintln(tw, strings.Join(rec, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func writeCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Records()); err != nil {
		return errors.Wrap(err, "writing CSV")
	}

	return nil
}

type filterResult struct {
	Status  string     `json:"status"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func writeJSON(w io.Writer, status string, t *table.Table) error {
	recs := t.Records()
	res := filterResult{Status: status, Columns: recs[0], Rows: recs[1:]}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(res), "writing JSON")
}
