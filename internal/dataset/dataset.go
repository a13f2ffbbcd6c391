// Package dataset parses uploaded spreadsheets into tables.
//
// CSV and Excel workbooks are supported. The first record is the header;
// every following record becomes a row whose cells are typed as empty,
// numeric, or text.
package dataset

import (
	"bytes"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/pakomoretlwe/profiler/internal/table"
)

const (
	DefaultMaxBytes = 10 << 20 // 10MB
	DefaultMaxRows  = 10000
)

var (
	ErrEmpty             = errors.New("no columns to parse from file")
	ErrEncoding          = errors.New("file is not valid UTF-8")
	ErrColumnCount       = errors.New("inconsistent column count")
	ErrTooManyRows       = errors.New("too many rows")
	ErrTooLarge          = errors.New("file too large")
	ErrUnsupportedFormat = errors.New("unsupported file type")
)

// Limits bounds what a single upload may contain. Zero values disable the
// corresponding check.
type Limits struct {
	MaxBytes int64
	MaxRows  int
}

// DefaultLimits returns the limits used by the web upload.
func DefaultLimits() Limits {
	return Limits{MaxBytes: DefaultMaxBytes, MaxRows: DefaultMaxRows}
}

// Parser turns uploads into tables under a set of limits.
type Parser struct {
	Limits Limits
}

// NewParser returns a Parser enforcing limits.
func NewParser(limits Limits) *Parser {
	return &Parser{Limits: limits}
}

// Parse reads r according to the extension of filename.
func (p *Parser) Parse(filename string, r io.Reader) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return p.ParseCSV(r)
	case ".xlsx":
		return p.ParseXLSX(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", filename)
	}
}

// Parse reads r with the default limits.
func Parse(filename string, r io.Reader) (*table.Table, error) {
	return NewParser(DefaultLimits()).Parse(filename, r)
}

// ParseCSV reads r with the default limits.
func ParseCSV(r io.Reader) (*table.Table, error) {
	return NewParser(DefaultLimits()).ParseCSV(r)
}

// ParseXLSX reads r with the default limits.
func ParseXLSX(r io.Reader) (*table.Table, error) {
	return NewParser(DefaultLimits()).ParseXLSX(r)
}

// readAll reads r while enforcing MaxBytes.
func (p *Parser) readAll(r io.Reader) ([]byte, error) {
	if p.Limits.MaxBytes <= 0 {
		data, err := io.ReadAll(r)
		return data, errors.Wrap(err, "reading upload")
	}

	data, err := io.ReadAll(io.LimitReader(r, p.Limits.MaxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading upload")
	}
	if int64(len(data)) > p.Limits.MaxBytes {
		return nil, errors.Wrapf(ErrTooLarge, "limit is %d bytes", p.Limits.MaxBytes)
	}
	return data, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// build converts raw records into a table. The first record is the header.
func (p *Parser) build(records [][]string) (*table.Table, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrEmpty
	}

	body := records[1:]
	if p.Limits.MaxRows > 0 && len(body) > p.Limits.MaxRows {
		return nil, errors.Wrapf(ErrTooManyRows, "%d rows, limit is %d", len(body), p.Limits.MaxRows)
	}

	header := headerNames(records[0])
	tbl, err := table.New(header...)
	if err != nil {
		return nil, err
	}

	for i, rec := range body {
		if len(rec) > len(header) {
			// Line numbers count the header as line 1.
			return nil, errors.Wrapf(ErrColumnCount,
				"expected %d fields in line %d, saw %d", len(header), i+2, len(rec))
		}
		cells := make([]table.Cell, len(header))
		for j := range cells {
			if j < len(rec) {
				cells[j] = parseCell(rec[j])
			}
		}
		if err := tbl.AppendRow(cells...); err != nil {
			return nil, err
		}
	}

	return tbl, nil
}

// headerNames fills blank names with "Unnamed: <index>" and renames
// duplicates to name.1, name.2, ...
func headerNames(raw []string) []string {
	names := make([]string, len(raw))
	seen := make(map[string]bool, len(raw))
	counts := make(map[string]int, len(raw))

	for i, h := range raw {
		if strings.TrimSpace(h) == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for seen[name] {
			counts[h]++
			name = h + "." + strconv.Itoa(counts[h])
		}
		seen[name] = true
		names[i] = name
	}

	return names
}

// parseCell types a raw field. Surrounding whitespace only matters for
// deciding the type; text keeps its original spelling.
func parseCell(raw string) table.Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return table.Empty()
	}
	if strings.ContainsAny(s, "xX_") {
		return table.Text(raw)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return table.Int(i)
	} else if errors.Is(err, strconv.ErrRange) {
		// Integers wider than int64 would lose digits as floats.
		return table.Text(raw)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return table.Number(f)
	}
	return table.Text(raw)
}

func checkEncoding(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, ErrEncoding
	}
	return data, nil
}
