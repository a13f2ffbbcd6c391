// Package table holds parsed tabular data and the keyword filter applied to it.
package table

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrRowWidth        = errors.New("row width does not match columns")
)

// Row is one record of a Table. Cells are aligned with the table's columns.
type Row struct {
	cols  *columns
	cells []Cell
}

// Get returns the cell under column name, or an Empty cell when the column
// does not exist.
func (r Row) Get(name string) Cell {
	if r.cols == nil {
		return Empty()
	}
	i, ok := r.cols.index[name]
	if !ok {
		return Empty()
	}
	return r.cells[i]
}

// Cells returns a copy of the row's cells in column order.
func (r Row) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// Strings returns each cell rendered as text, in column order.
func (r Row) Strings() []string {
	out := make([]string, len(r.cells))
	for i, c := range r.cells {
		out[i] = c.String()
	}
	return out
}

type columns struct {
	names []string
	index map[string]int
}

// Table is an ordered set of rows sharing a fixed set of uniquely named
// columns.
type Table struct {
	cols *columns
	rows []Row
}

// New creates an empty table with the given column names.
func New(names ...string) (*Table, error) {
	cols := &columns{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, n := range names {
		if _, dup := cols.index[n]; dup {
			return nil, errors.Wrapf(ErrDuplicateColumn, "column %q", n)
		}
		cols.names[i] = n
		cols.index[n] = i
	}
	return &Table{cols: cols}, nil
}

// MustNew is New for literal tables; it panics on a duplicate column.
func MustNew(names ...string) *Table {
	t, err := New(names...)
	if err != nil {
		panic(err)
	}
	return t
}

// AppendRow adds a row. The number of cells must equal the number of columns.
func (t *Table) AppendRow(cells ...Cell) error {
	if len(cells) != len(t.cols.names) {
		return errors.Wrapf(ErrRowWidth, "got %d cells, want %d", len(cells), len(t.cols.names))
	}
	row := Row{cols: t.cols, cells: make([]Cell, len(cells))}
	copy(row.cells, cells)
	t.rows = append(t.rows, row)
	return nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols.names))
	copy(out, t.cols.names)
	return out
}

// Rows returns the table's rows in order. The slice is a copy; rows are
// immutable values.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Records returns the header followed by every row rendered as text.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.rows)+1)
	out = append(out, t.Columns())
	for _, r := range t.rows {
		out = append(out, r.Strings())
	}
	return out
}

// derive returns an empty table sharing t's columns.
func (t *Table) derive(capacity int) *Table {
	return &Table{cols: t.cols, rows: make([]Row, 0, capacity)}
}
