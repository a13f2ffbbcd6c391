package table

import (
	"math"
	"strconv"
)

// Kind identifies which variant a Cell holds.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "empty"
	}
}

// Cell is a single table value: text, a number, or nothing.
type Cell struct {
	kind  Kind
	text  string
	num   float64
	whole int64
	exact bool
}

// Text returns a text cell.
func Text(s string) Cell { return Cell{kind: KindText, text: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{kind: KindNumber, num: f} }

// Int returns a numeric cell holding i exactly, beyond the 2^53 limit of a
// float64.
func Int(i int64) Cell { return Cell{kind: KindNumber, num: float64(i), whole: i, exact: true} }

// Empty returns a cell with no value.
func Empty() Cell { return Cell{} }

func (c Cell) Kind() Kind { return c.kind }

func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

// Float returns the numeric value and whether the cell holds one.
func (c Cell) Float() (float64, bool) {
	return c.num, c.kind == KindNumber
}

// Int returns the exact integer value and whether the cell was built by Int.
func (c Cell) Int() (int64, bool) {
	return c.whole, c.kind == KindNumber && c.exact
}

// String renders the cell in its canonical textual form. Whole numbers print
// without a fractional part, so 2024 renders as "2024".
func (c Cell) String() string {
	switch c.kind {
	case KindText:
		return c.text
	case KindNumber:
		if c.exact {
			return strconv.FormatInt(c.whole, 10)
		}
		return formatNumber(c.num)
	default:
		return ""
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
