package table

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the rows of t in which any cell, rendered as text, contains
// keyword under Unicode case folding. An empty keyword means no filter and
// returns t itself. t is never modified.
func Filter(t *Table, keyword string) *Table {
	if keyword == "" {
		return t
	}

	// A Caser is stateful, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(keyword)
	out := t.derive(0)
	for _, r := range t.rows {
		if rowContains(r, needle, fold) {
			out.rows = append(out.rows, r)
		}
	}
	return out
}

// rowContains reports whether any folded cell of r contains the folded needle.
func rowContains(r Row, needle string, fold cases.Caser) bool {
	for _, c := range r.cells {
		if strings.Contains(fold.String(c.String()), needle) {
			return true
		}
	}
	return false
}
