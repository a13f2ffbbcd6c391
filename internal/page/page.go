// Package page collects what a request wants displayed as an ordered list of
// typed blocks. Handlers fill a Builder and hand the finished Page to the
// HTML templates, so no component writes to shared display state.
package page

import "html/template"

// Kind names the type of a Block. Templates switch on it.
type Kind string

const (
	KindTitle     Kind = "title"
	KindHeader    Kind = "header"
	KindSubheader Kind = "subheader"
	KindText      Kind = "text"
	KindField     Kind = "field"
	KindImage     Kind = "image"
	KindDivider   Kind = "divider"
	KindColumns   Kind = "columns"
	KindChart     Kind = "chart"
	KindTable     Kind = "table"
	KindInfo      Kind = "info"
	KindError     Kind = "error"
	KindStatus    Kind = "status"
	KindRadio     Kind = "radio"
	KindLinks     Kind = "links"
	KindFragment  Kind = "fragment"
	KindUpload    Kind = "upload"
)

// Link is an anchor in a Links block.
type Link struct {
	Label string
	URL   string
}

// Option is one choice of a Radio block.
type Option struct {
	Label    string
	Value    string
	Selected bool
}

// Block is a single displayable element.
type Block struct {
	Kind Kind

	// Text is the body for text-like blocks, the label for fields, the alt
	// text for images, and the caption for charts.
	Text string
	// Value is the bold-label value of a Field block, or the form field
	// name of a Radio block.
	Value string
	// URL is the source of an Image block.
	URL string
	// ID anchors Fragment and Radio blocks so HTMX can swap them.
	ID string
	// Target is the endpoint a Radio or Upload block submits to.
	Target string
	// Accept lists the file extensions an Upload block offers.
	Accept string

	SVG     template.HTML
	Columns []string
	Rows    [][]string
	Options []Option
	Links   []Link
	Parts   []*Page
}

// Page is the finished, ordered list of blocks.
type Page struct {
	Title  string
	Blocks []Block
}

// Len returns the number of top-level blocks.
func (p *Page) Len() int { return len(p.Blocks) }

// Find returns the top-level blocks of kind k in order.
func (p *Page) Find(k Kind) []Block {
	var out []Block
	for _, b := range p.Blocks {
		if b.Kind == k {
			out = append(out, b)
		}
	}
	return out
}
