package page

import (
	"html/template"

	"github.com/pakomoretlwe/profiler/internal/table"
)

// Builder appends blocks to a Page. The zero value is ready to use.
type Builder struct {
	page Page
}

// New returns a Builder for a page titled title.
func New(title string) *Builder {
	return &Builder{page: Page{Title: title}}
}

func (b *Builder) add(blk Block) *Builder {
	b.page.Blocks = append(b.page.Blocks, blk)
	return b
}

func (b *Builder) Title(s string) *Builder     { return b.add(Block{Kind: KindTitle, Text: s}) }
func (b *Builder) Header(s string) *Builder    { return b.add(Block{Kind: KindHeader, Text: s}) }
func (b *Builder) Subheader(s string) *Builder { return b.add(Block{Kind: KindSubheader, Text: s}) }
func (b *Builder) Text(s string) *Builder      { return b.add(Block{Kind: KindText, Text: s}) }
func (b *Builder) Divider() *Builder           { return b.add(Block{Kind: KindDivider}) }
func (b *Builder) Info(s string) *Builder      { return b.add(Block{Kind: KindInfo, Text: s}) }
func (b *Builder) Error(s string) *Builder     { return b.add(Block{Kind: KindError, Text: s}) }
func (b *Builder) Status(s string) *Builder    { return b.add(Block{Kind: KindStatus, Text: s}) }

// Field renders as "<label>: <value>" with a bold label.
func (b *Builder) Field(label, value string) *Builder {
	return b.add(Block{Kind: KindField, Text: label, Value: value})
}

// Image adds a captioned image.
func (b *Builder) Image(url, caption string) *Builder {
	return b.add(Block{Kind: KindImage, URL: url, Text: caption})
}

// Chart adds a pre-rendered SVG chart.
func (b *Builder) Chart(svg template.HTML, caption string) *Builder {
	return b.add(Block{Kind: KindChart, SVG: svg, Text: caption})
}

// Table adds t rendered as text. A nil table adds nothing.
func (b *Builder) Table(t *table.Table) *Builder {
	if t == nil {
		return b
	}
	recs := t.Records()
	return b.add(Block{Kind: KindTable, Columns: recs[0], Rows: recs[1:]})
}

// Radio adds a choice list submitted as field name. Changing the selection
// re-requests target and the response replaces the fragment with id swap.
func (b *Builder) Radio(label, name, target, swap string, opts []Option) *Builder {
	return b.add(Block{Kind: KindRadio, Text: label, Value: name, Target: target, ID: swap, Options: opts})
}

// Upload adds a file picker with a keyword box. Both are submitted together
// to target whenever either changes, and the response replaces swap.
func (b *Builder) Upload(label, target, swap, accept string) *Builder {
	return b.add(Block{Kind: KindUpload, Text: label, Target: target, ID: swap, Accept: accept})
}

// Links adds a row of anchors.
func (b *Builder) Links(links ...Link) *Builder {
	return b.add(Block{Kind: KindLinks, Links: links})
}

// Columns lays the given sub-pages out side by side.
func (b *Builder) Columns(parts ...*Page) *Builder {
	return b.add(Block{Kind: KindColumns, Parts: parts})
}

// Fragment nests a sub-page under id so it can be swapped on its own.
func (b *Builder) Fragment(id string, p *Page) *Builder {
	return b.add(Block{Kind: KindFragment, ID: id, Parts: []*Page{p}})
}

// Page returns the page built so far.
func (b *Builder) Page() *Page {
	out := b.page
	out.Blocks = append([]Block(nil), b.page.Blocks...)
	return &out
}
