package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakomoretlwe/profiler/internal/table"
)

func TestBuilder_Order(t *testing.T) {
	p := New("Profile").
		Title("Pako").
		Header("Overview").
		Field("Name", "Pako").
		Divider().
		Info("upload something").
		Page()

	require.Equal(t, 5, p.Len())
	assert.Equal(t, "Profile", p.Title)

	kinds := make([]Kind, 0, p.Len())
	for _, b := range p.Blocks {
		kinds = append(kinds, b.Kind)
	}
	assert.Equal(t, []Kind{KindTitle, KindHeader, KindField, KindDivider, KindInfo}, kinds)

	field := p.Find(KindField)[0]
	assert.Equal(t, "Name", field.Text)
	assert.Equal(t, "Pako", field.Value)
}

func TestBuilder_Table(t *testing.T) {
	tbl := table.MustNew("Title", "Year")
	require.NoError(t, tbl.AppendRow(table.Text("Kiln"), table.Number(2024)))

	p := New("").Table(tbl).Table(nil).Page()

	require.Equal(t, 1, p.Len())
	blk := p.Blocks[0]
	assert.Equal(t, []string{"Title", "Year"}, blk.Columns)
	assert.Equal(t, [][]string{{"Kiln", "2024"}}, blk.Rows)
}

func TestBuilder_EmptyTableKeepsColumns(t *testing.T) {
	p := New("").Table(table.MustNew("Title")).Page()

	require.Equal(t, 1, p.Len())
	assert.Equal(t, []string{"Title"}, p.Blocks[0].Columns)
	assert.Empty(t, p.Blocks[0].Rows)
}

func TestBuilder_PageIsSnapshot(t *testing.T) {
	b := New("")
	b.Text("one")
	snap := b.Page()
	b.Text("two")

	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, 2, b.Page().Len())
}

func TestBuilder_Nested(t *testing.T) {
	left := New("").Subheader("Technical").Page()
	right := New("").Subheader("Business").Page()

	p := New("").
		Columns(left, right).
		Fragment("models", New("").Text("chart").Page()).
		Page()

	cols := p.Find(KindColumns)
	require.Len(t, cols, 1)
	assert.Len(t, cols[0].Parts, 2)

	frag := p.Find(KindFragment)
	require.Len(t, frag, 1)
	assert.Equal(t, "models", frag[0].ID)
}

func TestBuilder_ZeroValue(t *testing.T) {
	var b Builder
	b.Status("Showing all publications")
	assert.Equal(t, "Showing all publications", b.Page().Find(KindStatus)[0].Text)
}

func TestBuilder_Upload(t *testing.T) {
	p := New("").Upload("Upload a CSV of Publications", "/publications", "publications", ".csv").Page()

	blk := p.Find(KindUpload)[0]
	assert.Equal(t, "/publications", blk.Target)
	assert.Equal(t, "publications", blk.ID)
	assert.Equal(t, ".csv", blk.Accept)
}

func TestBuilder_Radio(t *testing.T) {
	p := New("").Radio("Select Metric", "metric", "/models", "models", []Option{
		{Label: "RMSE", Value: "rmse", Selected: true},
		{Label: "R2", Value: "r2"},
	}).Page()

	blk := p.Find(KindRadio)[0]
	assert.Equal(t, "metric", blk.Value)
	assert.Equal(t, "/models", blk.Target)
	require.Len(t, blk.Options, 2)
	assert.True(t, blk.Options[0].Selected)
}
