package table

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_String(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"text", Text("Kiln"), "Kiln"},
		{"integer", Number(2024), "2024"},
		{"negative", Number(-7), "-7"},
		{"fraction", Number(3.5), "3.5"},
		{"small fraction", Number(0.94), "0.94"},
		{"empty", Empty(), ""},
		{"wide integer", Int(12345678901234567), "12345678901234567"},
		{"negative integer", Int(-42), "-42"},
		{"nan", Number(math.NaN()), "nan"},
		{"inf", Number(math.Inf(1)), "inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.String())
		})
	}
}

func TestCell_Kinds(t *testing.T) {
	assert.Equal(t, KindText, Text("").Kind())
	assert.Equal(t, KindNumber, Number(0).Kind())
	assert.Equal(t, KindEmpty, Empty().Kind())
	assert.True(t, Empty().IsEmpty())
	assert.False(t, Text("").IsEmpty())

	f, ok := Number(1.25).Float()
	assert.True(t, ok)
	assert.InDelta(t, 1.25, f, 0)

	_, ok = Text("1.25").Float()
	assert.False(t, ok)

	i, ok := Int(12345678901234567).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(12345678901234567), i)
	assert.Equal(t, KindNumber, Int(1).Kind())

	_, ok = Number(2024).Int()
	assert.False(t, ok)
}

func TestNew_DuplicateColumn(t *testing.T) {
	_, err := New("Title", "Year", "Title")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateColumn))
	assert.ErrorContains(t, err, `"Title"`)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew("a", "a") })
}

func TestAppendRow_WidthMismatch(t *testing.T) {
	tbl := MustNew("A", "B")

	err := tbl.AppendRow(Text("only one"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRowWidth))
	assert.Equal(t, 0, tbl.Len())
}

func TestRow_Get(t *testing.T) {
	tbl := MustNew("Title", "Year")
	require.NoError(t, tbl.AppendRow(Text("Study"), Number(2024)))

	row := tbl.Rows()[0]
	assert.Equal(t, "Study", row.Get("Title").String())
	assert.Equal(t, "2024", row.Get("Year").String())
	assert.True(t, row.Get("Missing").IsEmpty())
	assert.True(t, Row{}.Get("Title").IsEmpty())
}

func TestTable_CopiesAreIndependent(t *testing.T) {
	tbl := MustNew("A")
	require.NoError(t, tbl.AppendRow(Text("x")))

	cols := tbl.Columns()
	cols[0] = "changed"
	assert.Equal(t, []string{"A"}, tbl.Columns())

	cells := tbl.Rows()[0].Cells()
	cells[0] = Text("changed")
	assert.Equal(t, "x", tbl.Rows()[0].Get("A").String())
}

func TestTable_Records(t *testing.T) {
	tbl := MustNew("Title", "Year", "Note")
	require.NoError(t, tbl.AppendRow(Text("Study"), Number(2024), Empty()))

	assert.Equal(t, [][]string{
		{"Title", "Year", "Note"},
		{"Study", "2024", ""},
	}, tbl.Records())
}
