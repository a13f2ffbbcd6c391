package dataset

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/pakomoretlwe/profiler/internal/table"
)

// ParseXLSX reads the first sheet of an Excel workbook into a table.
func (p *Parser) ParseXLSX(r io.Reader) (*table.Table, error) {
	data, err := p.readAll(r)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "opening workbook")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.Wrap(ErrEmpty, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "reading sheet %q", sheet)
	}

	return p.build(rows)
}
