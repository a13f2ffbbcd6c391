package dataset

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/pakomoretlwe/profiler/internal/table"
)

// ParseCSV reads a comma-separated upload into a table.
func (p *Parser) ParseCSV(r io.Reader) (*table.Table, error) {
	data, err := p.readAll(r)
	if err != nil {
		return nil, err
	}
	data, err = checkEncoding(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV")
	}

	return p.build(records)
}
