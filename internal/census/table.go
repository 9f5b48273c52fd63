package census

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/belugatempo-dot/census-dashboard/internal/fetcher"
)

// Cell is one table value. The API sends strings, but null and bare numbers
// show up for suppressed or computed estimates; both decode to their text.
type Cell string

// UnmarshalJSON implements json.Unmarshaler.
func (c *Cell) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*c = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Cell(s)
	default:
		*c = Cell(b)
	}
	return nil
}

// Table is a decoded API response. Header is kept for diagnostics only;
// parsers address columns by position.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Row returns data row i, or nil when out of range.
func (t *Table) Row(i int) []string {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i]
}

// DecodeTable reads a [headerRow, ...dataRows] JSON document. An empty
// document or a header-only table yields a table with no rows.
func DecodeTable(ctx context.Context, r io.Reader) (*Table, error) {
	t := &Table{}
	err := fetcher.DecodeRows(ctx, r, func(i int, cells []Cell) error {
		row := make([]string, len(cells))
		for j, c := range cells {
			row[j] = string(c)
		}
		if i == 0 {
			t.Header = row
			return nil
		}
		t.Rows = append(t.Rows, row)
		return nil
	})
	if err != nil {
		return nil, eris.Wrap(err, "census: decode table")
	}
	return t, nil
}
