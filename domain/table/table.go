package table

import (
	"sigtab/domain/core"
)

// Table is the canonical in-memory crosstab: an ordered set of columns
// sharing a common row count, rows positionally aligned across columns.
// Mutations happen in place; significance results are always recomputed from
// the current state, never cached here.
type Table struct {
	rows    int
	Columns []Column
}

// New creates an empty table with the given row count.
func New(rows int) *Table {
	if rows < 0 {
		rows = 0
	}
	return &Table{rows: rows}
}

// RowCount returns the number of rows every column holds.
func (t *Table) RowCount() int {
	return t.rows
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// AddColumn appends a column with the next sequential identity and a cell
// slice pre-sized to the current row count, all cells empty.
func (t *Table) AddColumn(title string) ColumnID {
	t.Columns = append(t.Columns, Column{
		Title: title,
		Cells: make([]string, t.rows),
	})
	return ColumnID(len(t.Columns) - 1)
}

// RemoveColumn removes the column at col. At least two columns must remain
// afterwards; a comparison needs two sides. Survivors keep their order, so
// their identities (and letters) re-derive from the new positions.
func (t *Table) RemoveColumn(col int) error {
	if col < 0 || col >= len(t.Columns) {
		return core.NewColumnBoundsError(col, len(t.Columns))
	}
	if len(t.Columns)-1 < 2 {
		return core.ErrTooFewColumns
	}
	t.Columns = append(t.Columns[:col], t.Columns[col+1:]...)
	return nil
}

// SetTitle updates a column's display title.
func (t *Table) SetTitle(col int, title string) error {
	if col < 0 || col >= len(t.Columns) {
		return core.NewColumnBoundsError(col, len(t.Columns))
	}
	t.Columns[col].Title = title
	return nil
}

// SetSampleSize sets a column's sample size. Non-positive values clear it,
// which silently excludes the column from testing rather than erroring.
func (t *Table) SetSampleSize(col int, n int) error {
	if col < 0 || col >= len(t.Columns) {
		return core.NewColumnBoundsError(col, len(t.Columns))
	}
	if n <= 0 {
		n = 0
	}
	t.Columns[col].SampleSize = n
	return nil
}

// SetCell writes a cell value. The value must be empty ("no data") or an
// integer percentage string of 1-3 digits in [0,100]. Rows grow on demand so
// the editor's open trailing entry row can always be written to.
func (t *Table) SetCell(col, row int, value string) error {
	if col < 0 || col >= len(t.Columns) {
		return core.NewColumnBoundsError(col, len(t.Columns))
	}
	if row < 0 {
		return core.NewRowBoundsError(row, t.rows)
	}
	if value != "" {
		if _, ok := ParseCell(value); !ok {
			return core.ErrInvalidPercent
		}
	}
	t.EnsureRows(row + 1)
	t.Columns[col].Cells[row] = value
	return nil
}

// EnsureRows grows every column to hold at least n rows.
func (t *Table) EnsureRows(n int) {
	if n <= t.rows {
		return
	}
	for i := range t.Columns {
		for len(t.Columns[i].Cells) < n {
			t.Columns[i].Cells = append(t.Columns[i].Cells, "")
		}
	}
	t.rows = n
}

// Cell returns the raw value at (col, row), or "" when out of range.
func (t *Table) Cell(col, row int) string {
	if col < 0 || col >= len(t.Columns) || row < 0 || row >= t.rows {
		return ""
	}
	return t.Columns[col].Cells[row]
}

// Value returns the parsed numeric value at (col, row). ok is false for
// missing, malformed or out-of-range cells.
func (t *Table) Value(col, row int) (float64, bool) {
	raw := t.Cell(col, row)
	if raw == "" {
		return 0, false
	}
	return ParseCell(raw)
}

// VisibleRowCount returns one more than the highest row index holding any
// non-empty value in any column: the editor always shows exactly one open
// trailing entry row for new data.
func (t *Table) VisibleRowCount() int {
	last := -1
	for _, col := range t.Columns {
		for row, cell := range col.Cells {
			if cell != "" && row > last {
				last = row
			}
		}
	}
	return last + 2
}

// Letters returns the display labels for the current column order.
func (t *Table) Letters() []string {
	letters := make([]string, len(t.Columns))
	for i := range t.Columns {
		letters[i] = ColumnID(i).Letter()
	}
	return letters
}
