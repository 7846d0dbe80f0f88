package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sigtab/domain/core"
	"sigtab/domain/sig"
	"sigtab/domain/table"
)

// SignificanceEngine decides, per cell, which other cells in the same row it
// significantly exceeds. It holds no state: every result is a deterministic
// pure function of the table passed to it at call time.
type SignificanceEngine struct{}

// New creates a new significance engine
func New() *SignificanceEngine {
	return &SignificanceEngine{}
}

// SignificantlyHigherThan returns the identities of the other columns whose
// value the cell at (row, col) significantly exceeds, in table order.
// Out-of-bounds indexes and tables with fewer than two columns are caller
// bugs and fail fast; an invalid current cell or sample size degrades to an
// empty set.
func (e *SignificanceEngine) SignificantlyHigherThan(t *table.Table, row, col int, level sig.ConfidenceLevel) ([]table.ColumnID, error) {
	result, err := e.compareCell(t, row, col, level)
	if err != nil {
		return nil, err
	}
	return result.HigherThan, nil
}

// Annotate recomputes the full annotation matrix for the table at the given
// confidence level. Rows are independent, so they are computed concurrently;
// each goroutine writes only its own row slot, keeping the output
// deterministic.
func (e *SignificanceEngine) Annotate(ctx context.Context, t *table.Table, level sig.ConfidenceLevel) (*sig.TableResult, error) {
	if err := checkTable(t, level); err != nil {
		return nil, err
	}

	rows := t.RowCount()
	cols := t.ColumnCount()
	cells := make([][]sig.CellResult, rows)

	g, ctx := errgroup.WithContext(ctx)
	for row := 0; row < rows; row++ {
		row := row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rowResults := make([]sig.CellResult, cols)
			for col := 0; col < cols; col++ {
				result, err := e.compareCell(t, row, col, level)
				if err != nil {
					return err
				}
				rowResults[col] = result
			}
			cells[row] = rowResults
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &sig.TableResult{
		Level:      level,
		Cells:      cells,
		ComputedAt: core.Now(),
	}, nil
}

// compareCell runs the pairwise tests for one cell against every other
// column in its row.
func (e *SignificanceEngine) compareCell(t *table.Table, row, col int, level sig.ConfidenceLevel) (sig.CellResult, error) {
	if err := checkTable(t, level); err != nil {
		return sig.CellResult{}, err
	}
	if row < 0 || row >= t.RowCount() {
		return sig.CellResult{}, core.NewRowBoundsError(row, t.RowCount())
	}
	if col < 0 || col >= t.ColumnCount() {
		return sig.CellResult{}, core.NewColumnBoundsError(col, t.ColumnCount())
	}

	result := sig.CellResult{Row: row, Column: table.ColumnID(col)}

	value, ok := t.Value(col, row)
	n := t.Columns[col].SampleSize
	if !ok || n <= 0 {
		// Missing or malformed data never claims significance and never errors.
		return result, nil
	}

	criticalZ := level.CriticalZ()
	for other := 0; other < t.ColumnCount(); other++ {
		if other == col {
			continue
		}
		otherValue, ok := t.Value(other, row)
		otherN := t.Columns[other].SampleSize
		if !ok || otherN <= 0 {
			continue
		}
		// Only strictly-greater relationships are ever recorded; ties and
		// lower values keep the output relation asymmetric.
		if value <= otherValue {
			continue
		}

		z, valid := ZStatistic(value, n, otherValue, otherN)
		if !valid {
			continue
		}
		significant := z > criticalZ
		result.Comparisons = append(result.Comparisons, sig.Comparison{
			Against:     table.ColumnID(other),
			ZStat:       z,
			PValue:      PValue(z),
			Significant: significant,
		})
		if significant {
			result.HigherThan = append(result.HigherThan, table.ColumnID(other))
		}
	}

	return result, nil
}

func checkTable(t *table.Table, level sig.ConfidenceLevel) error {
	if t.ColumnCount() < 2 {
		return core.ErrTooFewColumns
	}
	if !level.Valid() {
		return core.ErrInvalidConfidence
	}
	return nil
}
