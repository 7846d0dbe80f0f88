package ports

import (
	"context"

	"sigtab/domain/sig"
	"sigtab/domain/table"
)

// Annotator is the significance-testing port consumed by editing surfaces.
// Implementations must be pure: results are a deterministic function of the
// table passed in, with no retained state between calls.
type Annotator interface {
	// SignificantlyHigherThan returns the other-column identities the cell at
	// (row, col) significantly exceeds, in table order.
	SignificantlyHigherThan(t *table.Table, row, col int, level sig.ConfidenceLevel) ([]table.ColumnID, error)

	// Annotate recomputes the full annotation matrix for the table.
	Annotate(ctx context.Context, t *table.Table, level sig.ConfidenceLevel) (*sig.TableResult, error)
}
