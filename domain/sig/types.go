package sig

import (
	"strings"

	"sigtab/domain/core"
	"sigtab/domain/table"
)

// ConfidenceLevel is the closed set of supported two-tailed confidence
// levels. Each is bound to a fixed critical z-value; this is a design
// constant, not configuration.
type ConfidenceLevel int

const (
	Confidence95 ConfidenceLevel = 95
	Confidence90 ConfidenceLevel = 90
	Confidence80 ConfidenceLevel = 80
)

var criticalZ = map[ConfidenceLevel]float64{
	Confidence95: 1.96,
	Confidence90: 1.645,
	Confidence80: 1.282,
}

// CriticalZ returns the two-tailed critical z-value for the level, or 0 for
// an unknown level.
func (c ConfidenceLevel) CriticalZ() float64 {
	return criticalZ[c]
}

// Valid reports whether the level is one of the supported set.
func (c ConfidenceLevel) Valid() bool {
	_, ok := criticalZ[c]
	return ok
}

// Levels returns the supported levels from strictest to loosest.
func Levels() []ConfidenceLevel {
	return []ConfidenceLevel{Confidence95, Confidence90, Confidence80}
}

// ParseConfidenceLevel parses a percentage (e.g. 95) into a ConfidenceLevel.
func ParseConfidenceLevel(pct int) (ConfidenceLevel, error) {
	c := ConfidenceLevel(pct)
	if !c.Valid() {
		return 0, core.ErrInvalidConfidence
	}
	return c, nil
}

// Comparison is the per-pair detail behind one annotation decision: the
// z statistic and two-tailed p-value of a single pairwise test. Direction is
// the caller's: the current cell was the strictly greater side.
type Comparison struct {
	Against     table.ColumnID `json:"against"`
	ZStat       float64        `json:"z_stat"`
	PValue      float64        `json:"p_value"`
	Significant bool           `json:"significant"`
}

// CellResult holds, for one (row, column) cell, the identities of the other
// columns in the same row that this cell's value significantly exceeds.
// The relation is asymmetric: "A > B" is recorded only on A's result.
type CellResult struct {
	Row         int              `json:"row"`
	Column      table.ColumnID   `json:"column"`
	HigherThan  []table.ColumnID `json:"higher_than,omitempty"`
	Comparisons []Comparison     `json:"comparisons,omitempty"`
}

// Letters renders the out-performed column identities as display letters in
// table order, e.g. "BC".
func (r CellResult) Letters() string {
	var b strings.Builder
	for _, id := range r.HigherThan {
		b.WriteString(id.Letter())
	}
	return b.String()
}

// Contains reports whether the result set includes the given identity.
func (r CellResult) Contains(id table.ColumnID) bool {
	for _, other := range r.HigherThan {
		if other == id {
			return true
		}
	}
	return false
}

// TableResult is the full annotation matrix for a table at one confidence
// level: Cells[row][col] mirrors the table's layout. It is a pure function of
// the table passed to the engine at recompute time.
type TableResult struct {
	Level      ConfidenceLevel `json:"level"`
	Cells      [][]CellResult  `json:"cells"`
	ComputedAt core.Timestamp  `json:"computed_at"`
}

// Cell returns the result for (row, col), or a zero result when out of range.
func (tr *TableResult) Cell(row, col int) CellResult {
	if row < 0 || row >= len(tr.Cells) || col < 0 || col >= len(tr.Cells[row]) {
		return CellResult{}
	}
	return tr.Cells[row][col]
}
