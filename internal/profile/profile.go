package profile

import (
	"sigtab/domain/core"
	"sigtab/domain/table"

	"github.com/montanaflynn/stats"
)

// ColumnProfile summarizes the valid cells of one column, for display next
// to the significance annotations.
type ColumnProfile struct {
	Column     table.ColumnID `json:"column"`
	Title      string         `json:"title"`
	SampleSize int            `json:"sample_size"`
	ValidCells int            `json:"valid_cells"`
	Mean       float64        `json:"mean"`
	Median     float64        `json:"median"`
	StdDev     float64        `json:"std_dev"`
	Min        float64        `json:"min"`
	Max        float64        `json:"max"`
}

// Column profiles a single column. A column with no valid cells profiles to
// a zero summary, not an error; only an out-of-bounds index is a caller bug.
func Column(t *table.Table, col int) (ColumnProfile, error) {
	if col < 0 || col >= t.ColumnCount() {
		return ColumnProfile{}, core.NewColumnBoundsError(col, t.ColumnCount())
	}

	c := t.Columns[col]
	p := ColumnProfile{
		Column:     table.ColumnID(col),
		Title:      c.Title,
		SampleSize: c.SampleSize,
	}

	var values []float64
	for _, raw := range c.Cells {
		if v, ok := table.ParseCell(raw); ok {
			values = append(values, v)
		}
	}
	p.ValidCells = len(values)
	if len(values) == 0 {
		return p, nil
	}

	p.Mean, _ = stats.Mean(values)
	p.Median, _ = stats.Median(values)
	p.StdDev, _ = stats.StandardDeviation(values)
	p.Min, _ = stats.Min(values)
	p.Max, _ = stats.Max(values)
	return p, nil
}

// Table profiles every column of the table in order.
func Table(t *table.Table) ([]ColumnProfile, error) {
	profiles := make([]ColumnProfile, t.ColumnCount())
	for col := 0; col < t.ColumnCount(); col++ {
		p, err := Column(t, col)
		if err != nil {
			return nil, err
		}
		profiles[col] = p
	}
	return profiles, nil
}
