package testkit

import (
	"fmt"
	"math/rand"

	"sigtab/domain/table"
)

// Kit generates deterministic synthetic crosstab tables for tests. The same
// seed always yields the same table.
type Kit struct {
	rng *rand.Rand
}

// New creates a generator kit with a fixed seed.
func New(seed int64) *Kit {
	return &Kit{rng: rand.New(rand.NewSource(seed))}
}

// Crosstab builds a table with the given number of subgroup columns and
// rows, every column at the same sample size and every cell a random
// percentage in [0,100].
func (k *Kit) Crosstab(columns, rows, sampleSize int) *table.Table {
	t := table.New(rows)
	for c := 0; c < columns; c++ {
		col := int(t.AddColumn(fmt.Sprintf("Subgroup %s", table.ColumnID(c).Letter())))
		t.SetSampleSize(col, sampleSize)
		for r := 0; r < rows; r++ {
			t.SetCell(col, r, fmt.Sprintf("%d", k.rng.Intn(101)))
		}
	}
	return t
}

// CrosstabWithGap builds a crosstab and then plants a wide, clearly
// significant gap in row 0: column 0 at highPct, every other column at
// lowPct. Useful for asserting that annotation picks up a known effect.
func (k *Kit) CrosstabWithGap(columns, rows, sampleSize, highPct, lowPct int) *table.Table {
	t := k.Crosstab(columns, rows, sampleSize)
	t.SetCell(0, 0, fmt.Sprintf("%d", highPct))
	for c := 1; c < columns; c++ {
		t.SetCell(c, 0, fmt.Sprintf("%d", lowPct))
	}
	return t
}
