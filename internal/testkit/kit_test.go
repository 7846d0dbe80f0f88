package testkit

import (
	"testing"

	"sigtab/domain/table"
)

func TestCrosstab_Deterministic(t *testing.T) {
	first := New(42).Crosstab(4, 6, 200)
	second := New(42).Crosstab(4, 6, 200)

	if first.ColumnCount() != 4 || first.RowCount() != 6 {
		t.Fatalf("Unexpected shape: %d columns, %d rows", first.ColumnCount(), first.RowCount())
	}
	for col := 0; col < 4; col++ {
		if first.Columns[col].SampleSize != 200 {
			t.Errorf("Column %d: expected sample size 200, got %d", col, first.Columns[col].SampleSize)
		}
		for row := 0; row < 6; row++ {
			a := first.Cell(col, row)
			b := second.Cell(col, row)
			if a != b {
				t.Errorf("Cell (%d,%d): %q != %q across same-seed runs", col, row, a, b)
			}
			if _, ok := table.ParseCell(a); !ok {
				t.Errorf("Cell (%d,%d): generated value %q is not a valid percentage", col, row, a)
			}
		}
	}
}

func TestCrosstab_SeedsDiffer(t *testing.T) {
	first := New(1).Crosstab(3, 10, 100)
	second := New(2).Crosstab(3, 10, 100)

	same := true
	for col := 0; col < 3 && same; col++ {
		for row := 0; row < 10; row++ {
			if first.Cell(col, row) != second.Cell(col, row) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Different seeds produced identical tables")
	}
}

func TestCrosstabWithGap(t *testing.T) {
	tab := New(7).CrosstabWithGap(3, 4, 400, 75, 40)

	if got := tab.Cell(0, 0); got != "75" {
		t.Errorf("Expected planted high cell 75, got %q", got)
	}
	for col := 1; col < 3; col++ {
		if got := tab.Cell(col, 0); got != "40" {
			t.Errorf("Column %d: expected planted low cell 40, got %q", col, got)
		}
	}
}
