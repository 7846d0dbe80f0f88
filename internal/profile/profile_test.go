package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sigtab/domain/core"
	"sigtab/domain/table"
)

func TestColumn_Summary(t *testing.T) {
	tab := table.New(4)
	col := int(tab.AddColumn("Region North"))
	tab.SetSampleSize(col, 150)
	tab.SetCell(col, 0, "10")
	tab.SetCell(col, 1, "20")
	tab.SetCell(col, 2, "30")
	// Row 3 stays empty and is excluded from the summary.

	p, err := Column(tab, col)
	assert.NoError(t, err)
	assert.Equal(t, table.ColumnID(col), p.Column)
	assert.Equal(t, "Region North", p.Title)
	assert.Equal(t, 150, p.SampleSize)
	assert.Equal(t, 3, p.ValidCells)
	assert.Equal(t, 20.0, p.Mean)
	assert.Equal(t, 20.0, p.Median)
	assert.Equal(t, 10.0, p.Min)
	assert.Equal(t, 30.0, p.Max)
	assert.InDelta(t, 8.165, p.StdDev, 0.001)
}

func TestColumn_EmptyColumn(t *testing.T) {
	tab := table.New(3)
	col := int(tab.AddColumn("Untouched"))

	p, err := Column(tab, col)
	assert.NoError(t, err)
	assert.Equal(t, 0, p.ValidCells)
	assert.Zero(t, p.Mean)
	assert.Zero(t, p.StdDev)
}

func TestColumn_OutOfBounds(t *testing.T) {
	tab := table.New(1)
	tab.AddColumn("only")

	_, err := Column(tab, 3)
	assert.Error(t, err)
	assert.True(t, core.IsStructuralViolation(err))
}

func TestTable_ProfilesAllColumns(t *testing.T) {
	tab := table.New(2)
	a := int(tab.AddColumn("a"))
	b := int(tab.AddColumn("b"))
	tab.SetCell(a, 0, "40")
	tab.SetCell(b, 0, "60")
	tab.SetCell(b, 1, "80")

	profiles, err := Table(tab)
	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, 1, profiles[0].ValidCells)
	assert.Equal(t, 2, profiles[1].ValidCells)
	assert.Equal(t, 70.0, profiles[1].Mean)
}
