package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"sigtab/domain/core"
	apperrors "sigtab/internal/errors"
)

func writeCSVFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crosstab.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestReadTable_CSV(t *testing.T) {
	path := writeCSVFixture(t, `Metric,Male,Female
Base,200,180
Awareness,60,45
Consideration,52,48
`)

	tab, err := NewTableReader(path).ReadTable()
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if tab.ColumnCount() != 2 {
		t.Fatalf("Expected 2 columns, got %d", tab.ColumnCount())
	}
	if tab.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", tab.RowCount())
	}
	if tab.Columns[0].Title != "Male" || tab.Columns[1].Title != "Female" {
		t.Errorf("Unexpected titles: %q, %q", tab.Columns[0].Title, tab.Columns[1].Title)
	}
	if tab.Columns[0].SampleSize != 200 || tab.Columns[1].SampleSize != 180 {
		t.Errorf("Unexpected sample sizes: %d, %d", tab.Columns[0].SampleSize, tab.Columns[1].SampleSize)
	}
	if v, ok := tab.Value(0, 0); !ok || v != 60 {
		t.Errorf("Expected cell (A, row 0) = 60, got (%f, %v)", v, ok)
	}
	if v, ok := tab.Value(1, 1); !ok || v != 48 {
		t.Errorf("Expected cell (B, row 1) = 48, got (%f, %v)", v, ok)
	}
}

func TestReadTable_CSVMalformedCellsDegrade(t *testing.T) {
	path := writeCSVFixture(t, `Metric,North,South,East
Base,150,abc,120
Q1,55%,40,n/a
Q2,,30,25
`)

	tab, err := NewTableReader(path).ReadTable()
	if err != nil {
		t.Fatalf("Malformed cells must not fail the read: %v", err)
	}

	// Unparseable sample size leaves the column unset (excluded from tests).
	if tab.Columns[1].SampleSize != 0 {
		t.Errorf("Expected unset sample size for 'abc', got %d", tab.Columns[1].SampleSize)
	}
	// "55%" and "n/a" degrade to no-data; valid neighbors survive.
	if _, ok := tab.Value(0, 0); ok {
		t.Error("Malformed percentage should be empty")
	}
	if _, ok := tab.Value(2, 0); ok {
		t.Error("'n/a' should be empty")
	}
	if v, ok := tab.Value(1, 0); !ok || v != 40 {
		t.Errorf("Expected valid neighbor 40, got (%f, %v)", v, ok)
	}
	if _, ok := tab.Value(0, 1); ok {
		t.Error("Blank cell should stay empty")
	}
}

func TestReadTable_CSVTooFewColumns(t *testing.T) {
	path := writeCSVFixture(t, `Metric,Only
Base,100
Q1,50
`)
	_, err := NewTableReader(path).ReadTable()
	if err == nil {
		t.Fatal("A single-subgroup crosstab should be rejected")
	}
	if !core.IsStructuralViolation(err) {
		t.Errorf("Expected a structural violation, got %v", err)
	}
	if code := apperrors.GetCode(err); code != apperrors.CodeStructuralViolation {
		t.Errorf("Expected code %s, got %s", apperrors.CodeStructuralViolation, code)
	}
}

func TestReadTable_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crosstab.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Metric", "18-34", "35-54", "55+"},
		{"Base", 300, 280, 260},
		{"Brand awareness", 70, 55, 50},
		{"Purchase intent", 40, 38, nil},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()

	tab, err := NewTableReader(path).ReadTable()
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if tab.ColumnCount() != 3 {
		t.Fatalf("Expected 3 columns, got %d", tab.ColumnCount())
	}
	if tab.Columns[2].Title != "55+" {
		t.Errorf("Unexpected title: %q", tab.Columns[2].Title)
	}
	if tab.Columns[0].SampleSize != 300 {
		t.Errorf("Expected sample size 300, got %d", tab.Columns[0].SampleSize)
	}
	if v, ok := tab.Value(0, 0); !ok || v != 70 {
		t.Errorf("Expected cell (A, row 0) = 70, got (%f, %v)", v, ok)
	}
	if _, ok := tab.Value(2, 1); ok {
		t.Error("Missing Excel cell should be empty")
	}
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := NewTableReader("/nonexistent/crosstab.xlsx").ReadTable()
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if code := apperrors.GetCode(err); code != apperrors.CodeFileError {
		t.Errorf("Expected code %s, got %s", apperrors.CodeFileError, code)
	}
}
