package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"sigtab/domain/core"
	"sigtab/domain/table"
	apperrors "sigtab/internal/errors"
)

// TableReader reads a survey crosstab from an Excel or CSV file into the
// in-memory table model.
//
// Expected layout:
//
//	row 1: row-label header, then one title per subgroup column
//	row 2: base label, then one sample size per column (blank = unset)
//	row 3+: row label, then one integer percentage cell per column
//
// Malformed numeric cells degrade to "no data" rather than failing the read;
// incomplete survey exports are the norm, not an error.
type TableReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewTableReader creates a reader that handles both Excel and CSV files.
func NewTableReader(filePath string) *TableReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &TableReader{filePath: filePath, fileType: fileType}
}

// ReadTable reads the crosstab file into a table.
func (r *TableReader) ReadTable() (*table.Table, error) {
	log.Printf("[TableReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		return nil, apperrors.FileError(r.filePath, err)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

func (r *TableReader) readExcel() (*table.Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, apperrors.FileError(r.filePath, err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	log.Printf("[TableReader] Sheet1 read in %.2fms (%d rows)",
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

func (r *TableReader) readCSV() (*table.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, apperrors.FileError(r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	startTime := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[TableReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// processRows converts raw string rows into the table model. The first cell
// of every row is the row label and is skipped.
func (r *TableReader) processRows(rows [][]string) (*table.Table, error) {
	if len(rows) < 2 {
		return nil, apperrors.StructuralViolation("crosstab must have a title row and a sample size row", nil)
	}

	titleRow := rows[0]
	if len(titleRow) < 3 {
		return nil, apperrors.StructuralViolation(
			fmt.Sprintf("crosstab must have at least two subgroup columns, found %d", len(titleRow)-1),
			core.ErrTooFewColumns)
	}
	baseRow := rows[1]
	dataRows := rows[2:]

	t := table.New(len(dataRows))

	for i := 1; i < len(titleRow); i++ {
		col := int(t.AddColumn(strings.TrimSpace(titleRow[i])))

		if i < len(baseRow) {
			if n, ok := table.ParseSampleSize(strings.TrimSpace(baseRow[i])); ok {
				// Cannot fail: col is in range and n is pre-validated.
				_ = t.SetSampleSize(col, n)
			} else if strings.TrimSpace(baseRow[i]) != "" {
				log.Printf("[TableReader] Column %s: unparseable sample size %q, leaving unset",
					table.ColumnID(col).Letter(), baseRow[i])
			}
		}

		for row, record := range dataRows {
			if i >= len(record) {
				continue
			}
			raw := strings.TrimSpace(record[i])
			if raw == "" {
				continue
			}
			if _, ok := table.ParseCell(raw); !ok {
				// Unparseable survey values are skipped, never fatal.
				log.Printf("[TableReader] Skipping malformed cell %q at row %d, column %s",
					raw, row, table.ColumnID(col).Letter())
				continue
			}
			// Cannot fail: raw passed ParseCell and (col, row) is in range.
			_ = t.SetCell(col, row, raw)
		}
	}

	log.Printf("[TableReader] Loaded crosstab: %d columns x %d rows", t.ColumnCount(), t.RowCount())
	return t, nil
}
