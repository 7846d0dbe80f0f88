package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"sigtab/adapters/stats/engine"
	"sigtab/adapters/tabular"
	"sigtab/internal"
	"sigtab/internal/config"
	"sigtab/internal/profile"
	"sigtab/ports"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.Data.TableFile == "" {
		logger.Error("TABLE_FILE is required (path to a crosstab .xlsx or .csv)")
		os.Exit(1)
	}

	var reader ports.TableReader = tabular.NewTableReader(cfg.Data.TableFile)
	t, err := reader.ReadTable()
	if err != nil {
		logger.Error("Failed to read crosstab: %v", err)
		os.Exit(1)
	}

	eng := engine.New()
	result, err := eng.Annotate(context.Background(), t, cfg.Stats.ConfidenceLevel)
	if err != nil {
		logger.Error("Annotation failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Annotated %d columns x %d rows at %d%% confidence",
		t.ColumnCount(), t.RowCount(), cfg.Stats.ConfidenceLevel)

	// Header: letters and titles.
	fmt.Printf("%-8s", "")
	for i, col := range t.Columns {
		label := t.Letters()[i]
		if col.Title != "" {
			label = fmt.Sprintf("%s (%s)", label, col.Title)
		}
		fmt.Printf("%-24s", label)
	}
	fmt.Println()

	visible := t.VisibleRowCount()
	if visible > t.RowCount() {
		visible = t.RowCount()
	}
	for row := 0; row < visible; row++ {
		fmt.Printf("%-8s", fmt.Sprintf("Row %d", row+1))
		for col := range t.Columns {
			cell := t.Cell(col, row)
			if cell == "" {
				fmt.Printf("%-24s", "-")
				continue
			}
			annotation := result.Cell(row, col).Letters()
			if annotation != "" {
				cell = fmt.Sprintf("%s%%  >%s", cell, annotation)
			} else {
				cell = cell + "%"
			}
			fmt.Printf("%-24s", cell)
		}
		fmt.Println()
	}

	profiles, err := profile.Table(t)
	if err != nil {
		logger.Error("Profiling failed: %v", err)
		os.Exit(1)
	}
	fmt.Println()
	for _, p := range profiles {
		fmt.Printf("%s: n=%d valid=%d mean=%.1f median=%.1f sd=%.1f range=[%.0f, %.0f]\n",
			p.Column.Letter(), p.SampleSize, p.ValidCells, p.Mean, p.Median, p.StdDev, p.Min, p.Max)
	}
}
