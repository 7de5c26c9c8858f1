package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/stats"
)

var tableHeader = []string{"Hours", "Male", "Female", "Difference", "Lights"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CSV writes the filtered subset, one row per sample.
func CSV(w io.Writer, subset []dataset.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range subset {
		row := []string{
			formatFloat(r.Hours),
			formatFloat(r.MAvg),
			formatFloat(r.FAvg),
			formatFloat(r.Diff()),
			r.Lights.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

const (
	dataSheet  = "Filtered"
	statsSheet = "Stats"
)

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// XLSX writes the filtered subset and its summary as a two-sheet workbook.
func XLSX(w io.Writer, subset []dataset.Record, sum stats.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	header := make([]any, len(tableHeader))
	for i, h := range tableHeader {
		header[i] = h
	}
	if err := setRow(f, dataSheet, 1, header...); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(tableHeader), 1)
	if err := f.SetCellStyle(dataSheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	for i, r := range subset {
		if err := setRow(f, dataSheet, i+2, r.Hours, r.MAvg, r.FAvg, r.Diff(), r.Lights.String()); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	if err := f.SetPanes(dataSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	rows := [][]any{
		{"Statistic", "Value"},
		{"Average male activity", sum.Male.String()},
		{"Average female activity", sum.Female.String()},
		{"Average difference", sum.Diff.String()},
		{"Samples", sum.Count},
	}
	for i, r := range rows {
		if err := setRow(f, statsSheet, i+1, r...); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}
	if err := f.SetCellStyle(statsSheet, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("style stats header: %w", err)
	}
	if err := f.SetColWidth(statsSheet, "A", "A", 26); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
