package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Menu_Data"

// WriteExcel persists the projected rows as a single-sheet workbook.
// The header row comes from the caller's column order; nil cells are
// left empty. Styling stays minimal: bold header and capped widths.
func WriteExcel(path string, columns []string, rows [][]*string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, *v); err != nil {
				return err
			}
		}
	}

	if err := styleHeader(f, columns, rows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func styleHeader(f *excelize.File, columns []string, rows [][]*string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	end, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", end, style); err != nil {
		return err
	}

	for i, col := range columns {
		width := len(col)
		for _, row := range rows {
			if v := row[i]; v != nil && len(*v) > width {
				width = len(*v)
			}
		}
		if width > 50 {
			width = 50
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width+2)); err != nil {
			return err
		}
	}
	return nil
}
