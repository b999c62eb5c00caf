package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the only worksheet of an exported workbook.
const SheetName = "Data"

// XLSX writes records as a single-sheet workbook.
func XLSX(w io.Writer, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := Header(records)
	for col, key := range header {
		if err := setCell(f, col+1, 1, key); err != nil {
			return err
		}
	}
	for row, rec := range records {
		for col, key := range header {
			v, _ := rec.Get(key)
			if err := setCell(f, col+1, row+2, sheetValue(v)); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to address cell: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, v); err != nil {
		return fmt.Errorf("failed to set %s: %w", cell, err)
	}
	return nil
}

// Numbers and booleans stay typed so spreadsheet formulas work on them.
func sheetValue(v interface{}) interface{} {
	switch v.(type) {
	case int, int64, float64, float32, bool:
		return v
	}
	return Cell(v)
}
