// Package output serializes ledgers.
package output

import (
	"github.com/ukaji3/extrato-go/pkg/extrato/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single sheet written by ToXLSX.
const SheetName = "Ledger"

// DateFormat is the number format applied to the date column.
const DateFormat = "yyyy-mm-dd"

// ToXLSX writes a ledger as a one-sheet workbook with a header row.
func ToXLSX(l *models.Ledger) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(models.LedgerHeader))
	for i, h := range models.LedgerHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range l.Rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := row.Values()
		if err := f.SetSheetRow(SheetName, cellName, &values); err != nil {
			return nil, err
		}
	}

	if err := formatSheet(f, len(l.Rows)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatSheet(f *excelize.File, rowCount int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(models.LedgerHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetName, "C", "C", 60); err != nil {
		return err
	}

	if rowCount == 0 {
		return nil
	}

	dateFormat := DateFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFormat})
	if err != nil {
		return err
	}
	lastDate, err := excelize.CoordinatesToCellName(1, rowCount+1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, "A2", lastDate, dateStyle)
}
