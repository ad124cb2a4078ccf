// Package parser reads worksheet cells and merged ranges from xlsx workbooks.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/extrato-go/pkg/extrato/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads every row of a sheet as typed cells.
// Blank rows are kept so that row positions match the sheet.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	cr, err := newCellReader(f, sheetName)
	if err != nil {
		return nil, err
	}

	result := make([]models.CellRow, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]models.Cell, len(row))

		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			c, err := cr.read(cellName, raw)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cellName, err)
			}
			cells[colIdx] = c
		}

		result = append(result, models.CellRow{R: rowNum, Cells: cells})
	}

	return result, nil
}

// cellReader classifies raw stored values by cell type and number format.
type cellReader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func newCellReader(f *excelize.File, sheetName string) (*cellReader, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}
	return &cellReader{
		f:          f,
		sheet:      sheetName,
		date1904:   props.Date1904 != nil && *props.Date1904,
		dateStyles: make(map[int]bool),
	}, nil
}

func (r *cellReader) read(cellName, raw string) (models.Cell, error) {
	typ, err := r.f.GetCellType(r.sheet, cellName)
	if err != nil {
		return models.Cell{}, err
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.TextCell(raw), nil
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "TRUE") {
			return models.TextCell("TRUE"), nil
		}
		return models.TextCell("FALSE"), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.DateCell(t), nil
		}
		return models.TextCell(raw), nil
	}

	return r.parseValue(cellName, raw)
}

// parseValue turns a numeric stored value into a number or, when the cell
// carries a date format, into a date. Anything else stays text.
func (r *cellReader) parseValue(cellName, raw string) (models.Cell, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return models.TextCell(raw), nil
	}

	isDate, err := r.hasDateFormat(cellName)
	if err != nil {
		return models.Cell{}, err
	}
	if !isDate {
		return models.NumberCell(d), nil
	}

	t, err := excelize.ExcelDateToTime(d.InexactFloat64(), r.date1904)
	if err != nil {
		return models.Cell{}, err
	}
	return models.DateCell(t), nil
}

func (r *cellReader) hasDateFormat(cellName string) (bool, error) {
	styleID, err := r.f.GetCellStyle(r.sheet, cellName)
	if err != nil {
		return false, err
	}
	if styleID == 0 {
		return false, nil
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate, nil
	}

	style, err := r.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := IsDateNumFmt(style.NumFmt, style.CustomNumFmt)
	r.dateStyles[styleID] = isDate
	return isDate, nil
}

// builtInDateNumFmts holds the built-in number format ids that render dates or times,
// including the East Asian locale ids.
var builtInDateNumFmts = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// IsDateNumFmt reports whether a number format renders a date or time.
func IsDateNumFmt(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	return builtInDateNumFmts[numFmt]
}

// isDateFormatCode looks for date/time tokens outside quoted literals,
// escaped characters and bracketed sections (colors, locales).
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			// colors like [Red] and locale tags like [$R$-416]
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			// \x is a literal, _x pads by the width of x, *x repeats x
			i++
		default:
			b.WriteByte(ch)
		}
	}
	plain := strings.ToLower(b.String())
	if plain == "general" {
		return false
	}
	return strings.ContainsAny(plain, "ydhs")
}

func parseISODate(raw string) (time.Time, bool) {
	layouts := []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
