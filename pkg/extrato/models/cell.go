// Package models defines data structures for bank statement extraction.
package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout used when a date cell is rendered as text.
const DateLayout = "2006-01-02"

// CellKind identifies which scalar a Cell holds.
type CellKind int

const (
	// CellEmpty is a cell with no stored value.
	CellEmpty CellKind = iota
	// CellText is a string cell (shared, inline or formula string result).
	CellText
	// CellNumber is a numeric cell without a date number format.
	CellNumber
	// CellDate is a numeric cell carrying a date/time number format, or an ISO date cell.
	CellDate
)

func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellDate:
		return "date"
	default:
		return "empty"
	}
}

// Cell holds an optional scalar value read from a worksheet.
type Cell struct {
	// Kind tells which of the value fields is meaningful.
	Kind CellKind
	// Text is set for CellText.
	Text string
	// Number is set for CellNumber.
	Number decimal.Decimal
	// Date is set for CellDate.
	Date time.Time
}

// Empty returns the empty cell.
func Empty() Cell { return Cell{} }

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// NumberCell returns a numeric cell.
func NumberCell(d decimal.Decimal) Cell { return Cell{Kind: CellNumber, Number: d} }

// DateCell returns a date cell.
func DateCell(t time.Time) Cell { return Cell{Kind: CellDate, Date: t} }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// String renders the cell value as text. Empty cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return c.Number.String()
	case CellDate:
		if c.Date.Hour() == 0 && c.Date.Minute() == 0 && c.Date.Second() == 0 {
			return c.Date.Format(DateLayout)
		}
		return c.Date.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Value returns the cell as a value suitable for excelize.SetCellValue.
func (c Cell) Value() interface{} {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return c.Number.InexactFloat64()
	case CellDate:
		return c.Date
	default:
		return nil
	}
}

// MarshalJSON encodes empty cells as null, numbers as JSON numbers and dates as strings.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellText:
		return json.Marshal(c.Text)
	case CellNumber:
		return []byte(c.Number.String()), nil
	case CellDate:
		return json.Marshal(c.String())
	default:
		return []byte("null"), nil
	}
}

// CellRow represents a single worksheet row.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds the row's cells by zero-based column index.
	Cells []Cell `json:"c"`
}

// At returns the cell at the zero-based column index, or an empty cell
// when the row is shorter than col.
func (r CellRow) At(col int) Cell {
	if col < 0 || col >= len(r.Cells) {
		return Cell{}
	}
	return r.Cells[col]
}

// IsBlank reports whether every cell in the row is empty.
func (r CellRow) IsBlank() bool {
	for _, c := range r.Cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
