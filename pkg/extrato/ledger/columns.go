// Package ledger turns statement rows into ledger rows.
package ledger

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Statement column letters.
const (
	DateColumn                 = "E"
	ValueColumn                = "Y"
	DescriptionColumn          = "G"
	PrincipalDescriptionColumn = "G"
	DebitCreditColumn          = "AE"
	InterestDiscountColumn     = "AF"
	OriginDocumentColumn       = "A"
)

// Columns maps each statement field to a zero-based column index.
type Columns struct {
	Date                 int
	Value                int
	Description          int
	PrincipalDescription int
	DebitCredit          int
	InterestDiscount     int
	OriginDocument       int
}

var defaultColumns = mustResolveColumns()

// DefaultColumns returns the fixed statement layout.
func DefaultColumns() Columns {
	return defaultColumns
}

// ColumnIndex converts a column label such as "AE" to a zero-based index.
// Labels are read as base-26 numbers where A=1 and Z=26.
func ColumnIndex(label string) (int, error) {
	n, err := excelize.ColumnNameToNumber(label)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", label, err)
	}
	return n - 1, nil
}

// Width returns the number of columns a sheet needs to hold every field.
func (c Columns) Width() int {
	widest := 0
	for _, idx := range []int{
		c.Date, c.Value, c.Description, c.PrincipalDescription,
		c.DebitCredit, c.InterestDiscount, c.OriginDocument,
	} {
		if idx+1 > widest {
			widest = idx + 1
		}
	}
	return widest
}

func mustResolveColumns() Columns {
	var cols Columns
	fields := []struct {
		dst   *int
		label string
	}{
		{&cols.Date, DateColumn},
		{&cols.Value, ValueColumn},
		{&cols.Description, DescriptionColumn},
		{&cols.PrincipalDescription, PrincipalDescriptionColumn},
		{&cols.DebitCredit, DebitCreditColumn},
		{&cols.InterestDiscount, InterestDiscountColumn},
		{&cols.OriginDocument, OriginDocumentColumn},
	}
	for _, fld := range fields {
		idx, err := ColumnIndex(fld.label)
		if err != nil {
			panic(err)
		}
		*fld.dst = idx
	}
	return cols
}
