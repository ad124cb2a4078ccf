package models

import "github.com/shopspring/decimal"

// EntryType classifies a ledger row by where its date came from.
type EntryType string

const (
	// EntrySynthetic marks a row whose own date cell was populated.
	EntrySynthetic EntryType = "Synthetic"
	// EntryAnalytic marks a row whose date was inherited from a row above.
	EntryAnalytic EntryType = "Analytic"
)

// ImportFlag tells whether a row goes into the downstream accounting import.
type ImportFlag string

const (
	ImportYes ImportFlag = "Yes"
	ImportNo  ImportFlag = "No"
)

// RawRow is one statement row projected onto the fixed statement columns.
type RawRow struct {
	// R is the source row index (1-based).
	R                    int
	Date                 Cell
	Value                Cell
	Description          Cell
	PrincipalDescription Cell
	DebitCredit          Cell
	InterestDiscount     Cell
	OriginDocument       Cell
}

// LedgerRow is one reconstructed transaction.
type LedgerRow struct {
	// R is the source row index (1-based) the transaction was read from.
	R                int        `json:"source_row"`
	Date             Cell       `json:"date"`
	Value            Cell       `json:"value"`
	Description      Cell       `json:"description"`
	DebitCredit      Cell       `json:"debit_credit"`
	InterestDiscount Cell       `json:"interest_discount"`
	OriginDocument   Cell       `json:"origin_document"`
	EntryType        EntryType  `json:"entry_type"`
	Import           ImportFlag `json:"import"`
}

// LedgerHeader lists the output column titles in order.
var LedgerHeader = []string{
	"Date",
	"Value",
	"Description",
	"D/C Indicator",
	"Interest/Discount",
	"Origin Document",
	"Entry Type",
	"Import Flag",
}

// Values returns the row's cells in LedgerHeader order.
func (r LedgerRow) Values() []interface{} {
	return []interface{}{
		r.Date.Value(),
		r.Value.Value(),
		r.Description.Value(),
		r.DebitCredit.Value(),
		r.InterestDiscount.Value(),
		r.OriginDocument.Value(),
		string(r.EntryType),
		string(r.Import),
	}
}

// Ledger is the clean table derived from a statement sheet.
type Ledger struct {
	// Sheet is the name of the sheet the ledger was read from.
	Sheet string      `json:"sheet"`
	Rows  []LedgerRow `json:"rows"`
}

// Total sums the numeric values of all rows. Text values are ignored.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range l.Rows {
		if r.Value.Kind == CellNumber {
			total = total.Add(r.Value.Number)
		}
	}
	return total
}
