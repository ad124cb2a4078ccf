package ledger

import "github.com/ukaji3/extrato-go/pkg/extrato/models"

// DescriptionSeparator joins a transaction description with the description
// of the row that follows it.
const DescriptionSeparator = " - "

// Build reconstructs ledger rows from raw statement rows.
//
// Dates are forward-filled top to bottom, a transaction's description absorbs
// the description of the row right below it, rows without a value are dropped,
// and each kept row is classified and flagged for import.
func Build(raw []models.RawRow) []models.LedgerRow {
	dates, hadDate := fillDates(raw)
	desc := describe(raw)

	rows := make([]models.LedgerRow, 0, len(raw))
	for i, r := range raw {
		if r.Value.IsEmpty() {
			continue
		}
		entry := models.EntryAnalytic
		if hadDate[i] {
			entry = models.EntrySynthetic
		}
		rows = append(rows, models.LedgerRow{
			R:                r.R,
			Date:             dates[i],
			Value:            r.Value,
			Description:      desc[i],
			DebitCredit:      r.DebitCredit,
			InterestDiscount: r.InterestDiscount,
			OriginDocument:   r.OriginDocument,
			EntryType:        entry,
		})
	}

	forwardFillDates(rows)
	flagImports(rows)
	return rows
}

// fillDates carries the last seen date down to rows without one. hadDate
// records which rows had their own date before filling. Rows above the first
// date stay empty.
func fillDates(raw []models.RawRow) (dates []models.Cell, hadDate []bool) {
	dates = make([]models.Cell, len(raw))
	hadDate = make([]bool, len(raw))
	var last models.Cell
	for i, r := range raw {
		if !r.Date.IsEmpty() {
			last = r.Date
			hadDate[i] = true
		}
		dates[i] = last
	}
	return dates, hadDate
}

// describe backfills and concatenates descriptions in a single forward pass.
// Row i reads row i+1's description before row i+1 is itself extended.
func describe(raw []models.RawRow) []models.Cell {
	desc := make([]models.Cell, len(raw))
	for i, r := range raw {
		desc[i] = r.Description
		if !r.Value.IsEmpty() && desc[i].IsEmpty() {
			desc[i] = r.PrincipalDescription
		}
	}

	for i := 0; i < len(raw)-1; i++ {
		if raw[i].Value.IsEmpty() || desc[i].IsEmpty() {
			continue
		}
		next := desc[i+1]
		if next.IsEmpty() {
			continue
		}
		desc[i] = models.TextCell(desc[i].String() + DescriptionSeparator + next.String())
	}
	return desc
}

func forwardFillDates(rows []models.LedgerRow) {
	var last models.Cell
	for i := range rows {
		if rows[i].Date.IsEmpty() {
			rows[i].Date = last
			continue
		}
		last = rows[i].Date
	}
}

// flagImports marks analytic rows for import, and synthetic rows only when
// the next kept row is synthetic too.
func flagImports(rows []models.LedgerRow) {
	for i := range rows {
		switch {
		case rows[i].EntryType == models.EntryAnalytic:
			rows[i].Import = models.ImportYes
		case i+1 < len(rows) && rows[i+1].EntryType == models.EntrySynthetic:
			rows[i].Import = models.ImportYes
		default:
			rows[i].Import = models.ImportNo
		}
	}
}
