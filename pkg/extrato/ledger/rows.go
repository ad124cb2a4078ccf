package ledger

import "github.com/ukaji3/extrato-go/pkg/extrato/models"

// DataRows returns the statement body of a sheet: completely blank rows are
// skipped and the first non-blank row is taken as the header.
func DataRows(rows []models.CellRow) []models.CellRow {
	var body []models.CellRow
	headerSeen := false
	for _, row := range rows {
		if row.IsBlank() {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		body = append(body, row)
	}
	return body
}

// Width returns the length of the widest row. Trailing empty cells are
// not counted.
func Width(rows []models.CellRow) int {
	widest := 0
	for _, row := range rows {
		for col := len(row.Cells) - 1; col >= widest; col-- {
			if !row.Cells[col].IsEmpty() {
				widest = col + 1
				break
			}
		}
	}
	return widest
}

// ReadRawRows projects rows onto the statement columns.
func ReadRawRows(rows []models.CellRow, cols Columns) []models.RawRow {
	raw := make([]models.RawRow, 0, len(rows))
	for _, row := range rows {
		raw = append(raw, models.RawRow{
			R:                    row.R,
			Date:                 row.At(cols.Date),
			Value:                row.At(cols.Value),
			Description:          row.At(cols.Description),
			PrincipalDescription: row.At(cols.PrincipalDescription),
			DebitCredit:          row.At(cols.DebitCredit),
			InterestDiscount:     row.At(cols.InterestDiscount),
			OriginDocument:       row.At(cols.OriginDocument),
		})
	}
	return raw
}
