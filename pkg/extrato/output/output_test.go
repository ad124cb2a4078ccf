package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/extrato-go/pkg/extrato/models"
)

func sampleLedger() *models.Ledger {
	return &models.Ledger{
		Sheet: "Extrato",
		Rows: []models.LedgerRow{
			{
				R:              3,
				Date:           models.DateCell(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				Value:          models.NumberCell(decimal.NewFromInt(100)),
				Description:    models.TextCell("Payment - Ref123"),
				DebitCredit:    models.TextCell("D"),
				OriginDocument: models.TextCell("DOC-1"),
				EntryType:      models.EntrySynthetic,
				Import:         models.ImportNo,
			},
			{
				R:           5,
				Date:        models.DateCell(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				Value:       models.NumberCell(decimal.RequireFromString("-50.25")),
				Description: models.TextCell("Fee"),
				EntryType:   models.EntryAnalytic,
				Import:      models.ImportYes,
			},
		},
	}
}

func TestToXLSX(t *testing.T) {
	data, err := ToXLSX(sampleLedger())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.LedgerHeader, rows[0])

	assert.Equal(t, "2024-01-01", rows[1][0])
	assert.Equal(t, "100", rows[1][1])
	assert.Equal(t, "Payment - Ref123", rows[1][2])
	assert.Equal(t, "D", rows[1][3])
	assert.Equal(t, "", rows[1][4])
	assert.Equal(t, "DOC-1", rows[1][5])
	assert.Equal(t, "Synthetic", rows[1][6])
	assert.Equal(t, "No", rows[1][7])

	assert.Equal(t, "-50.25", rows[2][1])
	assert.Equal(t, "Analytic", rows[2][6])
	assert.Equal(t, "Yes", rows[2][7])

	merged, err := f.GetMergeCells(SheetName)
	require.NoError(t, err)
	assert.Empty(t, merged)
}

func TestToXLSXEmptyLedger(t *testing.T) {
	data, err := ToXLSX(&models.Ledger{Sheet: "Sheet1"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.LedgerHeader, rows[0])
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleLedger(), false)
	require.NoError(t, err)

	var got struct {
		Sheet string                   `json:"sheet"`
		Rows  []map[string]interface{} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "Extrato", got.Sheet)
	require.Len(t, got.Rows, 2)

	first := got.Rows[0]
	assert.Equal(t, float64(3), first["source_row"])
	assert.Equal(t, "2024-01-01", first["date"])
	assert.Equal(t, float64(100), first["value"])
	assert.Equal(t, "Payment - Ref123", first["description"])
	assert.Nil(t, first["interest_discount"])
	assert.Equal(t, "Synthetic", first["entry_type"])
	assert.Equal(t, "No", first["import"])
}

func TestToJSONPretty(t *testing.T) {
	compact, err := ToJSON(sampleLedger(), false)
	require.NoError(t, err)
	pretty, err := ToJSON(sampleLedger(), true)
	require.NoError(t, err)

	assert.Contains(t, string(pretty), "\n  ")
	assert.NotContains(t, string(compact), "\n")
	assert.JSONEq(t, string(compact), string(pretty))
}
