package extrato

import (
	"bytes"
	"fmt"

	"github.com/ukaji3/extrato-go/pkg/extrato/ledger"
	"github.com/ukaji3/extrato-go/pkg/extrato/models"
	"github.com/ukaji3/extrato-go/pkg/extrato/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads the first sheet of a flat workbook and rebuilds it as a ledger.
func Extract(data []byte, opts Options) (*models.Ledger, error) {
	log := opts.logger()

	f, err := openWorkbook(data, opts, StageExtract)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewFormatError(StageExtract, "", ErrNoSheets)
	}
	sheetName := sheets[0]

	rows, err := parser.ExtractCells(f, sheetName)
	if err != nil {
		return nil, NewFormatError(StageExtract, sheetName, err)
	}

	cols := ledger.DefaultColumns()
	if width := ledger.Width(rows); width > 0 && width < cols.Width() {
		return nil, NewFormatError(StageExtract, sheetName,
			fmt.Errorf("%w: sheet has %d columns, statement needs %d", ErrUnexpectedLayout, width, cols.Width()))
	}

	raw := ledger.ReadRawRows(ledger.DataRows(rows), cols)
	l := &models.Ledger{
		Sheet: sheetName,
		Rows:  ledger.Build(raw),
	}

	log.Info().
		Str("sheet", sheetName).
		Int("sheet_rows", len(rows)).
		Int("statement_rows", len(raw)).
		Int("ledger_rows", len(l.Rows)).
		Str("total", l.Total().String()).
		Msg("ledger extracted")

	return l, nil
}

func openWorkbook(data []byte, opts Options, stage string) (*excelize.File, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), opts.workbookOptions())
	if err != nil {
		return nil, NewFormatError(stage, "", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	return f, nil
}
