package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeStatement(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Statement"))
	require.NoError(t, f.MergeCell("Sheet1", "A1", "C1"))
	require.NoError(t, f.SetCellValue("Sheet1", "E2", "2024-01-10"))
	require.NoError(t, f.SetCellValue("Sheet1", "G2", "Payment"))
	require.NoError(t, f.SetCellValue("Sheet1", "Y2", 10))
	require.NoError(t, f.SetCellValue("Sheet1", "AF2", 0))
	require.NoError(t, f.SetCellValue("Sheet1", "G3", "Ref123"))

	path := filepath.Join(t.TempDir(), "statement.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestProcessCommandJSON(t *testing.T) {
	input := writeStatement(t)

	out, err := execute(t, "process", input, "--format", "json")
	require.NoError(t, err)

	dst := filepath.Join(filepath.Dir(input), "statement_processed.json")
	assert.Contains(t, out, dst)
	assert.Contains(t, out, "1 rows")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)

	var ledger struct {
		Rows []struct {
			Description string `json:"description"`
			Import      string `json:"import"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(data, &ledger))
	require.Len(t, ledger.Rows, 1)
	assert.Equal(t, "Payment - Ref123", ledger.Rows[0].Description)
	assert.Equal(t, "No", ledger.Rows[0].Import)
}

func TestProcessCommandKeepUnmerged(t *testing.T) {
	input := writeStatement(t)
	output := filepath.Join(t.TempDir(), "ledger.xlsx")

	_, err := execute(t, "process", input, "-o", output, "--keep-unmerged")
	require.NoError(t, err)

	assert.FileExists(t, output)
	assert.FileExists(t, filepath.Join(filepath.Dir(input), "statement_unmerged.xlsx"))
}

func TestProcessCommandInvalidFormat(t *testing.T) {
	_, err := execute(t, "process", writeStatement(t), "--format", "csv")
	assert.ErrorContains(t, err, "invalid format")
}

func TestProcessCommandMissingInput(t *testing.T) {
	_, err := execute(t, "process", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorContains(t, err, "file not found")
}

func TestUnmergeCommand(t *testing.T) {
	input := writeStatement(t)

	out, err := execute(t, "unmerge", input)
	require.NoError(t, err)

	dst := filepath.Join(filepath.Dir(input), "statement_unmerged.xlsx")
	assert.Contains(t, out, dst)

	f, err := excelize.OpenFile(dst)
	require.NoError(t, err)
	defer f.Close()

	merged, err := f.GetMergeCells("Sheet1")
	require.NoError(t, err)
	assert.Empty(t, merged)
}
