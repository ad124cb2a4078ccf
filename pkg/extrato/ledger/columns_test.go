package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"A", 0},
		{"E", 4},
		{"G", 6},
		{"Y", 24},
		{"Z", 25},
		{"AA", 26},
		{"AE", 30},
		{"AF", 31},
		{"ae", 30},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ColumnIndex(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumnIndexInvalid(t *testing.T) {
	for _, label := range []string{"", "A1", "-"} {
		_, err := ColumnIndex(label)
		assert.Error(t, err, "label %q", label)
	}
}

func TestColumnsWidth(t *testing.T) {
	assert.Equal(t, 32, DefaultColumns().Width())
	assert.Equal(t, 3, Columns{Date: 2}.Width())
}

func TestDefaultColumns(t *testing.T) {
	cols := DefaultColumns()

	assert.Equal(t, 4, cols.Date)
	assert.Equal(t, 24, cols.Value)
	assert.Equal(t, 6, cols.Description)
	assert.Equal(t, cols.Description, cols.PrincipalDescription)
	assert.Equal(t, 30, cols.DebitCredit)
	assert.Equal(t, 31, cols.InterestDiscount)
	assert.Equal(t, 0, cols.OriginDocument)
}
