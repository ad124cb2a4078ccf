package output

import (
	"encoding/json"

	"github.com/ukaji3/extrato-go/pkg/extrato/models"
)

// ToJSON serializes a ledger to JSON.
func ToJSON(l *models.Ledger, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(l, "", "  ")
	}
	return json.Marshal(l)
}
