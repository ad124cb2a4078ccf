package extrato

import (
	"github.com/ukaji3/extrato-go/pkg/extrato/output"
)

// Process runs the whole pipeline: unmerge, extract and write the ledger as xlsx.
// A failing stage stops the pipeline; nothing is returned on error.
func Process(data []byte, opts Options) ([]byte, error) {
	flat, err := Unmerge(data, opts)
	if err != nil {
		return nil, err
	}

	l, err := Extract(flat, opts)
	if err != nil {
		return nil, err
	}

	out, err := output.ToXLSX(l)
	if err != nil {
		return nil, NewIOError(StageWrite, err)
	}
	return out, nil
}
