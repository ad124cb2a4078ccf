// Package extrato flattens bank statement workbooks and rebuilds them as a clean ledger.
package extrato

import (
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Options configures a pipeline run.
type Options struct {
	// Password opens encrypted workbooks. Unmerged output is written with the same password.
	Password string
	// Logger receives progress events. If nil, events are discarded.
	Logger *zerolog.Logger
}

// DefaultOptions returns default pipeline options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

func (o Options) workbookOptions() excelize.Options {
	return excelize.Options{Password: o.Password}
}
