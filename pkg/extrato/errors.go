package extrato

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSheets indicates the workbook has no worksheet to read.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrUnexpectedLayout indicates the sheet is narrower than the statement columns.
var ErrUnexpectedLayout = errors.New("unexpected sheet layout")

// Pipeline stages reported in errors.
const (
	StageRead    = "read"
	StageUnmerge = "unmerge"
	StageExtract = "extract"
	StageWrite   = "write"
)

// ErrorKind classifies pipeline failures.
type ErrorKind int

const (
	// KindFormat is an unreadable or corrupt workbook, or an unexpected sheet structure.
	KindFormat ErrorKind = iota + 1
	// KindIO is a file read or write failure.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error represents a failure in one pipeline stage.
type Error struct {
	Kind      ErrorKind
	Stage     string
	SheetName string
	Err       error
}

func (e *Error) Error() string {
	if e.SheetName != "" {
		return fmt.Sprintf("%s error in sheet %q (%s): %v", e.Kind, e.SheetName, e.Stage, e.Err)
	}
	return fmt.Sprintf("%s error (%s): %v", e.Kind, e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewFormatError creates a format Error.
func NewFormatError(stage, sheetName string, err error) *Error {
	return &Error{
		Kind:      KindFormat,
		Stage:     stage,
		SheetName: sheetName,
		Err:       err,
	}
}

// NewIOError creates an IO Error.
func NewIOError(stage string, err error) *Error {
	return &Error{
		Kind:  KindIO,
		Stage: stage,
		Err:   err,
	}
}

// IsFormat reports whether err is a format Error.
func IsFormat(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindFormat
}

// IsIO reports whether err is an IO Error.
func IsIO(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindIO
}
