package sheetpeek

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the file could not be parsed as a workbook.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrSheetNotFound indicates the requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidLimit indicates a non-positive row limit.
var ErrInvalidLimit = errors.New("row limit must be positive")

// SampleError represents a failure while opening or reading a workbook.
type SampleError struct {
	Path  string
	Sheet string
	Op    string // "open", "sample", "export"
	Err   error
}

func (e *SampleError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s %s (sheet %q): %v", e.Op, e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}

// NewSampleError creates a new SampleError.
func NewSampleError(op, path, sheet string, err error) *SampleError {
	return &SampleError{
		Path:  path,
		Sheet: sheet,
		Op:    op,
		Err:   err,
	}
}
