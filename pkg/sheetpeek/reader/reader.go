// Package reader provides workbook readers for the supported spreadsheet formats.
package reader

import (
	"path/filepath"
	"strings"
)

// Source is an opened workbook.
type Source interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// ReadRows returns at most limit leading rows of a sheet.
	// Trailing empty cells are trimmed from each row.
	ReadRows(sheet string, limit int) ([][]string, error)
	// Close releases the underlying file.
	Close() error
}

// Format identifies a workbook file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// DetectFormat returns the workbook format implied by the file extension.
// Anything that is not .xls is handed to the OOXML reader, which reports
// its own error for unsupported content.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return FormatXLS
	}
	return FormatXLSX
}

// Open opens a workbook with the reader matching its format.
func Open(path string) (Source, error) {
	switch DetectFormat(path) {
	case FormatXLS:
		return OpenXLS(path)
	default:
		return OpenXLSX(path)
	}
}

// trimTrailingEmpty drops empty cells at the end of a row.
func trimTrailingEmpty(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return row[:end]
}

// trimTrailingEmptyRows drops empty rows at the end of a row set.
func trimTrailingEmptyRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && len(rows[end-1]) == 0 {
		end--
	}
	return rows[:end]
}
