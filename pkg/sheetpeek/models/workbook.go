package models

// SheetSample is one entry of a workbook enumeration.
type SheetSample struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Sample is nil when the sheet could not be read.
	Sample *Sample `json:"sample,omitempty"`
	// Error holds the read failure message, if any.
	Error string `json:"error,omitempty"`
}

// WorkbookSamples represents a workbook-level listing with per-sheet samples.
type WorkbookSamples struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists every sheet in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Sheets holds one sample per sheet, in workbook order.
	Sheets []SheetSample `json:"sheets"`
}
