// Package sheetpeek samples leading rows of workbook sheets for inspection and export.
package sheetpeek

const (
	// DefaultRows is the number of data rows sampled when no limit is given.
	DefaultRows = 5
	// SheetAuto selects the primary sheet (see PrimarySheet).
	SheetAuto = "auto"
	// DefaultPrimaryHint is the sheet name fragment that marks the primary sheet.
	DefaultPrimaryHint = "inscription"
)

// Options configures sampling behavior.
type Options struct {
	// Sheet references the sheet to sample: an exact sheet name, a 0-based
	// position, or SheetAuto. Empty selects the first sheet.
	Sheet string
	// Rows is the maximum number of data rows to read. Must be positive.
	Rows int
	// Header consumes the first sheet row as column labels.
	Header bool
	// PrimaryHint is matched against sheet names when Sheet is SheetAuto.
	// If empty, DefaultPrimaryHint is used.
	PrimaryHint string
}

// DefaultOptions returns default sampling options.
func DefaultOptions() Options {
	return Options{
		Rows: DefaultRows,
	}
}

func (o Options) primaryHint() string {
	if o.PrimaryHint != "" {
		return o.PrimaryHint
	}
	return DefaultPrimaryHint
}

// readLimit returns the number of sheet rows to read, header included.
func (o Options) readLimit() int {
	if o.Header {
		return o.Rows + 1
	}
	return o.Rows
}
