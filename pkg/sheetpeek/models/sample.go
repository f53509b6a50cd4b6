// Package models defines data structures for workbook sampling.
package models

// Sample represents a bounded prefix of one sheet's rows.
type Sample struct {
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Index is the 0-based position of the sheet in the workbook.
	Index int `json:"index"`
	// Header reports whether the first sheet row was consumed as column labels.
	Header bool `json:"header"`
	// Columns contains one label per column.
	Columns []string `json:"columns"`
	// Rows contains data rows, each padded to len(Columns).
	Rows [][]string `json:"rows"`
	// Range is the used range of the sampled cells (e.g., "A1:P20").
	Range string `json:"range,omitempty"`
}

// Width returns the number of columns in the sample.
func (s *Sample) Width() int {
	return len(s.Columns)
}

// Head returns a copy of the sample restricted to its first n data rows.
func (s *Sample) Head(n int) *Sample {
	head := *s
	if n < len(s.Rows) {
		head.Rows = s.Rows[:n]
	}
	return &head
}
