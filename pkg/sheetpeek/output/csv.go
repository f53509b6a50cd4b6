package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
)

// WriteCSV writes sample rows as comma-separated text with LF line endings.
// Column labels are written first only for header samples.
func WriteCSV(w io.Writer, s *models.Sample) error {
	cw := csv.NewWriter(w)
	if s.Header && s.Width() > 0 {
		if err := writeRecord(w, cw, s.Columns); err != nil {
			return err
		}
	}
	for _, row := range s.Rows {
		if err := writeRecord(w, cw, row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeRecord quotes a record made of one empty field. csv.Writer would emit
// an empty line for it, and csv readers skip empty lines.
func writeRecord(w io.Writer, cw *csv.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return cw.Write(record)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\n")
	return err
}
