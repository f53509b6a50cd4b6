// Package output renders samples as console tables, CSV and JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
)

// MissingValue is printed in place of empty cells.
const MissingValue = "NaN"

var cellReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// WriteTable writes a sample as a right-aligned table with a leading column
// of 0-based row positions.
func WriteTable(w io.Writer, s *models.Sample) error {
	if s.Width() == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, name := range s.Columns {
		fmt.Fprintf(tw, "%s\t", tableCell(name))
	}
	fmt.Fprintln(tw)

	for i, row := range s.Rows {
		fmt.Fprintf(tw, "%d\t", i)
		for _, cell := range row {
			fmt.Fprintf(tw, "%s\t", tableCell(cell))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func tableCell(v string) string {
	if v == "" {
		return MissingValue
	}
	return cellReplacer.Replace(v)
}

// WriteDTypes writes one "name  dtype" line per column.
func WriteDTypes(w io.Writer, cols []models.Column) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, col := range cols {
		fmt.Fprintf(tw, "%s\t%s\n", tableCell(col.Name), col.DType)
	}
	return tw.Flush()
}

// WriteSummary writes count/mean/min/max for columns that carry a numeric
// summary. It writes nothing when no column does.
func WriteSummary(w io.Writer, cols []models.Column) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	wrote := false
	for _, col := range cols {
		if col.Summary == nil {
			continue
		}
		if !wrote {
			fmt.Fprintln(tw, "\tcount\tmean\tmin\tmax\t")
			wrote = true
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t\n",
			tableCell(col.Name),
			col.Summary.Count,
			formatFloat(col.Summary.Mean),
			formatFloat(col.Summary.Min),
			formatFloat(col.Summary.Max),
		)
	}
	return tw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatList renders names as a bracketed, quoted list: ['a', 'b'].
func FormatList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
