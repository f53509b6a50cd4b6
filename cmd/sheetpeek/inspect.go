package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetpeek/internal/config"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/output"
)

type inspectReport struct {
	Sample  *models.Sample  `json:"sample"`
	Columns []models.Column `json:"columns"`
}

func newInspectCmd(cfg *config.Config) *cobra.Command {
	var (
		sheet string
		rows  int
		head  int
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show column names, leading rows and inferred data types of a sheet",
		Long: `Reads the first rows of a sheet using its first row as header, then prints
the column names, the first --head rows and one inferred data type per column.
Numeric columns also get count, mean, min and max.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sheetpeek.Options{
				Sheet:       sheet,
				Rows:        rows,
				Header:      true,
				PrimaryHint: cfg.PrimaryHint,
			}
			return runInspect(cmd.OutOrStdout(), opts, head)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", `Sheet name, 0-based position, or "auto" (default: first sheet)`)
	cmd.Flags().IntVar(&rows, "rows", 5, "Number of data rows to read")
	cmd.Flags().IntVar(&head, "head", 3, "Number of rows to print")
	return cmd
}

func runInspect(w io.Writer, opts sheetpeek.Options, head int) error {
	if head < 0 {
		return fmt.Errorf("invalid head: %d (must not be negative)", head)
	}

	wb, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	sample, err := wb.Sample(opts)
	if err != nil {
		return err
	}
	cols := sheetpeek.Profile(sample)

	if jsonOutput {
		return writeJSON(w, inspectReport{Sample: sample, Columns: cols})
	}

	shown := sample.Head(head)
	fmt.Fprintf(w, "Columns: %s\n", output.FormatList(sample.Columns))
	fmt.Fprintf(w, "\nFirst %d rows:\n", len(shown.Rows))
	if err := output.WriteTable(w, shown); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nData Types:")
	if err := output.WriteDTypes(w, cols); err != nil {
		return err
	}

	var summary bytes.Buffer
	if err := output.WriteSummary(&summary, cols); err != nil {
		return err
	}
	if summary.Len() > 0 {
		fmt.Fprintln(w, "\nSummary:")
		_, err = summary.WriteTo(w)
	}
	return err
}
