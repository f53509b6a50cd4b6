package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetpeek/pkg/logger"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/output"
)

func newSheetsCmd() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "List sheet names in workbook order with a row sample of each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSheets(cmd.OutOrStdout(), sheetpeek.Options{Rows: rows})
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 5, "Number of rows to read per sheet")
	return cmd
}

func runSheets(w io.Writer, opts sheetpeek.Options) error {
	wb, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	result, err := wb.Enumerate(opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(w, result)
	}

	fmt.Fprintf(w, "Sheet names: %s\n", output.FormatList(result.SheetNames))
	for _, entry := range result.Sheets {
		fmt.Fprintf(w, "\n--- Sheet: %s (First %d rows) ---\n", entry.Name, opts.Rows)
		if entry.Error != "" {
			logger.Warn("Sheet sample failed", "sheet", entry.Name, "error", entry.Error)
			fmt.Fprintln(w, entry.Error)
			continue
		}
		if err := output.WriteTable(w, entry.Sample); err != nil {
			return err
		}
	}
	return nil
}
