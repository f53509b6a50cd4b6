package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetpeek/internal/config"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/output"
)

func newRawCmd(cfg *config.Config) *cobra.Command {
	var (
		sheet string
		rows  int
		title string
	)

	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Print the leading rows of a sheet without a header row",
		Example: `  sheetpeek raw --rows 10
  sheetpeek raw --sheet 0 --rows 20 --title "Tarifs Sheet"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sheetpeek.Options{
				Sheet:       sheet,
				Rows:        rows,
				PrimaryHint: cfg.PrimaryHint,
			}
			return runRaw(cmd.OutOrStdout(), opts, title)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", `Sheet name, 0-based position, or "auto" (default: first sheet)`)
	cmd.Flags().IntVar(&rows, "rows", 10, "Number of rows to read")
	cmd.Flags().StringVar(&title, "title", "", "Heading printed above the rows")
	return cmd
}

func runRaw(w io.Writer, opts sheetpeek.Options, title string) error {
	wb, err := openWorkbook()
	if err != nil {
		return err
	}
	defer wb.Close()

	sample, err := wb.Sample(opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(w, sample)
	}

	if title == "" {
		fmt.Fprintf(w, "--- First %d rows raw ---\n", opts.Rows)
	} else {
		fmt.Fprintf(w, "--- %s (First %d rows) ---\n", title, opts.Rows)
	}
	return output.WriteTable(w, sample)
}
