// Package main provides the CLI entry point for sheetpeek.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetpeek/internal/config"
	"github.com/ukaji3/sheetpeek/pkg/logger"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/output"
)

var (
	workbookPath string
	jsonOutput   bool
	pretty       bool
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, cfg.AppEnv)
	if envErr != nil {
		logger.Debug("No .env file found, using system environment")
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Error("Command failed", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetpeek",
		Short: "Print or export the leading rows of a spreadsheet workbook",
		Long: `sheetpeek opens one workbook and shows small row samples of its sheets
to reveal structure, column names, column types and sheet names.

Sheets are selected by exact name, by 0-based position, or with "auto",
which picks the primary registration sheet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&workbookPath, "file", "f", cfg.WorkbookPath, "Workbook path (.xlsx, .xlsm, .xls)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(
		newInspectCmd(cfg),
		newRawCmd(cfg),
		newSheetsCmd(),
		newExportCmd(cfg),
	)
	return rootCmd
}

func openWorkbook() (*sheetpeek.Workbook, error) {
	start := time.Now()
	wb, err := sheetpeek.Open(workbookPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Workbook opened", "path", workbookPath, "elapsed", time.Since(start))
	return wb, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
