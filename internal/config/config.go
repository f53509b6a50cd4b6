package config

import (
	"fmt"
	"os"
)

// DefaultWorkbookPath is the registration workbook the tool was written for.
const DefaultWorkbookPath = "SF Inscriptions 19-20-21-22-23-24.xlsx"

// DefaultExportPath is where export writes when no output is given.
const DefaultExportPath = "sample_data.csv"

type Config struct {
	// Input
	WorkbookPath string
	PrimaryHint  string

	// Output
	ExportPath string

	// Application
	AppEnv   string
	LogLevel string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		WorkbookPath: getEnv("SHEETPEEK_WORKBOOK", DefaultWorkbookPath),
		PrimaryHint:  getEnv("SHEETPEEK_PRIMARY_HINT", "inscription"),
		ExportPath:   getEnv("SHEETPEEK_EXPORT_PATH", DefaultExportPath),

		AppEnv:   getEnv("APP_ENV", "production"),
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.WorkbookPath == "" {
		return fmt.Errorf("SHEETPEEK_WORKBOOK must not be empty")
	}
	if c.ExportPath == "" {
		return fmt.Errorf("SHEETPEEK_EXPORT_PATH must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
