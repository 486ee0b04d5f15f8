package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/batchplan/pkg/application/dto"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	// MaxItems is the number of product column groups in the schedule table.
	MaxItems int
	// Lots adds the lot/process export.
	Lots bool
	// Date stamps output file names; zero means today.
	Date    time.Time
	Verbose bool
	Stdout  io.Writer
	Log     logger.Logger
}

func (c Config) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c Config) log() logger.Logger {
	if c.Log == nil {
		return logger.NopLogger{}
	}
	return c.Log
}

func (c Config) stamp() string {
	d := c.Date
	if d.IsZero() {
		d = time.Now()
	}
	return d.Format("20060102")
}

// File names for a run dated stamp (YYYYMMDD)
func ScheduleFile(stamp string) string { return "scheduler_list_" + stamp + ".csv" }
func ShortageFile(stamp string) string { return "scheduler_shortage_" + stamp + ".csv" }
func LotFile(stamp string) string      { return "scheduler_lots_" + stamp + ".csv" }
func WorkbookFile(stamp string) string { return "scheduler_" + stamp + ".xlsx" }
func JSONFile(stamp string) string     { return "scheduler_" + stamp + ".json" }

// Generate creates output in the specified format
func Generate(result *dto.PlanResult, config Config) error {
	if config.MaxItems < 1 {
		config.MaxItems = 1
	}
	switch config.Format {
	case "", "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	case "xlsx":
		return generateWorkbookOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateJSONOutput writes the result to stdout, or to a file when an output
// directory is set
func generateJSONOutput(result *dto.PlanResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		_, err = fmt.Fprintln(config.stdout(), string(jsonData))
		return err
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, JSONFile(config.stamp()))
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	if config.Verbose {
		fmt.Fprintf(config.stdout(), "💾 JSON results saved to: %s\n", filename)
	}
	return nil
}
