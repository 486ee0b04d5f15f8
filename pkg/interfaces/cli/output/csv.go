package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vsinha/batchplan/pkg/application/dto"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type csvTable struct {
	file   string
	header []string
	rows   [][]string
}

// generateCSVOutput writes the schedule, shortage and optional lot tables as
// UTF-8 CSV with a byte order mark so spreadsheet tools pick up the encoding
func generateCSVOutput(result *dto.PlanResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	stamp := config.stamp()
	tables := []csvTable{
		{ScheduleFile(stamp), ScheduleHeader(config.MaxItems), ScheduleRows(result.Batches, config.MaxItems)},
		{ShortageFile(stamp), ShortageHeader(), ShortageRows(result.Shortages)},
	}
	if config.Lots {
		tables = append(tables, csvTable{LotFile(stamp), LotHeader(), LotRows(result.Batches)})
	}

	for _, t := range tables {
		filename := filepath.Join(config.OutputDir, t.file)
		if len(t.rows) == 0 {
			config.log().Infof("no rows for %s, skipping", t.file)
			continue
		}
		if err := writeCSV(filename, t.header, t.rows); err != nil {
			return fmt.Errorf("failed to write %s: %w", t.file, err)
		}
		if config.Verbose {
			fmt.Fprintf(config.stdout(), "💾 %s (%d rows)\n", filename, len(t.rows))
		}
	}
	return nil
}

func writeCSV(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return err
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return file.Close()
}
