package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/batchplan/pkg/application/dto"
)

// Workbook sheet names
const (
	SheetSchedule = "schedule"
	SheetShortage = "shortage"
	SheetLots     = "lots"
)

// generateWorkbookOutput writes one XLSX workbook with a sheet per table
func generateWorkbookOutput(result *dto.PlanResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for xlsx format")
	}
	if len(result.Batches) == 0 && len(result.Shortages) == 0 {
		config.log().Infof("no batches or shortages, skipping workbook")
		return nil
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	wb, err := BuildWorkbook(result, config.MaxItems, config.Lots)
	if err != nil {
		return err
	}
	defer func() { _ = wb.Close() }()

	filename := filepath.Join(config.OutputDir, WorkbookFile(config.stamp()))
	if err := wb.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	if config.Verbose {
		fmt.Fprintf(config.stdout(), "💾 Workbook saved to: %s\n", filename)
	}
	return nil
}

// BuildWorkbook renders the plan into an in-memory workbook
func BuildWorkbook(result *dto.PlanResult, maxItems int, lots bool) (*excelize.File, error) {
	wb := excelize.NewFile()
	defaultSheet := wb.GetSheetName(wb.GetActiveSheetIndex())

	if err := writeSheet(wb, SheetSchedule, ScheduleHeader(maxItems), ScheduleRows(result.Batches, maxItems)); err != nil {
		return nil, err
	}
	if err := writeSheet(wb, SheetShortage, ShortageHeader(), ShortageRows(result.Shortages)); err != nil {
		return nil, err
	}
	if lots {
		if err := writeSheet(wb, SheetLots, LotHeader(), LotRows(result.Batches)); err != nil {
			return nil, err
		}
	}

	if defaultSheet != "" && defaultSheet != SheetSchedule {
		if err := wb.DeleteSheet(defaultSheet); err != nil {
			return nil, fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}
	if idx, err := wb.GetSheetIndex(SheetSchedule); err == nil {
		wb.SetActiveSheet(idx)
	}
	return wb, nil
}

func writeSheet(wb *excelize.File, name string, header []string, rows [][]string) error {
	if _, err := wb.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	if err := setRow(wb, name, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(wb, name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(wb *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
