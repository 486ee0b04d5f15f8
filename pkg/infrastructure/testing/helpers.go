package testing

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

// Scenario file names, matching the configured defaults
const (
	CalendarFile = "workday.csv"
	RecipesFile  = "material_master.csv"
	DemandFile   = "log.csv"
)

// OctoberWorkdays returns M/D tokens for the weekdays of October 2025
func OctoberWorkdays() []string {
	var tokens []string
	for d := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC); d.Month() == time.October; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		tokens = append(tokens, fmt.Sprintf("%d/%d", d.Month(), d.Day()))
	}
	return tokens
}

// SoapCalendar is the calendar table of the soap scenario
func SoapCalendar() *entities.RawTable {
	return &entities.RawTable{Name: "workday", Header: OctoberWorkdays()}
}

// SoapRecipes is the recipe master of the soap scenario: NR is short with
// capacity 100, AB has a long process and capacity 250
func SoapRecipes() *entities.RawTable {
	return &entities.RawTable{
		Name:   "material_master",
		Header: []string{"素地", "油脂仕込み量１", "工程３", "item_code"},
		Rows: [][]string{
			{"NR", "100", "", "S-100"},
			{"AB", "250", "鹸化", "S-200"},
		},
	}
}

// SoapDemand is the demand table of the soap scenario. Tasks 1-3 pack into two
// NR batches, tasks 4-5 are shortages and rows 7-9 are dropped.
func SoapDemand() *entities.RawTable {
	return &entities.RawTable{
		Name:   "log",
		Header: []string{"date", "recipe", "quantity", "code", "name", "cell"},
		Rows: [][]string{
			{"2025-10-10", "NR", "60", "1001", "Rose", "12"},
			{"2025-10-10", "NR", "50", "1002", "Lily", "6"},
			{"2025-10-10", "NR", "10", "1003", "Iris", "x"},
			{"2025-10-11", "AB", "30", "2001", "Mint", "4"},
			{"2025-10-02", "AB", "20", "2002", "Sage", "4"},
			{"soon", "NR", "10", "1004", "Fern", "1"},
			{"2025-12-05", "NR", "10", "1005", "Moss", "1"},
			{"2025-10-10", "NR", "0", "1006", "Pine", "1"},
		},
	}
}

// WriteScenarioCSV writes the soap scenario tables into dir using the default
// file names
func WriteScenarioCSV(dir string) error {
	tables := map[string]*entities.RawTable{
		CalendarFile: SoapCalendar(),
		RecipesFile:  SoapRecipes(),
		DemandFile:   SoapDemand(),
	}
	for name, table := range tables {
		if err := writeTable(filepath.Join(dir, name), table); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func writeTable(path string, table *entities.RawTable) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return err
	}
	return file.Close()
}
