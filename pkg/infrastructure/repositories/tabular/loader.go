package tabular

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
)

// Loader reads planner input tables from CSV, TSV or XLSX files
type Loader struct {
	log logger.Logger
}

// NewLoader creates a new table loader. A nil logger disables logging.
func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Loader{log: log}
}

// LoadTable reads the file at path into a RawTable named after the file. The
// first row is the header. XLSX files are read from their first sheet; anything
// else is treated as delimited text.
func (l *Loader) LoadTable(path string) (*entities.RawTable, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = readWorkbook(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open table %s: %w", path, err)
		}
		var enc string
		records, enc, err = parseDelimited(data)
		if err == nil && enc != encodingUTF8 {
			l.log.Infof("decoded %s as %s", path, enc)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", path, err)
	}

	table := toTable(name, records)
	l.log.Debugw("table loaded", map[string]any{
		"path":    path,
		"columns": len(table.Header),
		"rows":    len(table.Rows),
	})
	return table, nil
}

func toTable(name string, records [][]string) *entities.RawTable {
	table := &entities.RawTable{Name: name}
	if len(records) == 0 {
		return table
	}
	table.Header = records[0]
	table.Rows = records[1:]
	return table
}
