package config

import (
	"fmt"
	"path/filepath"
)

// InputsConfig locates the three input tables. Relative file names are
// resolved against Dir.
type InputsConfig struct {
	Dir      string `json:"dir"`
	Calendar string `json:"calendar"`
	Recipes  string `json:"recipes"`
	Demand   string `json:"demand"`
}

// SetDefaults applies the conventional file names.
func (c *InputsConfig) SetDefaults() {
	if c.Calendar == "" {
		c.Calendar = "workday.csv"
	}
	if c.Recipes == "" {
		c.Recipes = "material_master.csv"
	}
	if c.Demand == "" {
		c.Demand = "log.csv"
	}
}

// Path resolves name against Dir unless it is absolute or Dir is empty.
func (c InputsConfig) Path(name string) string {
	if c.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Dir    string `json:"dir"`
	Format string `json:"format"`
	// Lots also writes the per-batch lot/process table.
	Lots bool `json:"lots"`
}

var outputFormats = map[string]bool{"text": true, "json": true, "csv": true, "xlsx": true}

// SetDefaults applies default values for zero fields.
func (c *OutputConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "text"
	}
}

// Validate ensures the format is supported and file formats have a directory.
func (c OutputConfig) Validate() error {
	if !outputFormats[c.Format] {
		return fmt.Errorf("unsupported output format: %s", c.Format)
	}
	if (c.Format == "csv" || c.Format == "xlsx") && c.Dir == "" {
		return fmt.Errorf("output directory required for %s format", c.Format)
	}
	return nil
}

// LoggingConfig selects log level and format.
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// SetDefaults applies default values for zero fields.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level and format names.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Level)
	}
	switch c.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Format)
	}
	return nil
}

// ServerConfig configures the planning API.
type ServerConfig struct {
	Address string `json:"address"`
	// History is the number of runs whose audit trail is kept in memory.
	History int `json:"history"`
}

// SetDefaults applies default values for zero fields.
func (c *ServerConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.History == 0 {
		c.History = 100
	}
}
