package config

import (
	"fmt"
	"time"
)

const (
	DefaultStandardLeadTime  = 4
	DefaultDefaultLeadTime   = 3
	DefaultShortLeadTime     = 1
	DefaultCalendarStartYear = 2025
	DefaultMaxItemsPerBatch  = 4
	DefaultWindowStart       = "2025-10-01"
	DefaultWindowEnd         = "2025-11-30"
)

// PlanningConfig holds the scheduling constants the planner exposes for override.
type PlanningConfig struct {
	// StandardLeadTime is the business-day offset of the preferred prep day.
	StandardLeadTime int `json:"standard_lead_time"`
	// DefaultLeadTime applies to recipes with a long process.
	DefaultLeadTime int `json:"default_lead_time"`
	// ShortLeadTime applies to ShortLeadTimeRecipes and recipes without a long process.
	ShortLeadTime        int          `json:"short_lead_time"`
	ShortLeadTimeRecipes []string     `json:"short_lead_time_recipes"`
	CalendarStartYear    int          `json:"calendar_start_year"`
	MaxItemsPerBatch     int          `json:"max_items_per_batch"`
	Window               WindowConfig `json:"window"`
}

// WindowConfig is the inclusive demand date window, as YYYY-MM-DD strings.
type WindowConfig struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SetDefaults applies default values for zero fields.
func (c *PlanningConfig) SetDefaults() {
	if c.StandardLeadTime == 0 {
		c.StandardLeadTime = DefaultStandardLeadTime
	}
	if c.DefaultLeadTime == 0 {
		c.DefaultLeadTime = DefaultDefaultLeadTime
	}
	if c.ShortLeadTime == 0 {
		c.ShortLeadTime = DefaultShortLeadTime
	}
	if c.ShortLeadTimeRecipes == nil {
		c.ShortLeadTimeRecipes = []string{"NR", "LC"}
	}
	if c.CalendarStartYear == 0 {
		c.CalendarStartYear = DefaultCalendarStartYear
	}
	if c.MaxItemsPerBatch == 0 {
		c.MaxItemsPerBatch = DefaultMaxItemsPerBatch
	}
	if c.Window.Start == "" {
		c.Window.Start = DefaultWindowStart
	}
	if c.Window.End == "" {
		c.Window.End = DefaultWindowEnd
	}
}

// Validate ensures the planning constants are usable.
func (c PlanningConfig) Validate() error {
	if c.StandardLeadTime < 0 || c.DefaultLeadTime <= 0 || c.ShortLeadTime <= 0 {
		return fmt.Errorf("lead times must be positive (standard=%d default=%d short=%d)",
			c.StandardLeadTime, c.DefaultLeadTime, c.ShortLeadTime)
	}
	if c.MaxItemsPerBatch < 1 {
		return fmt.Errorf("max_items_per_batch must be at least 1, got %d", c.MaxItemsPerBatch)
	}
	start, end, err := c.Window.Bounds()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("window end %s is before start %s", c.Window.End, c.Window.Start)
	}
	return nil
}

// Bounds parses the window into UTC dates.
func (w WindowConfig) Bounds() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", w.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window start %q: %w", w.Start, err)
	}
	end, err := time.Parse("2006-01-02", w.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window end %q: %w", w.End, err)
	}
	return start, end, nil
}
