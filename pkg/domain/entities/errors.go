package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCalendarEmpty is returned when a calendar input yields no business days
	ErrCalendarEmpty = errors.New("calendar contains no working days")

	// ErrRecipeNotFound is returned by recipe lookups for unknown identifiers
	ErrRecipeNotFound = errors.New("recipe not found")
)

// SchemaError reports required columns missing from an input table
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s table is missing required columns: %s", e.Table, strings.Join(e.Missing, ", "))
}
