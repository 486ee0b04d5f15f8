package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RecipeID identifies a base preparation shared by one or more finished products
type RecipeID string

// LeadTimeClass classifies a recipe's preparation lead time
type LeadTimeClass int

const (
	LeadTimeDefault LeadTimeClass = iota
	LeadTimeShort
)

// String method for LeadTimeClass enum
func (c LeadTimeClass) String() string {
	switch c {
	case LeadTimeDefault:
		return "Default"
	case LeadTimeShort:
		return "Short"
	default:
		return "Unknown"
	}
}

// RecipeProfile holds the vessel capacity and lead time of a recipe
type RecipeProfile struct {
	RecipeID      RecipeID        `json:"recipe_id"`
	MaxBatchSize  decimal.Decimal `json:"max_batch_size"`
	LeadTimeDays  int             `json:"lead_time_days"`
	LeadTimeClass LeadTimeClass   `json:"lead_time_class"`
	ItemCode      string          `json:"item_code,omitempty"`
}

// NewRecipeProfile creates a validated RecipeProfile
func NewRecipeProfile(
	id RecipeID,
	maxBatchSize decimal.Decimal,
	leadTimeDays int,
	class LeadTimeClass,
) (*RecipeProfile, error) {
	if id == "" {
		return nil, fmt.Errorf("recipe id cannot be empty")
	}
	if maxBatchSize.IsNegative() {
		return nil, fmt.Errorf("max batch size cannot be negative, got %s", maxBatchSize)
	}
	if leadTimeDays <= 0 {
		return nil, fmt.Errorf("lead time must be positive, got %d", leadTimeDays)
	}

	return &RecipeProfile{
		RecipeID:      id,
		MaxBatchSize:  maxBatchSize,
		LeadTimeDays:  leadTimeDays,
		LeadTimeClass: class,
	}, nil
}

// HasCapacity reports whether the recipe has a usable vessel capacity
func (r *RecipeProfile) HasCapacity() bool {
	return r.MaxBatchSize.IsPositive()
}
