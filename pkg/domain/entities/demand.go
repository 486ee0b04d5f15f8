package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProductAttrs are the finished-product attributes carried through planning unchanged
type ProductAttrs struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	CellCount int    `json:"cell_count"`
}

// DemandTask is one unit of required production for a recipe
type DemandTask struct {
	ID             int             `json:"id"`
	RecipeID       RecipeID        `json:"recipe_id"`
	FillDate       time.Time       `json:"fill_date"`
	RequiredAmount decimal.Decimal `json:"required_amount"`
	Product        ProductAttrs    `json:"product"`
	SourceRow      int             `json:"source_row,omitempty"`
}

// NewDemandTask creates a validated DemandTask
func NewDemandTask(
	id int,
	recipeID RecipeID,
	fillDate time.Time,
	amount decimal.Decimal,
	product ProductAttrs,
) (*DemandTask, error) {
	if recipeID == "" {
		return nil, fmt.Errorf("recipe id cannot be empty")
	}
	if fillDate.IsZero() {
		return nil, fmt.Errorf("fill date cannot be zero")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("required amount must be positive, got %s", amount)
	}

	return &DemandTask{
		ID:             id,
		RecipeID:       recipeID,
		FillDate:       Date(fillDate),
		RequiredAmount: amount,
		Product:        product,
	}, nil
}

// ScheduledTask is a DemandTask with its backward-scheduled preparation days
type ScheduledTask struct {
	DemandTask
	LeadTimeDays     int             `json:"lead_time_days"`
	MaxBatchSize     decimal.Decimal `json:"max_batch_size"`
	ItemCode         string          `json:"item_code,omitempty"`
	PreferredPrepDay *time.Time      `json:"preferred_prep_day,omitempty"`
	DeadlinePrepDay  *time.Time      `json:"deadline_prep_day,omitempty"`
}

// Schedulable reports whether the task has a valid deadline preparation day
func (t ScheduledTask) Schedulable() bool {
	return t.DeadlinePrepDay != nil
}
