package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the decimal precision of every emitted amount
const AmountPlaces = 2

// BatchLine is one product's share of a vessel run
type BatchLine struct {
	TaskID         int                 `json:"task_id"`
	Product        ProductAttrs        `json:"product"`
	FillDate       time.Time           `json:"fill_date"`
	Amount         decimal.Decimal     `json:"amount"`
	IsPartial      bool                `json:"is_partial"`
	OriginalAmount decimal.NullDecimal `json:"original_amount"`
}

// Status returns the human-readable absorption status of the line
func (l BatchLine) Status() string {
	if l.IsPartial {
		return "partial"
	}
	return "whole"
}

// Batch is a single vessel run for one recipe
type Batch struct {
	RecipeID         RecipeID        `json:"recipe_id"`
	ItemCode         string          `json:"item_code,omitempty"`
	Sequence         int             `json:"sequence"`
	FillDate         time.Time       `json:"fill_date"`
	PreferredPrepDay *time.Time      `json:"preferred_prep_day,omitempty"`
	DeadlinePrepDay  *time.Time      `json:"deadline_prep_day,omitempty"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Capacity         decimal.Decimal `json:"capacity"`
	Slack            decimal.Decimal `json:"slack"`
	CapacityUnknown  bool            `json:"capacity_unknown,omitempty"`
	Lines            []BatchLine     `json:"lines"`
}

// LotNumber returns the recipe-scoped lot identifier, e.g. NR01
func (b *Batch) LotNumber() string {
	return fmt.Sprintf("%s%02d", b.RecipeID, b.Sequence)
}

// IsConsolidated reports whether more than one product line shares the vessel
func (b *Batch) IsConsolidated() bool {
	return len(b.Lines) > 1
}

// ConsolidationFlag returns the display flag for the consolidation state
func (b *Batch) ConsolidationFlag() string {
	if b.IsConsolidated() {
		return "consolidated"
	}
	return "single"
}

// LinesSaved is the number of preparation runs avoided by sharing this vessel
func (b *Batch) LinesSaved() int {
	if len(b.Lines) == 0 {
		return 0
	}
	return len(b.Lines) - 1
}

// FillRatio returns total/capacity, or 0 for batches without a capacity
func (b *Batch) FillRatio() float64 {
	if !b.Capacity.IsPositive() {
		return 0
	}
	return b.TotalAmount.Div(b.Capacity).InexactFloat64()
}

// Summary renders the product list of the batch on one line
func (b *Batch) Summary() string {
	parts := make([]string, 0, len(b.Lines))
	for _, line := range b.Lines {
		s := fmt.Sprintf("%s:%s %s", line.Product.Code, line.Product.Name, line.Amount.StringFixed(2))
		if line.IsPartial {
			s += "(partial)"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " / ")
}
