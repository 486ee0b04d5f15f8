package events

import (
	"github.com/shopspring/decimal"
)

const (
	PlanStartedEvent        = "plan.started"
	DemandDroppedEvent      = "demand.dropped"
	BatchClosedEvent        = "batch.closed"
	ShortageIdentifiedEvent = "shortage.identified"
	PlanCompletedEvent      = "plan.completed"
)

type PlanStarted struct {
	CalendarDays int `json:"calendar_days"`
	Recipes      int `json:"recipes"`
	DemandRows   int `json:"demand_rows"`
}

type DemandDropped struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
	Value  string `json:"value,omitempty"`
}

type BatchClosed struct {
	LotNumber   string          `json:"lot_no"`
	RecipeID    string          `json:"recipe_id"`
	Lines       int             `json:"lines"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Slack       decimal.Decimal `json:"slack"`
}

type ShortageIdentified struct {
	TaskID   int    `json:"task_id"`
	RecipeID string `json:"recipe_id"`
	FillDate string `json:"fill_date"`
	Reason   string `json:"reason"`
}

type PlanCompleted struct {
	Tasks     int `json:"tasks"`
	Batches   int `json:"batches"`
	Shortages int `json:"shortages"`
	RunsSaved int `json:"runs_saved"`
}
