package normalize

import (
	"strings"
	"time"

	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/domain/services"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
)

// Logical column keys of the demand table
const (
	ColDate     = "date"
	ColRecipe   = "recipe"
	ColQuantity = "quantity"
	ColCode     = "code"
	ColName     = "name"
	ColCell     = "cell"
)

// Columns lists the accepted header names for the demand table
var Columns = []services.ColumnSpec{
	{Key: ColDate, Synonyms: []string{"day", "date", "fill_date", "充填日"}},
	{Key: ColRecipe, Synonyms: []string{"Recipe", "recipe", "素地", "recipe_name", "item_name"}},
	{Key: ColQuantity, Synonyms: []string{"batchsize", "quantity", "amount", "必要素地量"}},
	{Key: ColCode, Synonyms: []string{"code", "product_code", "コード", "item_code"}},
	{Key: ColName, Synonyms: []string{"productname", "product_name", "商品名", "name"}},
	{Key: ColCell, Synonyms: []string{"cell", "cell_count", "個数"}},
}

// DropReason explains why a demand row was discarded
type DropReason string

const (
	DropInvalidDate     DropReason = "unparseable fill date"
	DropInvalidQuantity DropReason = "unparseable quantity"
	DropOutsideWindow   DropReason = "outside date window"
	DropMissingRecipe   DropReason = "missing recipe"
	DropNonPositiveQty  DropReason = "non-positive quantity"
)

// DataQualityWarning records a dropped demand row. It is not an error.
type DataQualityWarning struct {
	Row    int        `json:"row"`
	Reason DropReason `json:"reason"`
	Value  string     `json:"value,omitempty"`
}

// Window is an inclusive range of fill dates
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d lies inside the window, bounds included
func (w Window) Contains(d time.Time) bool {
	d = entities.Date(d)
	return !d.Before(entities.Date(w.Start)) && !d.After(entities.Date(w.End))
}

// Result is the output of a normalization pass
type Result struct {
	Tasks    []*entities.DemandTask
	Warnings []DataQualityWarning
}

// DroppedByReason counts warnings per reason
func (r *Result) DroppedByReason() map[string]int {
	out := make(map[string]int)
	for _, w := range r.Warnings {
		out[string(w.Reason)]++
	}
	return out
}

// DemandNormalizer filters and coerces raw demand rows into tasks
type DemandNormalizer struct {
	window Window
	log    logger.Logger
}

// NewDemandNormalizer creates a normalizer for the given window. A nil logger
// disables logging.
func NewDemandNormalizer(window Window, log logger.Logger) *DemandNormalizer {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &DemandNormalizer{window: window, log: log}
}

// Normalize converts the demand table into tasks in row order. Missing date,
// recipe or quantity columns yield a *entities.SchemaError; bad rows are
// dropped with a warning. Every returned task has a positive amount and a fill
// date inside the window.
func (n *DemandNormalizer) Normalize(table *entities.RawTable) (*Result, error) {
	cols, err := services.ResolveColumns("demand", table.Header, Columns)
	if err != nil {
		return nil, err
	}

	result := &Result{Tasks: make([]*entities.DemandTask, 0, len(table.Rows))}
	drop := func(row int, reason DropReason, value string) {
		result.Warnings = append(result.Warnings, DataQualityWarning{Row: row, Reason: reason, Value: value})
		n.log.Warnf("demand row %d dropped: %s (%q)", row, reason, value)
	}

	for i, row := range table.Rows {
		rowNum := i + 2 // 1-based, after the header

		rawDate := cols.Value(row, ColDate)
		fillDate, ok := ParseDate(rawDate)
		if !ok {
			drop(rowNum, DropInvalidDate, rawDate)
			continue
		}

		rawQty := cols.Value(row, ColQuantity)
		amount, ok := services.ParseAmount(rawQty)
		if !ok {
			drop(rowNum, DropInvalidQuantity, rawQty)
			continue
		}

		if !n.window.Contains(fillDate) {
			drop(rowNum, DropOutsideWindow, rawDate)
			continue
		}

		recipe := cols.Value(row, ColRecipe)
		if recipe == "" {
			drop(rowNum, DropMissingRecipe, "")
			continue
		}

		if !amount.Round(entities.AmountPlaces).IsPositive() {
			drop(rowNum, DropNonPositiveQty, rawQty)
			continue
		}

		product := entities.ProductAttrs{
			Code:      cols.Value(row, ColCode),
			Name:      cols.Value(row, ColName),
			CellCount: services.ParseCount(cols.Value(row, ColCell)),
		}
		task, err := entities.NewDemandTask(len(result.Tasks)+1, entities.RecipeID(recipe), fillDate, amount, product)
		if err != nil {
			return nil, err
		}
		task.SourceRow = rowNum
		result.Tasks = append(result.Tasks, task)
	}

	n.log.Infof("normalized %d demand tasks, dropped %d of %d rows",
		len(result.Tasks), len(result.Warnings), len(table.Rows))
	return result, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006-1-2",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006/1/2 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"01/02/2006",
	"1/2/2006",
	"20060102",
}

// ParseDate parses a fill date in any of the layouts seen in demand exports
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return entities.Date(t), true
		}
	}
	return time.Time{}, false
}
