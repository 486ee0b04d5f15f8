package dto

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

// PlanInput holds the three raw tables a planning run consumes
type PlanInput struct {
	Calendar *entities.RawTable `json:"calendar"`
	Recipes  *entities.RawTable `json:"recipes"`
	Demand   *entities.RawTable `json:"demand"`
}

// DroppedRow is a demand row discarded during normalization
type DroppedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
	Value  string `json:"value,omitempty"`
}

// PlanResult contains the complete output of a planning run
type PlanResult struct {
	RunID       uuid.UUID                 `json:"run_id"`
	PlannedAt   time.Time                 `json:"planned_at"`
	Batches     []entities.Batch          `json:"batches"`
	Shortages   []entities.ShortageRecord `json:"shortages"`
	DroppedRows []DroppedRow              `json:"dropped_rows,omitempty"`
	Stats       PlanStats                 `json:"stats"`
}

// PlanStats summarizes a planning run
type PlanStats struct {
	Tasks               int     `json:"tasks"`
	Schedulable         int     `json:"schedulable"`
	Shortages           int     `json:"shortages"`
	Batches             int     `json:"batches"`
	RunsSaved           int     `json:"runs_saved"`
	ConsolidatedBatches int     `json:"consolidated_batches"`
	DroppedRows         int     `json:"dropped_rows"`
	MeanFillRatio       float64 `json:"mean_fill_ratio"`
	StdDevFillRatio     float64 `json:"stddev_fill_ratio"`
}

// ComputeStats derives run statistics. Fill ratios only cover batches with a
// known capacity.
func ComputeStats(tasks int, batches []entities.Batch, shortages []entities.ShortageRecord, dropped int) PlanStats {
	stats := PlanStats{
		Tasks:       tasks,
		Schedulable: tasks - len(shortages),
		Shortages:   len(shortages),
		Batches:     len(batches),
		DroppedRows: dropped,
	}
	stats.RunsSaved = stats.Schedulable - stats.Batches
	if stats.RunsSaved < 0 {
		stats.RunsSaved = 0
	}

	ratios := make([]float64, 0, len(batches))
	for i := range batches {
		if batches[i].IsConsolidated() {
			stats.ConsolidatedBatches++
		}
		if !batches[i].CapacityUnknown {
			ratios = append(ratios, batches[i].FillRatio())
		}
	}

	switch len(ratios) {
	case 0:
	case 1:
		stats.MeanFillRatio = ratios[0]
	default:
		stats.MeanFillRatio, stats.StdDevFillRatio = stat.MeanStdDev(ratios, nil)
	}
	return stats
}
