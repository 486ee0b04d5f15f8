package metrics

import "github.com/vsinha/batchplan/pkg/domain/entities"

// RunSummary is the per-run data a Recorder observes.
type RunSummary struct {
	SchedulableTasks int
	DroppedRows      map[string]int
	Batches          []entities.Batch
	Shortages        []entities.ShortageRecord
}

// Recorder records planning runs for observability purposes.
type Recorder interface {
	RecordRun(summary RunSummary) error
}

// NopRecorder implements Recorder with no-op methods.
type NopRecorder struct{}

func (NopRecorder) RecordRun(RunSummary) error { return nil }
