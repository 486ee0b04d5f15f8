package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

func TestPromRecorder_RecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	require.NoError(t, err)

	err = rec.RecordRun(RunSummary{
		SchedulableTasks: 3,
		DroppedRows:      map[string]int{"non-positive quantity": 2},
		Batches: []entities.Batch{
			{RecipeID: "NR", TotalAmount: decimal.NewFromInt(100), Capacity: decimal.NewFromInt(100)},
			{RecipeID: "NR", TotalAmount: decimal.NewFromInt(20), Capacity: decimal.NewFromInt(100)},
		},
		Shortages: []entities.ShortageRecord{{Reason: entities.ReasonLeadTimeOutOfRange}},
	})
	require.NoError(t, err)

	expected := `
# HELP batchplan_batches_total Preparation batches emitted, by recipe
# TYPE batchplan_batches_total counter
batchplan_batches_total{recipe="NR"} 2
`
	assert.NoError(t, testutil.CollectAndCompare(rec.batches, strings.NewReader(expected)))
	assert.Equal(t, 3.0, testutil.ToFloat64(rec.tasks.WithLabelValues("schedulable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.tasks.WithLabelValues("shortage")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.dropped.WithLabelValues("non-positive quantity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.shortages.WithLabelValues("lead time exceeds calendar range")))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.fill))
}

func TestNewPromRecorder_ReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorder(reg)
	require.NoError(t, err)
	second, err := NewPromRecorder(reg)
	require.NoError(t, err)
	assert.Same(t, first.tasks, second.tasks)
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	assert.NoError(t, r.RecordRun(RunSummary{}))
}
