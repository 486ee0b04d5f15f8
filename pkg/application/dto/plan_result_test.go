package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

func batch(total, capacity string, lines int) entities.Batch {
	b := entities.Batch{
		TotalAmount: decimal.RequireFromString(total),
		Capacity:    decimal.RequireFromString(capacity),
	}
	for i := 0; i < lines; i++ {
		b.Lines = append(b.Lines, entities.BatchLine{TaskID: i + 1})
	}
	return b
}

func TestComputeStats(t *testing.T) {
	batches := []entities.Batch{
		batch("100", "100", 2),
		batch("20", "100", 2),
	}
	shortages := []entities.ShortageRecord{{Reason: entities.ReasonLeadTimeOutOfRange}}

	stats := ComputeStats(4, batches, shortages, 2)

	assert.Equal(t, 4, stats.Tasks)
	assert.Equal(t, 3, stats.Schedulable)
	assert.Equal(t, 1, stats.Shortages)
	assert.Equal(t, 2, stats.Batches)
	assert.Equal(t, 1, stats.RunsSaved)
	assert.Equal(t, 2, stats.ConsolidatedBatches)
	assert.Equal(t, 2, stats.DroppedRows)
	assert.InDelta(t, 0.6, stats.MeanFillRatio, 1e-9)
	assert.InDelta(t, 0.565685, stats.StdDevFillRatio, 1e-6)
}

func TestComputeStats_SkipsUnknownCapacity(t *testing.T) {
	unknown := batch("40", "0", 1)
	unknown.CapacityUnknown = true

	stats := ComputeStats(2, []entities.Batch{batch("50", "100", 1), unknown}, nil, 0)

	assert.Equal(t, 0, stats.RunsSaved)
	assert.Equal(t, 0, stats.ConsolidatedBatches)
	assert.InDelta(t, 0.5, stats.MeanFillRatio, 1e-9)
	assert.Zero(t, stats.StdDevFillRatio)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(0, nil, nil, 0)
	assert.Equal(t, PlanStats{}, stats)
}
