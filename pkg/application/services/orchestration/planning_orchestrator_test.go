package orchestration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/batchplan/pkg/application/dto"
	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/infrastructure/config"
	"github.com/vsinha/batchplan/pkg/infrastructure/events"
	"github.com/vsinha/batchplan/pkg/infrastructure/metrics"
	fixtures "github.com/vsinha/batchplan/pkg/infrastructure/testing"
)

type recordingRecorder struct {
	runs []metrics.RunSummary
}

func (r *recordingRecorder) RecordRun(s metrics.RunSummary) error {
	r.runs = append(r.runs, s)
	return nil
}

func soapInput() dto.PlanInput {
	return dto.PlanInput{
		Calendar: fixtures.SoapCalendar(),
		Recipes:  fixtures.SoapRecipes(),
		Demand:   fixtures.SoapDemand(),
	}
}

func newTestOrchestrator(t *testing.T, recorder metrics.Recorder) *PlanningOrchestrator {
	t.Helper()
	planning := config.PlanningConfig{}
	planning.SetDefaults()
	cfg, err := ConfigFromPlanning(planning)
	require.NoError(t, err)
	return NewPlanningOrchestrator(cfg, recorder, nil)
}

func TestPlan_EndToEnd(t *testing.T) {
	recorder := &recordingRecorder{}
	result, err := newTestOrchestrator(t, recorder).Plan(context.Background(), soapInput())
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID.String())
	require.Len(t, result.Batches, 2)
	assert.Equal(t, "NR01", result.Batches[0].LotNumber())
	assert.Equal(t, "S-100", result.Batches[0].ItemCode)
	assert.Equal(t, "NR02", result.Batches[1].LotNumber())
	assert.Equal(t, "1001:Rose 60.00 / 1002:Lily 40.00(partial)", result.Batches[0].Summary())
	assert.Equal(t, 0, result.Batches[1].Lines[1].Product.CellCount)

	require.Len(t, result.Shortages, 2)
	assert.Equal(t, entities.ReasonFillDateNotInCalendar, result.Shortages[0].Reason)
	assert.Equal(t, entities.ReasonLeadTimeOutOfRange, result.Shortages[1].Reason)

	require.Len(t, result.DroppedRows, 3)
	assert.Equal(t, 7, result.DroppedRows[0].Row)

	assert.Equal(t, dto.PlanStats{
		Tasks:               5,
		Schedulable:         3,
		Shortages:           2,
		Batches:             2,
		RunsSaved:           1,
		ConsolidatedBatches: 2,
		DroppedRows:         3,
		MeanFillRatio:       result.Stats.MeanFillRatio,
		StdDevFillRatio:     result.Stats.StdDevFillRatio,
	}, result.Stats)
	assert.InDelta(t, 0.6, result.Stats.MeanFillRatio, 1e-9)

	require.Len(t, recorder.runs, 1)
	assert.Equal(t, 3, recorder.runs[0].SchedulableTasks)
	assert.Equal(t, 1, recorder.runs[0].DroppedRows["outside date window"])
}

func TestPlan_PartitionCompleteness(t *testing.T) {
	result, err := newTestOrchestrator(t, nil).Plan(context.Background(), soapInput())
	require.NoError(t, err)

	inBatches := make(map[int]bool)
	for _, b := range result.Batches {
		for _, line := range b.Lines {
			inBatches[line.TaskID] = true
		}
	}
	inShortages := make(map[int]bool)
	for _, s := range result.Shortages {
		inShortages[s.ID] = true
	}

	for id := 1; id <= result.Stats.Tasks; id++ {
		assert.True(t, inBatches[id] != inShortages[id], "task %d must be in exactly one output", id)
	}
}

func TestPlan_CalendarFromFirstRow(t *testing.T) {
	input := soapInput()
	input.Calendar = &entities.RawTable{
		Header: []string{"Column1", "Column2"},
		Rows:   [][]string{fixtures.OctoberWorkdays()},
	}

	result, err := newTestOrchestrator(t, nil).Plan(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, result.Batches, 2)
}

func TestPlan_SchemaErrorAbortsRun(t *testing.T) {
	recorder := &recordingRecorder{}
	input := soapInput()
	input.Demand.Header = []string{"date", "recipe", "volume", "code", "name", "cell"}

	result, err := newTestOrchestrator(t, recorder).Plan(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, result)
	var schemaErr *entities.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"quantity"}, schemaErr.Missing)
	assert.Empty(t, recorder.runs)
}

func TestPlan_EmptyCalendar(t *testing.T) {
	input := soapInput()
	input.Calendar = &entities.RawTable{Header: []string{"working days"}}

	_, err := newTestOrchestrator(t, nil).Plan(context.Background(), input)
	assert.ErrorIs(t, err, entities.ErrCalendarEmpty)
}

func TestPlan_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestOrchestrator(t, nil).Plan(ctx, soapInput())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigFromPlanning_InvalidWindow(t *testing.T) {
	planning := config.PlanningConfig{}
	planning.SetDefaults()
	planning.Window.Start = "October"

	_, err := ConfigFromPlanning(planning)
	assert.Error(t, err)
}

func TestPlan_RecordsAuditTrail(t *testing.T) {
	store := events.NewInMemoryEventStore(0, nil)
	result, err := newTestOrchestrator(t, nil).WithEventStore(store).Plan(context.Background(), soapInput())
	require.NoError(t, err)

	trail, err := store.ReadEvents(result.RunID.String(), 1)
	require.NoError(t, err)

	var types []string
	for _, e := range trail {
		types = append(types, e.Type())
	}
	assert.Equal(t, []string{
		events.PlanStartedEvent,
		events.DemandDroppedEvent, events.DemandDroppedEvent, events.DemandDroppedEvent,
		events.BatchClosedEvent, events.BatchClosedEvent,
		events.ShortageIdentifiedEvent, events.ShortageIdentifiedEvent,
		events.PlanCompletedEvent,
	}, types)

	started, ok := trail[0].Data().(events.PlanStarted)
	require.True(t, ok)
	assert.Equal(t, 23, started.CalendarDays)
	assert.Equal(t, 2, started.Recipes)
	assert.Equal(t, "NR01", trail[4].Data().(events.BatchClosed).LotNumber)
}
