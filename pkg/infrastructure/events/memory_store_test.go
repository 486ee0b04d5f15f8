package events

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventStore_VersionsPerStream(t *testing.T) {
	store := NewInMemoryEventStore(0, nil)
	now := time.Now()

	require.NoError(t, store.AppendEvents("run-1", NewEvent(PlanStartedEvent, "run-1", PlanStarted{Recipes: 2}, now)))
	require.NoError(t, store.AppendEvents("run-2", NewEvent(PlanStartedEvent, "run-2", PlanStarted{}, now)))
	require.NoError(t, store.AppendEvents("run-1", NewEvent(PlanCompletedEvent, "run-1", PlanCompleted{Batches: 1}, now)))

	events, err := store.ReadEvents("run-1", 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Version())
	assert.Equal(t, 2, events[1].Version())
	assert.Equal(t, PlanCompletedEvent, events[1].Type())

	tail, err := store.ReadEvents("run-1", 2)
	require.NoError(t, err)
	assert.Len(t, tail, 1)

	missing, err := store.ReadEvents("nope", 1)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestInMemoryEventStore_AppendEventsEmpty(t *testing.T) {
	store := NewInMemoryEventStore(1, nil)
	require.NoError(t, store.AppendEvents("run"))

	events, err := store.ReadEvents("run", 1)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestInMemoryEventStore_EvictsOldestStream(t *testing.T) {
	store := NewInMemoryEventStore(2, nil)
	now := time.Now()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.AppendEvents(id, NewEvent(PlanStartedEvent, id, nil, now)))
	}

	for id, want := range map[string]int{"a": 0, "b": 1, "c": 1} {
		events, err := store.ReadEvents(id, 1)
		require.NoError(t, err)
		assert.Len(t, events, want, id)
	}
}

func TestInMemoryEventStore_TrailsAreWholeUnderConcurrency(t *testing.T) {
	const (
		runs    = 20
		perRun  = 50
		history = 5
	)
	store := NewInMemoryEventStore(history, nil)
	now := time.Now()

	var wg sync.WaitGroup
	for r := 0; r < runs; r++ {
		id := fmt.Sprintf("run-%d", r)
		trail := make([]Event, perRun)
		for i := range trail {
			trail[i] = NewEvent(BatchClosedEvent, id, nil, now)
		}

		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.AppendEvents(id, trail...))
		}()
		go func() {
			defer wg.Done()
			events, err := store.ReadEvents(id, 1)
			assert.NoError(t, err)
			assert.Contains(t, []int{0, perRun}, len(events), id)
		}()
	}
	wg.Wait()

	kept := 0
	for r := 0; r < runs; r++ {
		events, err := store.ReadEvents(fmt.Sprintf("run-%d", r), 1)
		require.NoError(t, err)
		if len(events) == 0 {
			continue
		}
		kept++
		require.Len(t, events, perRun)
		for i, e := range events {
			assert.Equal(t, i+1, e.Version())
		}
	}
	assert.Equal(t, history, kept)
}
