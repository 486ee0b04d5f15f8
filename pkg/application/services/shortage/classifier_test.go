package shortage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testhelpers "github.com/vsinha/batchplan/pkg/application/services/testing"
	"github.com/vsinha/batchplan/pkg/domain/entities"
)

func unscheduled(id int, recipe string, fill string) entities.ScheduledTask {
	task := testhelpers.MustCreateTask(id, recipe, testhelpers.Day(2025, 10, 1), "10")
	task.FillDate = entities.Date(mustParse(fill))
	return entities.ScheduledTask{DemandTask: *task, LeadTimeDays: 3}
}

func mustParse(s string) time.Time {
	d, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestClassify(t *testing.T) {
	classifier := NewClassifier(testhelpers.BuildOctoberCalendar(), nil)

	records := classifier.Classify([]entities.ScheduledTask{
		unscheduled(1, "NR", "2025-10-11"), // Saturday
		unscheduled(2, "AB", "2025-10-02"),
		unscheduled(3, "AB", "2025-11-03"), // past the horizon
	})

	require.Len(t, records, 3)
	assert.Equal(t, entities.ReasonFillDateNotInCalendar, records[0].Reason)
	assert.Equal(t, entities.ReasonLeadTimeOutOfRange, records[1].Reason)
	assert.Equal(t, entities.ReasonFillDateNotInCalendar, records[2].Reason)
	assert.Equal(t, []int{1, 2, 3}, []int{records[0].ID, records[1].ID, records[2].ID})
}

func TestClassify_Empty(t *testing.T) {
	records := NewClassifier(testhelpers.BuildOctoberCalendar(), nil).Classify(nil)
	assert.Empty(t, records)
}
