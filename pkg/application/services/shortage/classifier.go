package shortage

import (
	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
)

// Classifier attaches a reason to every task the scheduler could not place
type Classifier struct {
	calendar *entities.Calendar
	log      logger.Logger
}

// NewClassifier creates a classifier over the planning calendar
func NewClassifier(calendar *entities.Calendar, log logger.Logger) *Classifier {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Classifier{calendar: calendar, log: log}
}

// Reason returns why task has no deadline prep day
func (c *Classifier) Reason(task entities.ScheduledTask) entities.ShortageReason {
	if !c.calendar.Contains(task.FillDate) {
		return entities.ReasonFillDateNotInCalendar
	}
	return entities.ReasonLeadTimeOutOfRange
}

// Classify turns unscheduled tasks into shortage records, preserving input order
func (c *Classifier) Classify(tasks []entities.ScheduledTask) []entities.ShortageRecord {
	records := make([]entities.ShortageRecord, 0, len(tasks))
	for _, task := range tasks {
		reason := c.Reason(task)
		c.log.Debugw("task unschedulable", map[string]any{
			"task":   task.ID,
			"recipe": string(task.RecipeID),
			"fill":   task.FillDate.Format(entities.DateLayout),
			"reason": reason.String(),
		})
		records = append(records, entities.ShortageRecord{ScheduledTask: task, Reason: reason})
	}
	if len(records) > 0 {
		c.log.Warnf("%d tasks could not be scheduled", len(records))
	}
	return records
}
