package orchestration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vsinha/batchplan/pkg/application/dto"
	"github.com/vsinha/batchplan/pkg/application/services/batching"
	"github.com/vsinha/batchplan/pkg/application/services/master"
	"github.com/vsinha/batchplan/pkg/application/services/normalize"
	"github.com/vsinha/batchplan/pkg/application/services/scheduling"
	"github.com/vsinha/batchplan/pkg/application/services/shortage"
	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/domain/services"
	"github.com/vsinha/batchplan/pkg/infrastructure/config"
	"github.com/vsinha/batchplan/pkg/infrastructure/events"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
	"github.com/vsinha/batchplan/pkg/infrastructure/metrics"
	"github.com/vsinha/batchplan/pkg/infrastructure/repositories/memory"
)

// Config carries the planning constants for every pipeline stage
type Config struct {
	CalendarStartYear int
	Window            normalize.Window
	LeadTimes         master.LeadTimePolicy
	Scheduling        scheduling.Config
	Consolidation     batching.Config
}

// ConfigFromPlanning converts the planning section of the application config
func ConfigFromPlanning(p config.PlanningConfig) (Config, error) {
	start, end, err := p.Window.Bounds()
	if err != nil {
		return Config{}, fmt.Errorf("invalid planning window: %w", err)
	}

	short := make([]entities.RecipeID, 0, len(p.ShortLeadTimeRecipes))
	for _, id := range p.ShortLeadTimeRecipes {
		short = append(short, entities.RecipeID(id))
	}

	return Config{
		CalendarStartYear: p.CalendarStartYear,
		Window:            normalize.Window{Start: start, End: end},
		LeadTimes: master.LeadTimePolicy{
			ShortDays:    p.ShortLeadTime,
			DefaultDays:  p.DefaultLeadTime,
			ShortRecipes: short,
		},
		Scheduling: scheduling.Config{
			StandardLeadTime: p.StandardLeadTime,
			DefaultLeadTime:  p.DefaultLeadTime,
		},
		Consolidation: batching.Config{MaxItemsPerBatch: p.MaxItemsPerBatch},
	}, nil
}

// PlanningOrchestrator runs the full pipeline: calendar, recipe master,
// normalization, backward scheduling, consolidation and shortage classification
type PlanningOrchestrator struct {
	config    Config
	recorder  metrics.Recorder
	events    events.EventStore
	newLogger func(component string) logger.Logger
	now       func() time.Time
}

// NewPlanningOrchestrator creates a new planning orchestrator. A nil recorder or
// logger factory disables metrics or logging.
func NewPlanningOrchestrator(
	cfg Config,
	recorder metrics.Recorder,
	newLogger func(component string) logger.Logger,
) *PlanningOrchestrator {
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	if newLogger == nil {
		newLogger = func(string) logger.Logger { return logger.NopLogger{} }
	}
	return &PlanningOrchestrator{
		config:    cfg,
		recorder:  recorder,
		newLogger: newLogger,
		now:       time.Now,
	}
}

// WithEventStore records an audit trail of every run, one stream per run ID
func (po *PlanningOrchestrator) WithEventStore(store events.EventStore) *PlanningOrchestrator {
	po.events = store
	return po
}

// Plan runs one planning pass over the input tables. Schema errors abort the run
// before anything is scheduled; dropped rows and unschedulable tasks are part of
// the result.
func (po *PlanningOrchestrator) Plan(ctx context.Context, input dto.PlanInput) (*dto.PlanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input.Calendar == nil || input.Recipes == nil || input.Demand == nil {
		return nil, fmt.Errorf("calendar, recipe and demand tables are all required")
	}
	log := po.newLogger("orchestrator")

	// Step 1: working-day calendar
	calendar, err := po.buildCalendar(input.Calendar)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar: %w", err)
	}
	log.Infof("calendar has %d working days from %s to %s", calendar.Len(),
		calendar.Start().Format(entities.DateLayout), calendar.End().Format(entities.DateLayout))

	// Step 2: recipe master
	profiles, err := master.NewRecipeMaster(po.config.LeadTimes, po.newLogger("master")).Build(input.Recipes)
	if err != nil {
		return nil, fmt.Errorf("failed to build recipe master: %w", err)
	}
	recipes := memory.NewRecipeRepository(len(profiles))
	if err := recipes.LoadRecipes(profiles); err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	// Step 3: demand normalization
	normalized, err := normalize.NewDemandNormalizer(po.config.Window, po.newLogger("normalize")).Normalize(input.Demand)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize demand: %w", err)
	}
	demands := memory.NewDemandRepository()
	if err := demands.LoadDemands(normalized.Tasks); err != nil {
		return nil, fmt.Errorf("failed to load demand: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 4: backward scheduling
	tasks, err := demands.GetDemands()
	if err != nil {
		return nil, fmt.Errorf("failed to read demand: %w", err)
	}
	scheduler := scheduling.NewBackwardScheduler(calendar, recipes, po.config.Scheduling, po.newLogger("scheduler"))
	scheduled, err := scheduler.Schedule(tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule demand: %w", err)
	}

	// Step 5: consolidation and shortage classification
	batches := batching.NewConsolidator(po.config.Consolidation, po.newLogger("batching")).Consolidate(scheduled.Schedulable)
	shortages := shortage.NewClassifier(calendar, po.newLogger("shortage")).Classify(scheduled.Unscheduled)

	dropped := normalized.DroppedByReason()
	result := &dto.PlanResult{
		RunID:       uuid.New(),
		PlannedAt:   po.now(),
		Batches:     batches,
		Shortages:   shortages,
		DroppedRows: droppedRows(normalized.Warnings),
		Stats:       dto.ComputeStats(len(tasks), batches, shortages, len(normalized.Warnings)),
	}

	po.publish(log, result, input, calendar.Len(), len(profiles))

	if err := po.recorder.RecordRun(metrics.RunSummary{
		SchedulableTasks: len(scheduled.Schedulable),
		DroppedRows:      dropped,
		Batches:          batches,
		Shortages:        shortages,
	}); err != nil {
		log.Warnf("failed to record metrics: %v", err)
	}

	log.Infof("run %s: %d tasks, %d batches, %d shortages, %d runs saved",
		result.RunID, result.Stats.Tasks, result.Stats.Batches, result.Stats.Shortages, result.Stats.RunsSaved)
	return result, nil
}

// publish appends the run's audit trail. Failures are logged, not returned.
func (po *PlanningOrchestrator) publish(
	log logger.Logger,
	result *dto.PlanResult,
	input dto.PlanInput,
	calendarDays, recipes int,
) {
	if po.events == nil {
		return
	}
	stream := result.RunID.String()
	at := result.PlannedAt

	batch := []events.Event{
		events.NewEvent(events.PlanStartedEvent, stream, events.PlanStarted{
			CalendarDays: calendarDays,
			Recipes:      recipes,
			DemandRows:   len(input.Demand.Rows),
		}, at),
	}
	for _, d := range result.DroppedRows {
		batch = append(batch, events.NewEvent(events.DemandDroppedEvent, stream,
			events.DemandDropped{Row: d.Row, Reason: d.Reason, Value: d.Value}, at))
	}
	for i := range result.Batches {
		b := &result.Batches[i]
		batch = append(batch, events.NewEvent(events.BatchClosedEvent, stream, events.BatchClosed{
			LotNumber:   b.LotNumber(),
			RecipeID:    string(b.RecipeID),
			Lines:       len(b.Lines),
			TotalAmount: b.TotalAmount,
			Slack:       b.Slack,
		}, at))
	}
	for _, s := range result.Shortages {
		batch = append(batch, events.NewEvent(events.ShortageIdentifiedEvent, stream, events.ShortageIdentified{
			TaskID:   s.ID,
			RecipeID: string(s.RecipeID),
			FillDate: s.FillDate.Format(entities.DateLayout),
			Reason:   s.Reason.String(),
		}, at))
	}
	batch = append(batch, events.NewEvent(events.PlanCompletedEvent, stream, events.PlanCompleted{
		Tasks:     result.Stats.Tasks,
		Batches:   result.Stats.Batches,
		Shortages: result.Stats.Shortages,
		RunsSaved: result.Stats.RunsSaved,
	}, at))

	if err := po.events.AppendEvents(stream, batch...); err != nil {
		log.Warnf("failed to record audit trail for run %s: %v", stream, err)
	}
}

// buildCalendar reads date tokens from the header, falling back to the first
// data row for tables whose header is not the date line.
func (po *PlanningOrchestrator) buildCalendar(table *entities.RawTable) (*entities.Calendar, error) {
	calendar, err := services.BuildCalendar(table.Header, po.config.CalendarStartYear)
	if err == nil || !errors.Is(err, entities.ErrCalendarEmpty) || len(table.Rows) == 0 {
		return calendar, err
	}
	return services.BuildCalendar(table.Rows[0], po.config.CalendarStartYear)
}

func droppedRows(warnings []normalize.DataQualityWarning) []dto.DroppedRow {
	if len(warnings) == 0 {
		return nil
	}
	rows := make([]dto.DroppedRow, 0, len(warnings))
	for _, w := range warnings {
		rows = append(rows, dto.DroppedRow{Row: w.Row, Reason: string(w.Reason), Value: w.Value})
	}
	return rows
}
