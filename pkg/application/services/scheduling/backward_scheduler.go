package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/domain/repositories"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
)

// Config holds the lead-time constants used by the scheduler
type Config struct {
	// StandardLeadTime offsets the preferred prep day for every task.
	StandardLeadTime int
	// DefaultLeadTime applies to recipes missing from the master.
	DefaultLeadTime int
}

// Result partitions scheduled tasks by feasibility
type Result struct {
	// Schedulable is sorted by deadline, preferred day, then recipe.
	Schedulable []entities.ScheduledTask
	Unscheduled []entities.ScheduledTask
}

// BackwardScheduler derives preparation days by walking back along the calendar
type BackwardScheduler struct {
	calendar *entities.Calendar
	recipes  repositories.RecipeRepository
	config   Config
	log      logger.Logger
}

// NewBackwardScheduler creates a scheduler over an immutable calendar and recipe master
func NewBackwardScheduler(
	calendar *entities.Calendar,
	recipes repositories.RecipeRepository,
	config Config,
	log logger.Logger,
) *BackwardScheduler {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &BackwardScheduler{calendar: calendar, recipes: recipes, config: config, log: log}
}

// PrepDay returns the business day leadTimeDays before d, or nil when d is not a
// business day or the offset falls before the start of the horizon.
func (s *BackwardScheduler) PrepDay(d time.Time, leadTimeDays int) *time.Time {
	return s.calendar.PrepDay(d, leadTimeDays)
}

// Schedule computes preferred and deadline prep days for each task and splits the
// tasks into schedulable and unscheduled sets. Every input task lands in exactly
// one of them.
func (s *BackwardScheduler) Schedule(tasks []*entities.DemandTask) (*Result, error) {
	result := &Result{
		Schedulable: make([]entities.ScheduledTask, 0, len(tasks)),
	}
	unknown := make(map[entities.RecipeID]bool)

	for _, task := range tasks {
		terms, known, err := s.recipeTerms(task.RecipeID)
		if err != nil {
			return nil, err
		}
		if !known && !unknown[task.RecipeID] {
			unknown[task.RecipeID] = true
			s.log.Warnf("recipe %s not in master, using default lead time %d and no capacity",
				task.RecipeID, terms.LeadTimeDays)
		}

		scheduled := entities.ScheduledTask{
			DemandTask:       *task,
			LeadTimeDays:     terms.LeadTimeDays,
			MaxBatchSize:     terms.MaxBatchSize,
			ItemCode:         terms.ItemCode,
			PreferredPrepDay: s.PrepDay(task.FillDate, s.config.StandardLeadTime),
			DeadlinePrepDay:  s.PrepDay(task.FillDate, terms.LeadTimeDays),
		}

		if scheduled.Schedulable() {
			result.Schedulable = append(result.Schedulable, scheduled)
		} else {
			result.Unscheduled = append(result.Unscheduled, scheduled)
		}
	}

	SortByDeadline(result.Schedulable)

	s.log.Infof("scheduled %d tasks: %d schedulable, %d unscheduled",
		len(tasks), len(result.Schedulable), len(result.Unscheduled))
	return result, nil
}

// recipeTerms returns the master profile of a recipe; unknown recipes get the
// default lead time and zero capacity.
func (s *BackwardScheduler) recipeTerms(id entities.RecipeID) (entities.RecipeProfile, bool, error) {
	profile, err := s.recipes.GetRecipe(id)
	if errors.Is(err, entities.ErrRecipeNotFound) {
		return entities.RecipeProfile{
			RecipeID:      id,
			MaxBatchSize:  decimal.Zero,
			LeadTimeDays:  s.config.DefaultLeadTime,
			LeadTimeClass: entities.LeadTimeDefault,
		}, false, nil
	}
	if err != nil {
		return entities.RecipeProfile{}, false, fmt.Errorf("lookup recipe %s: %w", id, err)
	}
	return *profile, true, nil
}

// SortByDeadline orders tasks by deadline prep day, then preferred prep day,
// then recipe. Missing days sort last; ties keep their input order.
func SortByDeadline(tasks []entities.ScheduledTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if c := compareOptional(a.DeadlinePrepDay, b.DeadlinePrepDay); c != 0 {
			return c < 0
		}
		if c := compareOptional(a.PreferredPrepDay, b.PreferredPrepDay); c != 0 {
			return c < 0
		}
		return a.RecipeID < b.RecipeID
	})
}

func compareOptional(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
