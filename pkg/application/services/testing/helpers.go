package testing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/infrastructure/repositories/memory"
)

// Day returns a UTC date
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Amount parses a decimal literal, panicking on bad input
func Amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// MustCreateRecipe is a helper for tests - panics on validation error
func MustCreateRecipe(id string, maxBatchSize string, leadTime int) *entities.RecipeProfile {
	class := entities.LeadTimeDefault
	if leadTime == 1 {
		class = entities.LeadTimeShort
	}
	profile, err := entities.NewRecipeProfile(entities.RecipeID(id), Amount(maxBatchSize), leadTime, class)
	if err != nil {
		panic(err)
	}
	return profile
}

// MustCreateTask is a helper for tests - panics on validation error
func MustCreateTask(id int, recipe string, fill time.Time, amount string) *entities.DemandTask {
	task, err := entities.NewDemandTask(
		id,
		entities.RecipeID(recipe),
		fill,
		Amount(amount),
		entities.ProductAttrs{Code: fmt.Sprintf("P%03d", id), Name: fmt.Sprintf("Product %d", id), CellCount: id},
	)
	if err != nil {
		panic(err)
	}
	return task
}

// BuildOctoberCalendar returns the weekdays of October 2025 as a calendar
func BuildOctoberCalendar() *entities.Calendar {
	var days []time.Time
	for d := Day(2025, 10, 1); d.Month() == time.October; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	cal, err := entities.NewCalendar(days)
	if err != nil {
		panic(err)
	}
	return cal
}

// BuildSoapRecipes builds a recipe repository with one short and one standard recipe:
// NR (capacity 100, lead time 1) and AB (capacity 250, lead time 3).
func BuildSoapRecipes() *memory.RecipeRepository {
	repo := memory.NewRecipeRepository(2)
	err := repo.LoadRecipes([]*entities.RecipeProfile{
		MustCreateRecipe("NR", "100", 1),
		MustCreateRecipe("AB", "250", 3),
	})
	if err != nil {
		panic(err)
	}
	return repo
}

// ScheduledTask builds a schedulable task with both prep days set to prep
func ScheduledTask(id int, recipe string, fill, prep time.Time, amount, capacity string) entities.ScheduledTask {
	task := MustCreateTask(id, recipe, fill, amount)
	deadline, preferred := prep, prep
	return entities.ScheduledTask{
		DemandTask:       *task,
		LeadTimeDays:     1,
		MaxBatchSize:     Amount(capacity),
		PreferredPrepDay: &preferred,
		DeadlinePrepDay:  &deadline,
	}
}
