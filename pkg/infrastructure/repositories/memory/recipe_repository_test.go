package memory

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

func TestRecipeRepository_FirstOccurrenceWins(t *testing.T) {
	repo := NewRecipeRepository(2)

	err := repo.LoadRecipes([]*entities.RecipeProfile{
		{RecipeID: "NR", MaxBatchSize: decimal.NewFromInt(100), LeadTimeDays: 1},
		{RecipeID: "NR", MaxBatchSize: decimal.NewFromInt(999), LeadTimeDays: 3},
		{RecipeID: "AB", MaxBatchSize: decimal.NewFromInt(50), LeadTimeDays: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Len())

	nr, err := repo.GetRecipe("NR")
	require.NoError(t, err)
	assert.True(t, nr.MaxBatchSize.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, nr.LeadTimeDays)

	all, err := repo.GetAllRecipes()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, entities.RecipeID("NR"), all[0].RecipeID)
	assert.Equal(t, entities.RecipeID("AB"), all[1].RecipeID)
}

func TestRecipeRepository_NotFound(t *testing.T) {
	repo := NewRecipeRepository(0)

	_, err := repo.GetRecipe("missing")
	assert.True(t, errors.Is(err, entities.ErrRecipeNotFound))
	assert.EqualError(t, err, "recipe not found: missing")
}

func TestRecipeRepository_ReturnsCopies(t *testing.T) {
	repo := NewRecipeRepository(1)
	repo.AddRecipe(entities.RecipeProfile{RecipeID: "NR", LeadTimeDays: 1})

	p, err := repo.GetRecipe("NR")
	require.NoError(t, err)
	p.LeadTimeDays = 42

	again, err := repo.GetRecipe("NR")
	require.NoError(t, err)
	assert.Equal(t, 1, again.LeadTimeDays)
}
