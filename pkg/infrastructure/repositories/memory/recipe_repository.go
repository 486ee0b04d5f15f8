package memory

import (
	"fmt"

	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/domain/repositories"
)

// RecipeRepository provides in-memory recipe master storage.
// The first profile loaded for an identifier wins; later duplicates are ignored.
type RecipeRepository struct {
	recipes    []entities.RecipeProfile
	recipesMap map[entities.RecipeID]int
}

// NewRecipeRepository creates a new in-memory recipe repository
func NewRecipeRepository(expectedRecipes int) *RecipeRepository {
	return &RecipeRepository{
		recipes:    make([]entities.RecipeProfile, 0, expectedRecipes),
		recipesMap: make(map[entities.RecipeID]int, expectedRecipes),
	}
}

// Verify interface compliance
var _ repositories.RecipeRepository = (*RecipeRepository)(nil)

// LoadRecipes loads recipe profiles into the repository
func (r *RecipeRepository) LoadRecipes(profiles []*entities.RecipeProfile) error {
	for _, p := range profiles {
		if p == nil {
			return fmt.Errorf("nil recipe profile")
		}
		r.AddRecipe(*p)
	}
	return nil
}

// AddRecipe adds a profile unless its identifier is already present.
// It reports whether the profile was stored.
func (r *RecipeRepository) AddRecipe(profile entities.RecipeProfile) bool {
	if _, exists := r.recipesMap[profile.RecipeID]; exists {
		return false
	}
	r.recipesMap[profile.RecipeID] = len(r.recipes)
	r.recipes = append(r.recipes, profile)
	return true
}

// GetRecipe returns the profile for a recipe identifier
func (r *RecipeRepository) GetRecipe(id entities.RecipeID) (*entities.RecipeProfile, error) {
	index, exists := r.recipesMap[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entities.ErrRecipeNotFound, id)
	}
	profile := r.recipes[index]
	return &profile, nil
}

// GetAllRecipes returns all profiles in load order
func (r *RecipeRepository) GetAllRecipes() ([]*entities.RecipeProfile, error) {
	recipes := make([]*entities.RecipeProfile, 0, len(r.recipes))
	for i := range r.recipes {
		profile := r.recipes[i]
		recipes = append(recipes, &profile)
	}
	return recipes, nil
}

// Len returns the number of stored profiles
func (r *RecipeRepository) Len() int {
	return len(r.recipes)
}
