package repositories

import "github.com/vsinha/batchplan/pkg/domain/entities"

// RecipeRepository provides access to recipe master data
type RecipeRepository interface {
	// GetRecipe returns entities.ErrRecipeNotFound for unknown identifiers.
	GetRecipe(id entities.RecipeID) (*entities.RecipeProfile, error)
	GetAllRecipes() ([]*entities.RecipeProfile, error)
	LoadRecipes(profiles []*entities.RecipeProfile) error
}
