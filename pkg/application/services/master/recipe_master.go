package master

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/domain/services"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
)

// Logical column keys of the recipe master table
const (
	ColRecipe      = "recipe"
	ColCapacity    = "capacity"
	ColLongProcess = "long_process"
	ColItemCode    = "item_code"
)

// Columns lists the accepted header names for the recipe master table.
// The recipe column falls back to the first column.
var Columns = []services.ColumnSpec{
	{Key: ColRecipe, Synonyms: []string{"素地", "Recipe", "recipe", "recipe_name", "item_name"}, Fallback: 0, HasFallback: true},
	{Key: ColCapacity, Synonyms: []string{"油脂仕込み量１", "釜最大容量", "Maxbatchsize", "max_batch_size"}},
	{Key: ColLongProcess, Synonyms: []string{"工程３", "process3", "long_process"}, Optional: true},
	{Key: ColItemCode, Synonyms: []string{"item_code", "コード"}, Optional: true},
}

// LeadTimePolicy decides a recipe's lead time from master data
type LeadTimePolicy struct {
	ShortDays    int
	DefaultDays  int
	ShortRecipes []entities.RecipeID
}

// Classify returns the lead time class and days for a recipe. A recipe is short
// when it is listed in ShortRecipes or has no long-process indicator.
func (p LeadTimePolicy) Classify(id entities.RecipeID, hasLongProcess bool) (entities.LeadTimeClass, int) {
	for _, short := range p.ShortRecipes {
		if short == id {
			return entities.LeadTimeShort, p.ShortDays
		}
	}
	if !hasLongProcess {
		return entities.LeadTimeShort, p.ShortDays
	}
	return entities.LeadTimeDefault, p.DefaultDays
}

// RecipeMaster resolves per-recipe capacity and lead time from the master table
type RecipeMaster struct {
	policy LeadTimePolicy
	log    logger.Logger
}

// NewRecipeMaster creates a RecipeMaster. A nil logger disables logging.
func NewRecipeMaster(policy LeadTimePolicy, log logger.Logger) *RecipeMaster {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &RecipeMaster{policy: policy, log: log}
}

// Build produces one profile per distinct recipe, keeping the first row of each.
// It returns a *entities.SchemaError when the capacity column cannot be found.
func (m *RecipeMaster) Build(table *entities.RawTable) ([]*entities.RecipeProfile, error) {
	cols, err := services.ResolveColumns("recipe master", table.Header, Columns)
	if err != nil {
		return nil, err
	}
	_, hasIndicator := cols.Index(ColLongProcess)

	seen := make(map[entities.RecipeID]bool, len(table.Rows))
	profiles := make([]*entities.RecipeProfile, 0, len(table.Rows))

	for i, row := range table.Rows {
		id := entities.RecipeID(cols.Value(row, ColRecipe))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		capacity, ok := services.ParseAmount(cols.Value(row, ColCapacity))
		if !ok || capacity.IsNegative() {
			m.log.Warnf("recipe master row %d: recipe %s has invalid capacity %q, using 0",
				i+2, id, cols.Value(row, ColCapacity))
			capacity = decimal.Zero
		}

		longProcess := hasIndicator && cols.Value(row, ColLongProcess) != ""
		class, days := m.policy.Classify(id, longProcess)

		profile, err := entities.NewRecipeProfile(id, capacity, days, class)
		if err != nil {
			return nil, err
		}
		profile.ItemCode = cols.Value(row, ColItemCode)
		profiles = append(profiles, profile)
	}

	m.log.Infof("loaded %d recipe profiles from %d master rows", len(profiles), len(table.Rows))
	return profiles, nil
}
