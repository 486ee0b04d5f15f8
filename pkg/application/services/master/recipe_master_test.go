package master

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

var policy = LeadTimePolicy{ShortDays: 1, DefaultDays: 3, ShortRecipes: []entities.RecipeID{"NR", "LC"}}

func TestRecipeMaster_Build(t *testing.T) {
	table := &entities.RawTable{
		Header: []string{"素地", "油脂仕込み量１", "工程３", "item_code"},
		Rows: [][]string{
			{"NR", "100", "x", "A-1"},
			{"AB", "1,500", "x", "A-2"},
			{"CD", "80", "", "A-3"},
			{"AB", "9", "", "dup"},
			{"EF", "bad", "x", ""},
			{"", "10", "x", ""},
		},
	}

	profiles, err := NewRecipeMaster(policy, nil).Build(table)
	require.NoError(t, err)
	require.Len(t, profiles, 4)

	byID := map[entities.RecipeID]*entities.RecipeProfile{}
	for _, p := range profiles {
		byID[p.RecipeID] = p
	}

	assert.Equal(t, 1, byID["NR"].LeadTimeDays, "listed short recipe")
	assert.Equal(t, entities.LeadTimeShort, byID["NR"].LeadTimeClass)
	assert.Equal(t, 3, byID["AB"].LeadTimeDays, "long process")
	assert.Equal(t, "1500", byID["AB"].MaxBatchSize.String(), "first occurrence wins")
	assert.Equal(t, "A-2", byID["AB"].ItemCode)
	assert.Equal(t, 1, byID["CD"].LeadTimeDays, "empty indicator means short")
	assert.True(t, byID["EF"].MaxBatchSize.IsZero(), "invalid capacity becomes 0")
}

func TestRecipeMaster_NoIndicatorColumn(t *testing.T) {
	table := &entities.RawTable{
		Header: []string{"Recipe", "max_batch_size"},
		Rows:   [][]string{{"AB", "50"}},
	}

	profiles, err := NewRecipeMaster(policy, nil).Build(table)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, 1, profiles[0].LeadTimeDays)
}

func TestRecipeMaster_SchemaError(t *testing.T) {
	table := &entities.RawTable{Header: []string{"素地", "名前"}}

	_, err := NewRecipeMaster(policy, nil).Build(table)
	var schemaErr *entities.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{ColCapacity}, schemaErr.Missing)
}
