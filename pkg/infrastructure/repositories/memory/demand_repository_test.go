package memory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

func TestDemandRepository_LoadAndGet(t *testing.T) {
	repo := NewDemandRepository()
	fill := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.LoadDemands([]*entities.DemandTask{
		{ID: 1, RecipeID: "NR", FillDate: fill, RequiredAmount: decimal.NewFromInt(60)},
		{ID: 2, RecipeID: "LC", FillDate: fill, RequiredAmount: decimal.NewFromInt(5)},
	}))

	demands, err := repo.GetDemands()
	require.NoError(t, err)
	require.Len(t, demands, 2)
	assert.Equal(t, 1, demands[0].ID)
	assert.Equal(t, entities.RecipeID("LC"), demands[1].RecipeID)
}
