package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipeProfile_Validation(t *testing.T) {
	p, err := NewRecipeProfile("NR", decimal.NewFromInt(100), 1, LeadTimeShort)
	require.NoError(t, err)
	assert.True(t, p.HasCapacity())
	assert.Equal(t, "Short", p.LeadTimeClass.String())

	testCases := []struct {
		name        string
		id          RecipeID
		size        decimal.Decimal
		leadTime    int
		expectError string
	}{
		{"empty id", "", decimal.NewFromInt(1), 1, "recipe id cannot be empty"},
		{"negative size", "R", decimal.NewFromInt(-1), 1, "max batch size cannot be negative, got -1"},
		{"zero lead time", "R", decimal.NewFromInt(1), 0, "lead time must be positive, got 0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRecipeProfile(tc.id, tc.size, tc.leadTime, LeadTimeDefault)
			assert.EqualError(t, err, tc.expectError)
		})
	}

	zero, err := NewRecipeProfile("Z", decimal.Zero, 3, LeadTimeDefault)
	require.NoError(t, err)
	assert.False(t, zero.HasCapacity())
}
