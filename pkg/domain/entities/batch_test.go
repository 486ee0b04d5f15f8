package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBatch_Presentation(t *testing.T) {
	b := &Batch{
		RecipeID:    "NR",
		Sequence:    3,
		TotalAmount: decimal.NewFromInt(75),
		Capacity:    decimal.NewFromInt(100),
		Lines: []BatchLine{
			{Product: ProductAttrs{Code: "1001", Name: "Soap A"}, Amount: decimal.NewFromInt(60)},
			{
				Product:        ProductAttrs{Code: "1002", Name: "Soap B"},
				Amount:         decimal.RequireFromString("15.5"),
				IsPartial:      true,
				OriginalAmount: decimal.NewNullDecimal(decimal.NewFromInt(50)),
			},
		},
	}

	assert.Equal(t, "NR03", b.LotNumber())
	assert.True(t, b.IsConsolidated())
	assert.Equal(t, "consolidated", b.ConsolidationFlag())
	assert.Equal(t, 1, b.LinesSaved())
	assert.InDelta(t, 0.75, b.FillRatio(), 1e-9)
	assert.Equal(t, "1001:Soap A 60.00 / 1002:Soap B 15.50(partial)", b.Summary())
	assert.Equal(t, "whole", b.Lines[0].Status())
	assert.Equal(t, "partial", b.Lines[1].Status())
}

func TestBatch_SingleLine(t *testing.T) {
	b := &Batch{Lines: []BatchLine{{Amount: decimal.NewFromInt(1)}}}
	assert.False(t, b.IsConsolidated())
	assert.Equal(t, "single", b.ConsolidationFlag())
	assert.Equal(t, 0, b.LinesSaved())
	assert.Zero(t, b.FillRatio())
}
