package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

func TestResolveColumns_FirstSynonymWins(t *testing.T) {
	header := []string{"recipe", " Batchsize ", "Recipe", "day"}
	specs := []ColumnSpec{
		{Key: "recipe", Synonyms: []string{"Recipe", "recipe"}},
		{Key: "quantity", Synonyms: []string{"batchsize"}},
		{Key: "date", Synonyms: []string{"day"}},
		{Key: "cell", Synonyms: []string{"cell"}, Optional: true},
	}

	cols, err := ResolveColumns("demand", header, specs)
	require.NoError(t, err)

	assert.Equal(t, 2, cols["recipe"])
	assert.Equal(t, 1, cols["quantity"])
	assert.Equal(t, 3, cols["date"])
	_, ok := cols.Index("cell")
	assert.False(t, ok)

	row := []string{"x", " 12 ", "NR"}
	assert.Equal(t, "12", cols.Value(row, "quantity"))
	assert.Equal(t, "", cols.Value(row, "date"))
	assert.Equal(t, "", cols.Value(row, "cell"))
}

func TestResolveColumns_Fallback(t *testing.T) {
	cols, err := ResolveColumns("master", []string{"name", "cap"}, []ColumnSpec{
		{Key: "recipe", Synonyms: []string{"素地"}, Fallback: 0, HasFallback: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, cols["recipe"])
}

func TestResolveColumns_SchemaError(t *testing.T) {
	_, err := ResolveColumns("demand", []string{"day"}, []ColumnSpec{
		{Key: "date", Synonyms: []string{"day"}},
		{Key: "recipe", Synonyms: []string{"Recipe"}},
		{Key: "quantity", Synonyms: []string{"batchsize"}},
	})

	var schemaErr *entities.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "demand", schemaErr.Table)
	assert.Equal(t, []string{"recipe", "quantity"}, schemaErr.Missing)
	assert.EqualError(t, err, "demand table is missing required columns: recipe, quantity")
}
