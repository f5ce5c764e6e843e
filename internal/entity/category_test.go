package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Matches(t *testing.T) {
	catalog := LoadCatalog()

	charizard, ok := catalog.Lookup("Charizard")
	require.True(t, ok)

	mewtwo, ok := catalog.Lookup("Mewtwo")
	require.True(t, ok)

	t.Run("Type category matches any of the pokemon types", func(t *testing.T) {
		// Given: Charizard, a Fire/Flying pokemon
		// When: checking type categories
		// Then: both of its types match and others do not
		assert.True(t, TypeCategory("Fire").Matches(charizard))
		assert.True(t, TypeCategory("Flying").Matches(charizard))
		assert.False(t, TypeCategory("Water").Matches(charizard))
	})

	t.Run("Type category is case sensitive", func(t *testing.T) {
		assert.False(t, TypeCategory("fire").Matches(charizard))
	})

	t.Run("Region category compares the region", func(t *testing.T) {
		assert.True(t, RegionCategory("Kanto").Matches(charizard))
		assert.False(t, RegionCategory("Hoenn").Matches(charizard))
	})

	t.Run("Legendary category checks the flag", func(t *testing.T) {
		assert.True(t, LegendaryCategory().Matches(mewtwo))
		assert.False(t, LegendaryCategory().Matches(charizard))
	})

	t.Run("Generation and stage categories compare numbers", func(t *testing.T) {
		assert.True(t, GenerationCategory(1).Matches(charizard))
		assert.False(t, GenerationCategory(3).Matches(charizard))
		assert.True(t, EvolutionStageCategory(FullyEvolvedStage).Matches(charizard))
		assert.False(t, EvolutionStageCategory(FullyEvolvedStage).Matches(mewtwo))
	})

	t.Run("Unknown kind never matches", func(t *testing.T) {
		assert.False(t, Category{Kind: "shiny"}.Matches(charizard))
	})
}

func TestCategory_Label(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{TypeCategory("Fire"), "Type: Fire"},
		{RegionCategory("Kanto"), "Region: Kanto"},
		{LegendaryCategory(), "Legendary"},
		{GenerationCategory(3), "Generation 3"},
		{EvolutionStageCategory(3), "Fully Evolved"},
		{EvolutionStageCategory(2), "Stage 2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Label())
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	// Given: the default registry
	registry := DefaultRegistry()

	// Then: it holds 15 distinct categories with distinct labels
	require.Len(t, registry, 15)

	seen := make(map[string]bool)
	for _, c := range registry {
		assert.False(t, seen[c.Label()], "duplicate category %s", c.Label())
		seen[c.Label()] = true
	}
}

func TestCategory_JSONRoundTripKeepsPredicate(t *testing.T) {
	// Given: a category stored as JSON, the way sessions persist grids
	raw, err := json.Marshal(GenerationCategory(1))
	require.NoError(t, err)

	// When: it is decoded back
	var decoded Category
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Then: it still evaluates the same predicate
	pikachu, _ := LoadCatalog().Lookup("Pikachu")
	assert.True(t, decoded.Matches(pikachu))
	assert.Equal(t, "Generation 1", decoded.Label())
}
