package entity

import (
	"fmt"
	"strconv"
)

type CategoryKind string

const (
	KindType           CategoryKind = "type"
	KindRegion         CategoryKind = "region"
	KindLegendary      CategoryKind = "legendary"
	KindGeneration     CategoryKind = "generation"
	KindEvolutionStage CategoryKind = "evolution_stage"
)

const FullyEvolvedStage = 3

// Category is a named predicate over a Pokemon. Tag holds the type or region
// name, Value the generation or evolution stage; unused fields stay zero.
type Category struct {
	Kind  CategoryKind `json:"kind"`
	Tag   string       `json:"tag,omitempty"`
	Value int          `json:"value,omitempty"`
}

func TypeCategory(pokemonType string) Category {
	return Category{Kind: KindType, Tag: pokemonType}
}

func RegionCategory(region string) Category {
	return Category{Kind: KindRegion, Tag: region}
}

func LegendaryCategory() Category {
	return Category{Kind: KindLegendary}
}

func GenerationCategory(generation int) Category {
	return Category{Kind: KindGeneration, Value: generation}
}

func EvolutionStageCategory(stage int) Category {
	return Category{Kind: KindEvolutionStage, Value: stage}
}

func (that Category) Matches(p Pokemon) bool {
	switch that.Kind {
	case KindType:
		return p.HasType(that.Tag)
	case KindRegion:
		return p.Region == that.Tag
	case KindLegendary:
		return p.Legendary
	case KindGeneration:
		return p.Generation == that.Value
	case KindEvolutionStage:
		return p.EvolutionStage == that.Value
	default:
		return false
	}
}

// Label - the display name shown in the grid headers.
func (that Category) Label() string {
	switch that.Kind {
	case KindType:
		return "Type: " + that.Tag
	case KindRegion:
		return "Region: " + that.Tag
	case KindLegendary:
		return "Legendary"
	case KindGeneration:
		return "Generation " + strconv.Itoa(that.Value)
	case KindEvolutionStage:
		if that.Value == FullyEvolvedStage {
			return "Fully Evolved"
		}
		return "Stage " + strconv.Itoa(that.Value)
	default:
		return fmt.Sprintf("Unknown(%s)", that.Kind)
	}
}

func (that Category) String() string {
	return that.Label()
}

// DefaultRegistry returns the category pool the daily grid draws from.
// Order matters: seeded draws index into it.
func DefaultRegistry() []Category {
	return []Category{
		TypeCategory("Fire"),
		TypeCategory("Water"),
		TypeCategory("Dragon"),
		TypeCategory("Flying"),
		TypeCategory("Steel"),
		TypeCategory("Psychic"),
		TypeCategory("Electric"),
		TypeCategory("Ice"),

		RegionCategory("Kanto"),
		RegionCategory("Hoenn"),
		RegionCategory("Sinnoh"),

		LegendaryCategory(),
		GenerationCategory(1),
		GenerationCategory(3),
		EvolutionStageCategory(FullyEvolvedStage),
	}
}

func Labels(categories []Category) []string {
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.Label())
	}

	return labels
}
