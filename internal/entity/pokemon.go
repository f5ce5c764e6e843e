package entity

import "slices"

// Pokemon is a catalog entry. Category predicates only look at these attributes.
type Pokemon struct {
	Name           string   `json:"name"`
	Types          []string `json:"types"`
	Generation     int      `json:"generation"`
	EvolutionStage int      `json:"evolution_stage"`
	Legendary      bool     `json:"legendary"`
	Region         string   `json:"region"`
}

func (that Pokemon) HasType(pokemonType string) bool {
	return slices.Contains(that.Types, pokemonType)
}

// Catalog is the fixed, ordered pokemon table.
type Catalog struct {
	pokemon []Pokemon
	index   map[string]int
}

func NewCatalog(pokemon []Pokemon) Catalog {
	catalog := Catalog{
		pokemon: make([]Pokemon, 0, len(pokemon)),
		index:   make(map[string]int, len(pokemon)),
	}

	for _, p := range pokemon {
		if _, ok := catalog.index[p.Name]; ok {
			continue
		}

		p.Types = slices.Clone(p.Types)
		catalog.index[p.Name] = len(catalog.pokemon)
		catalog.pokemon = append(catalog.pokemon, p)
	}

	return catalog
}

// LoadCatalog - returns the built-in pokemon table, a fresh copy on every call.
func LoadCatalog() Catalog {
	return NewCatalog([]Pokemon{
		{Name: "Charizard", Types: []string{"Fire", "Flying"}, Generation: 1, EvolutionStage: 3, Region: "Kanto"},
		{Name: "Pikachu", Types: []string{"Electric"}, Generation: 1, EvolutionStage: 1, Region: "Kanto"},
		{Name: "Mewtwo", Types: []string{"Psychic"}, Generation: 1, EvolutionStage: 1, Legendary: true, Region: "Kanto"},
		{Name: "Greninja", Types: []string{"Water", "Dark"}, Generation: 6, EvolutionStage: 3, Region: "Kalos"},
		{Name: "Lucario", Types: []string{"Fighting", "Steel"}, Generation: 4, EvolutionStage: 2, Region: "Sinnoh"},
		{Name: "Garchomp", Types: []string{"Dragon", "Ground"}, Generation: 4, EvolutionStage: 3, Region: "Sinnoh"},
		{Name: "Rayquaza", Types: []string{"Dragon", "Flying"}, Generation: 3, EvolutionStage: 1, Legendary: true, Region: "Hoenn"},
		{Name: "Blaziken", Types: []string{"Fire", "Fighting"}, Generation: 3, EvolutionStage: 3, Region: "Hoenn"},
		{Name: "Gyarados", Types: []string{"Water", "Flying"}, Generation: 1, EvolutionStage: 2, Region: "Kanto"},
		{Name: "Dragonite", Types: []string{"Dragon", "Flying"}, Generation: 1, EvolutionStage: 3, Region: "Kanto"},
		{Name: "Salamence", Types: []string{"Dragon", "Flying"}, Generation: 3, EvolutionStage: 3, Region: "Hoenn"},
		{Name: "Metagross", Types: []string{"Steel", "Psychic"}, Generation: 3, EvolutionStage: 3, Region: "Hoenn"},
		{Name: "Tyranitar", Types: []string{"Rock", "Dark"}, Generation: 2, EvolutionStage: 3, Region: "Johto"},
		{Name: "Alakazam", Types: []string{"Psychic"}, Generation: 1, EvolutionStage: 3, Region: "Kanto"},
		{Name: "Gengar", Types: []string{"Ghost", "Poison"}, Generation: 1, EvolutionStage: 3, Region: "Kanto"},
		{Name: "Snorlax", Types: []string{"Normal"}, Generation: 1, EvolutionStage: 2, Region: "Kanto"},
		{Name: "Lapras", Types: []string{"Water", "Ice"}, Generation: 1, EvolutionStage: 1, Region: "Kanto"},
		{Name: "Articuno", Types: []string{"Ice", "Flying"}, Generation: 1, EvolutionStage: 1, Legendary: true, Region: "Kanto"},
		{Name: "Zapdos", Types: []string{"Electric", "Flying"}, Generation: 1, EvolutionStage: 1, Legendary: true, Region: "Kanto"},
		{Name: "Moltres", Types: []string{"Fire", "Flying"}, Generation: 1, EvolutionStage: 1, Legendary: true, Region: "Kanto"},
	})
}

// All returns the entries in catalog order. The slice is a copy.
func (that Catalog) All() []Pokemon {
	return slices.Clone(that.pokemon)
}

func (that Catalog) Lookup(name string) (Pokemon, bool) {
	i, ok := that.index[name]
	if !ok {
		return Pokemon{}, false
	}

	return that.pokemon[i], true
}

func (that Catalog) Names() []string {
	names := make([]string, 0, len(that.pokemon))
	for _, p := range that.pokemon {
		names = append(names, p.Name)
	}

	return names
}

func (that Catalog) Len() int {
	return len(that.pokemon)
}
