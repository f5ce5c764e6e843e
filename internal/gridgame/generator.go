package gridgame

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/pokegrid-backend/internal/apperror"
	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
)

const categoriesPerGrid = 2 * entity.GridSize

// Generator builds grids from a fixed catalog and category registry.
type Generator struct {
	catalog  entity.Catalog
	registry []entity.Category
}

func NewGenerator(catalog entity.Catalog, registry []entity.Category) *Generator {
	return &Generator{
		catalog:  catalog,
		registry: dedupeCategories(registry),
	}
}

// Generate - draws six categories and precomputes every cell's answers.
// A nil seed draws from the clock; the same seed always yields the same grid.
func (that *Generator) Generate(seed *int64) (*entity.Grid, error) {
	if len(that.registry) < categoriesPerGrid {
		return nil, fmt.Errorf("%w: have %d, need %d", apperror.ErrInsufficientCategories, len(that.registry), categoriesPerGrid)
	}

	var gridSeed int64
	if seed != nil {
		gridSeed = *seed
	} else {
		gridSeed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(gridSeed)) //nolint: gosec // puzzle selection, not security
	drawn := rng.Perm(len(that.registry))[:categoriesPerGrid]

	grid := &entity.Grid{Seed: gridSeed}
	for i := range entity.GridSize {
		grid.Rows[i] = that.registry[drawn[i]]
		grid.Cols[i] = that.registry[drawn[entity.GridSize+i]]
	}

	pokemon := that.catalog.All()
	for _, cell := range entity.Cells() {
		grid.Answers[cell.Row][cell.Col] = matching(pokemon, grid.Rows[cell.Row], grid.Cols[cell.Col])
	}

	return grid, nil
}

// matching - filters the catalog by both predicates, keeping catalog order.
func matching(pokemon []entity.Pokemon, row, col entity.Category) []string {
	names := make([]string, 0)
	for _, p := range pokemon {
		if row.Matches(p) && col.Matches(p) {
			names = append(names, p.Name)
		}
	}

	return names
}

func dedupeCategories(registry []entity.Category) []entity.Category {
	unique := make([]entity.Category, 0, len(registry))
	seen := make(map[entity.Category]struct{}, len(registry))

	for _, c := range registry {
		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}
		unique = append(unique, c)
	}

	return unique
}

// DailySeed - the date as YYYYMMDD, so everyone gets the same grid on the same day.
func DailySeed(day time.Time) int64 {
	year, month, date := day.Date()

	return int64(year)*10000 + int64(month)*100 + int64(date)
}
