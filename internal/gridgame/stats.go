package gridgame

import (
	"slices"

	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
)

type CellStats struct {
	Cell     entity.Cell `json:"cell"`
	RowLabel string      `json:"row"`
	ColLabel string      `json:"col"`
	Valid    []string    `json:"valid"`
}

// Stats lists every cell's answers, sorted by name.
func Stats(grid *entity.Grid) []CellStats {
	stats := make([]CellStats, 0, entity.TotalCells)
	for _, cell := range entity.Cells() {
		valid, _ := grid.ValidOptions(cell)
		slices.Sort(valid)

		stats = append(stats, CellStats{
			Cell:     cell,
			RowLabel: grid.Rows[cell.Row].Label(),
			ColLabel: grid.Cols[cell.Col].Label(),
			Valid:    valid,
		})
	}

	return stats
}
