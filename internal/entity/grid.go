package entity

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	GridSize   = 3
	TotalCells = GridSize * GridSize
)

var ErrMalformedCell = errors.New("malformed cell key")

// Cell addresses one grid square. It encodes as "row,col" so it can key JSON maps.
type Cell struct {
	Row int
	Col int
}

func (that Cell) InBounds() bool {
	return that.Row >= 0 && that.Row < GridSize && that.Col >= 0 && that.Col < GridSize
}

func (that Cell) String() string {
	return strconv.Itoa(that.Row) + "," + strconv.Itoa(that.Col)
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	cell, err := ParseCell(string(text))
	if err != nil {
		return err
	}

	*that = cell

	return nil
}

func ParseCell(key string) (Cell, error) {
	rowPart, colPart, ok := strings.Cut(key, ",")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrMalformedCell, key)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowPart))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrMalformedCell, key)
	}

	col, err := strconv.Atoi(strings.TrimSpace(colPart))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrMalformedCell, key)
	}

	return Cell{Row: row, Col: col}, nil
}

// Grid is immutable once generated. Answers[row][col] lists, in catalog order,
// every pokemon matching both Rows[row] and Cols[col].
type Grid struct {
	Seed    int64                        `json:"seed"`
	Rows    [GridSize]Category           `json:"row_categories"`
	Cols    [GridSize]Category           `json:"col_categories"`
	Answers [GridSize][GridSize][]string `json:"grid_answers"`
}

// Cells lists all cells in row-major order.
func Cells() []Cell {
	cells := make([]Cell, 0, TotalCells)
	for row := range GridSize {
		for col := range GridSize {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}

	return cells
}

// ValidOptions returns a copy of the cell's answer set, false when the cell is off the grid.
func (that *Grid) ValidOptions(cell Cell) ([]string, bool) {
	if !cell.InBounds() {
		return nil, false
	}

	options := that.Answers[cell.Row][cell.Col]
	if options == nil {
		return []string{}, true
	}

	return slices.Clone(options), true
}

func (that *Grid) IsValid(cell Cell, pokemon string) bool {
	if !cell.InBounds() {
		return false
	}

	return slices.Contains(that.Answers[cell.Row][cell.Col], pokemon)
}

func (that *Grid) RowLabels() []string {
	return Labels(that.Rows[:])
}

func (that *Grid) ColLabels() []string {
	return Labels(that.Cols[:])
}

// Categories returns the six categories in draw order: rows first, then columns.
func (that *Grid) Categories() []Category {
	categories := make([]Category, 0, 2*GridSize)
	categories = append(categories, that.Rows[:]...)
	categories = append(categories, that.Cols[:]...)

	return categories
}

// UnanswerableCells lists cells whose answer set is empty.
func (that *Grid) UnanswerableCells() []Cell {
	var empty []Cell
	for _, cell := range Cells() {
		if len(that.Answers[cell.Row][cell.Col]) == 0 {
			empty = append(empty, cell)
		}
	}

	return empty
}

// Pick is one accepted answer. Score is the rarity score at submission time.
type Pick struct {
	Pokemon string `json:"pokemon"`
	Score   int    `json:"score"`
}

// PickRecord holds a session's accepted answers.
type PickRecord map[Cell]Pick

func (that PickRecord) IsFilled(cell Cell) bool {
	_, ok := that[cell]
	return ok
}

// ByKey - the "row,col" -> pokemon view used by the API.
func (that PickRecord) ByKey() map[string]string {
	picks := make(map[string]string, len(that))
	for cell, pick := range that {
		picks[cell.String()] = pick.Pokemon
	}

	return picks
}

// Pokemon returns the distinct picked names.
func (that PickRecord) Pokemon() []string {
	names := make([]string, 0, len(that))
	for _, pick := range that {
		if !slices.Contains(names, pick.Pokemon) {
			names = append(names, pick.Pokemon)
		}
	}

	slices.Sort(names)

	return names
}

func (that PickRecord) IsComplete() bool {
	return len(that) >= TotalCells
}
