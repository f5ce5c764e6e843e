package gridgame

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/pokegrid-backend/internal/apperror"
	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
)

var ErrNilPickRecord = errors.New("pick record is nil")

// Result is the outcome of a submission. Rejections carry the valid options
// so the caller can retry.
type Result struct {
	Success      bool
	Pokemon      string
	Score        int
	PickCount    int64
	ValidOptions []string
}

type Submitter struct {
	// AllowOverwrite lets a filled cell be answered again. Every accepted
	// answer bumps the global count, so overwrites count twice.
	AllowOverwrite bool
	// ScoreOnPriorCount scores an accepted answer on the count it had before
	// this submission, so the very first pick of a pokemon is worth 1.
	ScoreOnPriorCount bool
}

// Submit - validates an answer for one cell and, when accepted, records it and
// bumps the pokemon's global pick count. Rejections change nothing.
func (that Submitter) Submit(
	ctx context.Context,
	grid *entity.Grid,
	picks entity.PickRecord,
	counter PickCounter,
	row, col int,
	pokemon string,
) (Result, error) {
	name := strings.TrimSpace(pokemon)
	cell := entity.Cell{Row: row, Col: col}

	if picks == nil {
		return Result{Pokemon: name}, ErrNilPickRecord
	}

	options, ok := grid.ValidOptions(cell)
	if !ok {
		return Result{Pokemon: name, ValidOptions: []string{}}, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCellIndex, row, col)
	}

	if !that.AllowOverwrite && picks.IsFilled(cell) {
		return Result{Pokemon: name}, fmt.Errorf("%w: %s", apperror.ErrCellAlreadyFilled, cell)
	}

	if !slices.Contains(options, name) {
		return Result{Pokemon: name, ValidOptions: options}, fmt.Errorf("%w: %q", apperror.ErrInvalidEntityName, name)
	}

	count, err := counter.Increment(ctx, name)
	if err != nil {
		return Result{Pokemon: name}, fmt.Errorf("failed to increment pick count: %w", err)
	}

	scoredCount := count
	if that.ScoreOnPriorCount {
		scoredCount--
	}

	score := ScoreForCount(scoredCount)
	picks[cell] = entity.Pick{Pokemon: name, Score: score}

	return Result{
		Success:   true,
		Pokemon:   name,
		Score:     score,
		PickCount: count,
	}, nil
}
