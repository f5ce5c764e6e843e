package gridgame

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
	"github.com/rocketscienceinc/pokegrid-backend/internal/repository"
)

var errReadFailed = errors.New("read failed")

type brokenReader struct{}

func (brokenReader) Count(context.Context, string) (int64, error) {
	return 0, errReadFailed
}

func (brokenReader) Counts(context.Context, []string) (map[string]int64, error) {
	return nil, errReadFailed
}

func TestScoreForCount(t *testing.T) {
	tests := []struct {
		count int64
		want  int
	}{
		{0, 1},
		{1, 5},
		{9, 5},
		{10, 25},
		{49, 25},
		{50, 50},
		{99, 50},
		{100, 100},
		{100000, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreForCount(tt.count), "count %d", tt.count)
	}
}

func TestScoreForCount_NonDecreasing(t *testing.T) {
	previous := ScoreForCount(0)
	for count := int64(1); count <= 250; count++ {
		score := ScoreForCount(count)
		require.GreaterOrEqual(t, score, previous, "count %d", count)
		previous = score
	}
}

func TestRarityScore(t *testing.T) {
	ctx := context.Background()
	counter := repository.NewMemoryPickCounter()

	score, err := RarityScore(ctx, counter, "Mewtwo")
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	for range 10 {
		_, err = counter.Increment(ctx, "Mewtwo")
		require.NoError(t, err)
	}

	score, err = RarityScore(ctx, counter, "Mewtwo")
	require.NoError(t, err)
	assert.Equal(t, 25, score)

	_, err = RarityScore(ctx, brokenReader{}, "Mewtwo")
	require.ErrorIs(t, err, errReadFailed)
}

func TestTotalScore(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty record scores zero", func(t *testing.T) {
		total, err := TotalScore(ctx, entity.PickRecord{}, brokenReader{}, ScoringLive)

		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("Live total is rescored when others copy a pick", func(t *testing.T) {
		// Given: a session that picked Pikachu and Moltres
		grid := newTestGrid()
		picks := entity.PickRecord{}
		counter := repository.NewMemoryPickCounter()

		_, err := Submitter{}.Submit(ctx, grid, picks, counter, 0, 0, "Pikachu")
		require.NoError(t, err)
		_, err = Submitter{}.Submit(ctx, grid, picks, counter, 1, 1, "Moltres")
		require.NoError(t, err)

		total, err := TotalScore(ctx, picks, counter, ScoringLive)
		require.NoError(t, err)
		assert.Equal(t, 10, total)

		// When: other players pick Pikachu until it reaches 10 picks
		for range 9 {
			_, err = counter.Increment(ctx, "Pikachu")
			require.NoError(t, err)
		}

		// Then: the same picks now cost more
		total, err = TotalScore(ctx, picks, counter, ScoringLive)
		require.NoError(t, err)
		assert.Equal(t, 25+5, total)
	})

	t.Run("Live total sums every cell, repeated pokemon included", func(t *testing.T) {
		counter := repository.NewMemoryPickCounter()
		for range 50 {
			_, _ = counter.Increment(ctx, "Zapdos")
		}

		picks := entity.PickRecord{
			{Row: 0, Col: 0}: {Pokemon: "Zapdos"},
			{Row: 2, Col: 0}: {Pokemon: "Zapdos"},
			{Row: 2, Col: 1}: {Pokemon: "Articuno"},
		}

		total, err := TotalScore(ctx, picks, counter, ScoringLive)
		require.NoError(t, err)
		assert.Equal(t, 50+50+1, total)
	})

	t.Run("Frozen total keeps submission-time scores", func(t *testing.T) {
		picks := entity.PickRecord{
			{Row: 0, Col: 0}: {Pokemon: "Pikachu", Score: 5},
			{Row: 1, Col: 1}: {Pokemon: "Moltres", Score: 25},
		}

		total, err := TotalScore(ctx, picks, brokenReader{}, ScoringFrozen)
		require.NoError(t, err)
		assert.Equal(t, 30, total)
	})

	t.Run("Reader failure is reported", func(t *testing.T) {
		picks := entity.PickRecord{{Row: 0, Col: 0}: {Pokemon: "Pikachu"}}

		_, err := TotalScore(ctx, picks, brokenReader{}, ScoringLive)
		require.ErrorIs(t, err, errReadFailed)
	})
}

func TestParseScoringMode(t *testing.T) {
	mode, err := ParseScoringMode("")
	require.NoError(t, err)
	assert.Equal(t, ScoringLive, mode)

	mode, err = ParseScoringMode("frozen")
	require.NoError(t, err)
	assert.Equal(t, ScoringFrozen, mode)

	_, err = ParseScoringMode("median")
	require.ErrorIs(t, err, ErrUnknownScoringMode)
}

func TestStats(t *testing.T) {
	stats := Stats(newTestGrid())

	require.Len(t, stats, entity.TotalCells)
	assert.Equal(t, entity.Cell{Row: 1, Col: 1}, stats[4].Cell)
	assert.Equal(t, "Type: Fire", stats[4].RowLabel)
	assert.Equal(t, "Type: Flying", stats[4].ColLabel)
	assert.Equal(t, []string{"Charizard", "Moltres"}, stats[4].Valid)
}
