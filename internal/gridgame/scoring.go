package gridgame

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
)

type ScoringMode string

const (
	// ScoringLive recomputes every pick from current global counts.
	ScoringLive ScoringMode = "live"
	// ScoringFrozen keeps the score each pick had when it was submitted.
	ScoringFrozen ScoringMode = "frozen"
)

var ErrUnknownScoringMode = errors.New("unknown scoring mode")

func ParseScoringMode(mode string) (ScoringMode, error) {
	switch ScoringMode(mode) {
	case ScoringLive, ScoringFrozen:
		return ScoringMode(mode), nil
	case "":
		return ScoringLive, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScoringMode, mode)
	}
}

type rarityTier struct {
	below int64
	score int
}

var rarityTiers = []rarityTier{
	{below: 1, score: 1},
	{below: 10, score: 5},
	{below: 50, score: 25},
	{below: 100, score: 50},
}

const maxRarityScore = 100

// ScoreForCount maps a global pick count to points. Rarer is cheaper.
func ScoreForCount(count int64) int {
	for _, tier := range rarityTiers {
		if count < tier.below {
			return tier.score
		}
	}

	return maxRarityScore
}

func RarityScore(ctx context.Context, counts PickCountReader, pokemon string) (int, error) {
	count, err := counts.Count(ctx, pokemon)
	if err != nil {
		return 0, fmt.Errorf("failed to get pick count: %w", err)
	}

	return ScoreForCount(count), nil
}

// TotalScore sums the picks' scores. In live mode nothing is cached, so the
// total moves when other players pick the same pokemon.
func TotalScore(ctx context.Context, picks entity.PickRecord, counts PickCountReader, mode ScoringMode) (int, error) {
	total := 0

	if mode == ScoringFrozen {
		for _, pick := range picks {
			total += pick.Score
		}

		return total, nil
	}

	if len(picks) == 0 {
		return 0, nil
	}

	current, err := counts.Counts(ctx, picks.Pokemon())
	if err != nil {
		return 0, fmt.Errorf("failed to get pick counts: %w", err)
	}

	for _, pick := range picks {
		total += ScoreForCount(current[pick.Pokemon])
	}

	return total, nil
}
