package gridgame

import "context"

// PickCountReader reads global pick counts. Unknown pokemon count as zero.
type PickCountReader interface {
	Count(ctx context.Context, pokemon string) (int64, error)
	Counts(ctx context.Context, pokemon []string) (map[string]int64, error)
}

// PickCounter is the shared, cross-session tally. Increment must be atomic
// and returns the count after the increment.
type PickCounter interface {
	PickCountReader
	Increment(ctx context.Context, pokemon string) (int64, error)
}
