package repository

import (
	"context"
	"sync"
)

// MemoryPickCounter keeps global pick counts in process memory. It backs the
// CLI and single-instance deployments.
type MemoryPickCounter struct {
	mu     sync.RWMutex
	counts map[string]int64
}

func NewMemoryPickCounter() *MemoryPickCounter {
	return &MemoryPickCounter{
		counts: make(map[string]int64),
	}
}

func (that *MemoryPickCounter) Increment(_ context.Context, pokemon string) (int64, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.counts[pokemon]++

	return that.counts[pokemon], nil
}

func (that *MemoryPickCounter) Count(_ context.Context, pokemon string) (int64, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.counts[pokemon], nil
}

func (that *MemoryPickCounter) Counts(_ context.Context, pokemon []string) (map[string]int64, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	counts := make(map[string]int64, len(pokemon))
	for _, name := range pokemon {
		counts[name] = that.counts[name]
	}

	return counts, nil
}
