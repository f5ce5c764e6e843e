package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pokegrid-backend/internal/config"
	"github.com/rocketscienceinc/pokegrid-backend/internal/repository"
)

func TestNewPickCounter(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory store", func(t *testing.T) {
		counter, closeCounter, err := newPickCounter(ctx, &config.Config{PickStore: config.PickStoreMemory}, nil)
		require.NoError(t, err)
		defer closeCounter()

		assert.IsType(t, &repository.MemoryPickCounter{}, counter)
	})

	t.Run("SQLite store", func(t *testing.T) {
		// Given: a fresh database file
		conf := &config.Config{
			PickStore:         config.PickStoreSQLite,
			SQLiteStoragePath: filepath.Join(t.TempDir(), "pokegrid.db"),
		}

		// When: the counter is built
		counter, closeCounter, err := newPickCounter(ctx, conf, nil)
		require.NoError(t, err)

		// Then: the schema is ready for counting
		count, err := counter.Increment(ctx, "Pikachu")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		assert.NoError(t, closeCounter())
	})

	t.Run("Unknown store", func(t *testing.T) {
		_, _, err := newPickCounter(ctx, &config.Config{PickStore: "etcd"}, nil)

		assert.ErrorIs(t, err, ErrUnknownPickStore)
	})
}
