package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pokegrid-backend/internal/apperror"
	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
	"github.com/rocketscienceinc/pokegrid-backend/testing/suite"
)

func newTestSession(id string) *entity.Session {
	grid := &entity.Grid{
		Seed: 42,
		Rows: [entity.GridSize]entity.Category{entity.TypeCategory("Fire"), entity.LegendaryCategory(), entity.RegionCategory("Kanto")},
		Cols: [entity.GridSize]entity.Category{entity.TypeCategory("Flying"), entity.GenerationCategory(1), entity.EvolutionStageCategory(3)},
	}
	grid.Answers[0][0] = []string{"Charizard", "Moltres"}

	session := entity.NewSession(id, grid, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	session.Picks[entity.Cell{Row: 0, Col: 0}] = entity.Pick{Pokemon: "Moltres", Score: 1}

	return session
}

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Redis, time.Hour)

	// Given: a session with a grid and one pick
	session := newTestSession("abc")

	// When: CreateOrUpdate is called
	err := sessionRepo.CreateOrUpdate(ctx, session)

	// Then: no error should be returned, and the key expires
	require.NoError(t, err)

	ttl, err := st.Redis.TTL(ctx, "session:abc").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Redis, 0)

		// Given: a stored session
		session := newTestSession("abc")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: GetByID is called with its id
		retrieved, err := sessionRepo.GetByID(ctx, "abc")

		// Then: the grid, categories and picks survive the round trip
		require.NoError(t, err)
		assert.Equal(t, session, retrieved)

		moltres, _ := entity.LoadCatalog().Lookup("Moltres")
		assert.True(t, retrieved.Grid.Rows[0].Matches(moltres))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Redis, 0)

		// When: GetByID is called with an unknown id
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Redis, 0)

		// Given: a stored session
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, newTestSession("abc")))

		// When: DeleteByID is called
		err := sessionRepo.DeleteByID(ctx, "abc")

		// Then: it is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, "abc")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Redis, 0)

		// When: DeleteByID is called with an unknown id
		err := sessionRepo.DeleteByID(ctx, "9999999")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
