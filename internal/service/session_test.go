package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pokegrid-backend/internal/apperror"
	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
	"github.com/rocketscienceinc/pokegrid-backend/internal/pkg"
)

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	err      error
}

func (that *fakeSessionRepo) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	if that.err != nil {
		return that.err
	}

	that.sessions[session.ID] = session

	return nil
}

func (that *fakeSessionRepo) GetByID(_ context.Context, id string) (*entity.Session, error) {
	session, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	return session, nil
}

func (that *fakeSessionRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}

func TestSessionService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	grid := &entity.Grid{Seed: 20240501}

	t.Run("CreateSession generates an id when none is given", func(t *testing.T) {
		repo := &fakeSessionRepo{sessions: map[string]*entity.Session{}}
		service := NewSessionService(repo, func() time.Time { return now })

		// When: a session is created without an id
		session, err := service.CreateSession(ctx, "", grid)
		require.NoError(t, err)

		// Then: it gets a fresh id and is stored
		assert.True(t, pkg.IsValidSessionID(session.ID))
		assert.Equal(t, now, session.CreatedAt)
		assert.Same(t, grid, session.Grid)
		assert.Contains(t, repo.sessions, session.ID)
	})

	t.Run("CreateSession keeps a given id", func(t *testing.T) {
		repo := &fakeSessionRepo{sessions: map[string]*entity.Session{}}
		service := NewSessionService(repo, nil)

		session, err := service.CreateSession(ctx, "abc", grid)
		require.NoError(t, err)

		assert.Equal(t, "abc", session.ID)
	})

	t.Run("Storage errors are wrapped", func(t *testing.T) {
		storageErr := errors.New("connection refused")
		service := NewSessionService(&fakeSessionRepo{sessions: map[string]*entity.Session{}, err: storageErr}, nil)

		_, err := service.CreateSession(ctx, "abc", grid)

		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("Missing sessions keep the sentinel error", func(t *testing.T) {
		service := NewSessionService(&fakeSessionRepo{sessions: map[string]*entity.Session{}}, nil)

		_, err := service.GetSessionByID(ctx, "nope")
		assert.ErrorIs(t, err, apperror.ErrSessionNotFound)

		err = service.DeleteSession(ctx, "nope")
		assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
