package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/pokegrid-backend/internal/apperror"
	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
	"github.com/rocketscienceinc/pokegrid-backend/internal/gridgame"
)

const tracerName = "github.com/rocketscienceinc/pokegrid-backend/internal/usecase"

type sessionService interface {
	CreateSession(ctx context.Context, id string, grid *entity.Grid) (*entity.Session, error)
	GetSessionByID(ctx context.Context, id string) (*entity.Session, error)
	UpdateSession(ctx context.Context, session *entity.Session) error
	DeleteSession(ctx context.Context, id string) error
}

type gridGenerator interface {
	Generate(seed *int64) (*entity.Grid, error)
}

// Score is a session's running total.
type Score struct {
	Total       int `json:"total_score"`
	CellsFilled int `json:"cells_filled"`
	TotalCells  int `json:"total_cells"`
}

type Options struct {
	ScoringMode gridgame.ScoringMode
	Submitter   gridgame.Submitter
	// Now picks the day of the daily grid. Defaults to time.Now.
	Now func() time.Time
}

type GameManager struct {
	logger *slog.Logger
	tracer trace.Tracer

	sessionService sessionService
	generator      gridGenerator
	counter        gridgame.PickCounter

	scoringMode gridgame.ScoringMode
	submitter   gridgame.Submitter
	now         func() time.Time
}

func NewGameManager(
	logger *slog.Logger,
	sessionService sessionService,
	generator gridGenerator,
	counter gridgame.PickCounter,
	opts Options,
) *GameManager {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.ScoringMode == "" {
		opts.ScoringMode = gridgame.ScoringLive
	}

	return &GameManager{
		logger: logger.With("component", "game_manager"),
		tracer: otel.Tracer(tracerName),

		sessionService: sessionService,
		generator:      generator,
		counter:        counter,

		scoringMode: opts.ScoringMode,
		submitter:   opts.Submitter,
		now:         opts.Now,
	}
}

// GetOrCreateSession - returns the session for id, or starts one on today's grid
// when id is empty or unknown.
func (that *GameManager) GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error) {
	ctx, span := that.tracer.Start(ctx, "GameManager.GetOrCreateSession")
	defer span.End()

	if id != "" {
		session, err := that.sessionService.GetSessionByID(ctx, id)
		if err == nil {
			return session, nil
		}

		if !errors.Is(err, apperror.ErrSessionNotFound) {
			recordError(span, err)
			return nil, fmt.Errorf("failed to get session: %w", err)
		}
	}

	session, err := that.createSession(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	return session, nil
}

func (that *GameManager) createSession(ctx context.Context, id string) (*entity.Session, error) {
	log := that.logger.With("method", "createSession")

	seed := gridgame.DailySeed(that.now())

	grid, err := that.generator.Generate(&seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate grid: %w", err)
	}

	if empty := grid.UnanswerableCells(); len(empty) > 0 {
		log.Debug("grid has unanswerable cells", "seed", seed, "cells", len(empty))
	}

	session, err := that.sessionService.CreateSession(ctx, id, grid)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("session started", "session_id", session.ID, "seed", seed)

	return session, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionService.GetSessionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// Submit - answers one cell of the session's grid. Rejections come back with
// the valid options and leave the session untouched.
func (that *GameManager) Submit(ctx context.Context, sessionID string, row, col int, pokemon string) (gridgame.Result, error) {
	log := that.logger.With("method", "Submit")

	ctx, span := that.tracer.Start(ctx, "GameManager.Submit", trace.WithAttributes(
		attribute.Int("grid.row", row),
		attribute.Int("grid.col", col),
	))
	defer span.End()

	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		recordError(span, err)
		return gridgame.Result{Pokemon: pokemon}, err
	}

	if !session.HasGrid() {
		recordError(span, apperror.ErrSessionNotFound)
		return gridgame.Result{Pokemon: pokemon}, fmt.Errorf("%w: session has no grid", apperror.ErrSessionNotFound)
	}

	result, err := that.submitter.Submit(ctx, session.Grid, session.Picks, that.counter, row, col, pokemon)
	if err != nil {
		span.SetAttributes(attribute.Bool("submit.accepted", false))
		if isRejection(err) {
			log.Debug("answer rejected", "session_id", sessionID, "pokemon", result.Pokemon, "error", err)
			return result, err
		}

		recordError(span, err)
		return result, fmt.Errorf("failed to submit answer: %w", err)
	}

	span.SetAttributes(
		attribute.Bool("submit.accepted", true),
		attribute.String("submit.pokemon", result.Pokemon),
		attribute.Int64("submit.pick_count", result.PickCount),
	)

	// the count is already bumped; a failed save loses only this session's pick
	if err = that.sessionService.UpdateSession(ctx, session); err != nil {
		recordError(span, err)
		log.Error("failed to save accepted pick", "session_id", sessionID, "error", err)
		return result, fmt.Errorf("failed to save session: %w", err)
	}

	log.Info("answer accepted", "session_id", sessionID, "pokemon", result.Pokemon, "score", result.Score, "pick_count", result.PickCount)

	return result, nil
}

// Score - the session's total, recomputed on every call in live mode.
func (that *GameManager) Score(ctx context.Context, sessionID string) (Score, error) {
	ctx, span := that.tracer.Start(ctx, "GameManager.Score")
	defer span.End()

	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		recordError(span, err)
		return Score{TotalCells: entity.TotalCells}, err
	}

	total, err := gridgame.TotalScore(ctx, session.Picks, that.counter, that.scoringMode)
	if err != nil {
		recordError(span, err)
		return Score{TotalCells: entity.TotalCells}, fmt.Errorf("failed to compute score: %w", err)
	}

	return Score{
		Total:       total,
		CellsFilled: session.CellsFilled(),
		TotalCells:  entity.TotalCells,
	}, nil
}

// Stats - every cell's labels and answers.
func (that *GameManager) Stats(ctx context.Context, sessionID string) ([]gridgame.CellStats, error) {
	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.HasGrid() {
		return nil, fmt.Errorf("%w: session has no grid", apperror.ErrSessionNotFound)
	}

	return gridgame.Stats(session.Grid), nil
}

// Reset - drops the session. Global pick counts are never rolled back.
func (that *GameManager) Reset(ctx context.Context, sessionID string) error {
	log := that.logger.With("method", "Reset")

	if sessionID == "" {
		return nil
	}

	err := that.sessionService.DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		return fmt.Errorf("failed to reset session: %w", err)
	}

	log.Info("session reset", "session_id", sessionID)

	return nil
}

func isRejection(err error) bool {
	return errors.Is(err, apperror.ErrInvalidCellIndex) ||
		errors.Is(err, apperror.ErrInvalidEntityName) ||
		errors.Is(err, apperror.ErrCellAlreadyFilled)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
