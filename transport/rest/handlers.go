package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/pokegrid-backend/internal/apperror"
	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
	"github.com/rocketscienceinc/pokegrid-backend/internal/gridgame"
	"github.com/rocketscienceinc/pokegrid-backend/internal/pkg"
	"github.com/rocketscienceinc/pokegrid-backend/internal/usecase"
)

const (
	sessionCookie  = "session_id"
	sessionMaxAge  = 48 * time.Hour
	maxRequestBody = 4 << 10
)

type gameUseCase interface {
	GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error)
	Submit(ctx context.Context, sessionID string, row, col int, pokemon string) (gridgame.Result, error)
	Score(ctx context.Context, sessionID string) (usecase.Score, error)
	Reset(ctx context.Context, sessionID string) error
}

type Handlers interface {
	Grid(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Score(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	logger *slog.Logger
	game   gameUseCase
}

func NewHandlers(logger *slog.Logger, game gameUseCase) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

type gridResponse struct {
	RowCategories []string          `json:"row_categories"`
	ColCategories []string          `json:"col_categories"`
	UserPicks     map[string]string `json:"user_picks"`
}

type submitRequest struct {
	Row     *int   `json:"row"`
	Col     *int   `json:"col"`
	Pokemon string `json:"pokemon"`
}

type submitResponse struct {
	Success      bool     `json:"success"`
	Pokemon      string   `json:"pokemon,omitempty"`
	Score        int      `json:"score,omitempty"`
	PickCount    int64    `json:"pick_count,omitempty"`
	Message      string   `json:"message,omitempty"`
	ValidOptions []string `json:"valid_options,omitempty"`
}

type resetResponse struct {
	Success bool `json:"success"`
}

// Grid - the session's categories and picks, starting a session on today's grid if needed.
func (that *handlers) Grid(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Grid")

	session, err := that.game.GetOrCreateSession(r.Context(), sessionID(r))
	if err != nil {
		log.Error("failed to get session", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !session.HasGrid() {
		log.Error("session has no grid", "session_id", session.ID)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	setSessionCookie(w, session.ID)

	writeJSON(w, http.StatusOK, gridResponse{
		RowCategories: session.Grid.RowLabels(),
		ColCategories: session.Grid.ColLabels(),
		UserPicks:     session.Picks.ByKey(),
	})
}

func (that *handlers) Submit(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Submit")

	var req submitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{Message: "invalid request body"})
		return
	}

	session, err := that.game.GetOrCreateSession(r.Context(), sessionID(r))
	if err != nil {
		log.Error("failed to get session", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	setSessionCookie(w, session.ID)

	// a missing row or col counts as out of range
	row, col := -1, -1
	if req.Row != nil {
		row = *req.Row
	}
	if req.Col != nil {
		col = *req.Col
	}

	result, err := that.game.Submit(r.Context(), session.ID, row, col, req.Pokemon)

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, submitResponse{
			Success:   true,
			Pokemon:   result.Pokemon,
			Score:     result.Score,
			PickCount: result.PickCount,
		})
	case errors.Is(err, apperror.ErrInvalidEntityName):
		writeJSON(w, http.StatusOK, submitResponse{
			Message:      fmt.Sprintf("%s does not match both categories", result.Pokemon),
			ValidOptions: result.ValidOptions,
		})
	case errors.Is(err, apperror.ErrInvalidCellIndex):
		writeJSON(w, http.StatusBadRequest, submitResponse{Message: "row and col must be between 0 and 2"})
	case errors.Is(err, apperror.ErrCellAlreadyFilled):
		writeJSON(w, http.StatusConflict, submitResponse{Message: "you've already filled this cell"})
	default:
		log.Error("failed to submit answer", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// Score - the live total. A player without a session has scored nothing.
func (that *handlers) Score(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Score")

	id := sessionID(r)
	if id == "" {
		writeJSON(w, http.StatusOK, usecase.Score{TotalCells: entity.TotalCells})
		return
	}

	score, err := that.game.Score(r.Context(), id)
	if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		log.Error("failed to get score", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, score)
}

func (that *handlers) Reset(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Reset")

	if err := that.game.Reset(r.Context(), sessionID(r)); err != nil {
		log.Error("failed to reset session", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, resetResponse{Success: true})
}

func sessionID(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || !pkg.IsValidSessionID(cookie.Value) {
		return ""
	}

	return cookie.Value
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(sessionMaxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
