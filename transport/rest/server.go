package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	healthhandlers "github.com/rocketscienceinc/pokegrid-backend/pkg/handlers"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - the API routes plus the health check.
func NewRouter(h Handlers, checks ...healthhandlers.Check) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", healthhandlers.PingHandler(checks...))

	mux.HandleFunc("GET /api/grid", h.Grid)
	mux.HandleFunc("POST /api/submit", h.Submit)
	mux.HandleFunc("GET /api/score", h.Score)
	mux.HandleFunc("GET /api/reset", h.Reset)
	mux.HandleFunc("POST /api/reset", h.Reset)

	return mux
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
