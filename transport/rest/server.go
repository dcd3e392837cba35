package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - builds the HTTP API over the game use case.
func NewRouter(logger *slog.Logger, uGame uGame) http.Handler {
	r := mux.NewRouter()
	r.Use(recoveryMiddleware(logger))
	r.Use(loggingMiddleware(logger))

	r.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	games := NewGameHandler(logger, uGame)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/games", games.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", games.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", games.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/turn", games.Turn).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/restart", games.Restart).Methods(http.MethodPost)

	return r
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

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}
