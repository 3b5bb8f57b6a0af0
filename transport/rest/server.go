package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

// NewRouter wires the JSON API. stream, when not nil, is mounted at /ws.
func NewRouter(logger *slog.Logger, gameUseCase usecase.GameUseCase, stream http.Handler) http.Handler {
	h := NewHandlers(logger, gameUseCase)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", NewPingHandler().PingHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Put("/", h.SaveSettings)
			r.Get("/defaults", h.DefaultSettings)
		})

		r.Route("/game", func(r chi.Router) {
			r.Get("/", h.CurrentGame)
			r.Post("/", h.StartGame)
			r.Post("/moves", h.MakeMove)
			r.Post("/undo", h.Undo)
		})

		r.Route("/records", func(r chi.Router) {
			r.Get("/latest", h.LatestRecord)
			r.Get("/{id}", h.RecordByID)
		})
	})

	if stream != nil {
		r.Handle("/ws", stream)
	}

	return r
}

// Start serves handler on addr until ctx is canceled, then shuts down gracefully.
func Start(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
