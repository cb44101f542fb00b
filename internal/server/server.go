// Package server exposes the analytics engine over a small JSON API for the
// presentation layer.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"mannwallet/internal/engine"
	"mannwallet/internal/store"
)

// WebAPI serves the engine's outputs and forwards dismiss/regenerate commands.
type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

// Config holds server configuration and dependencies.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Engine          *engine.Engine
	Expenses        store.ExpenseStore
}

// NewWebAPI creates the HTTP API around an engine.
func NewWebAPI(logger zerolog.Logger, cfg Config) *WebAPI {
	h := NewHandler(cfg.Engine, cfg.Expenses)

	router := chi.NewRouter()

	router.Use(requestLogger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", h.GetSummary)
		r.Get("/insights", h.GetInsights)
		r.Get("/alerts", h.GetAlerts)
		r.Post("/alerts/{id}/dismiss", h.DismissAlert)
		r.Post("/alerts/dismiss", h.DismissAllAlerts)
		r.Post("/alerts/regenerate", h.RegenerateAlerts)
		r.Get("/expenses", h.ListExpenses)
		r.Post("/expenses", h.AddExpense)
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    cfg.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

// Router returns the underlying router, used by tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

// Start runs the server until an error or a shutdown signal.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
