// Package main is the entry point for the Wayfarer API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wayfarer-app/wayfarer/internal/config"
	"github.com/wayfarer-app/wayfarer/internal/handler"
	"github.com/wayfarer-app/wayfarer/internal/middleware"
	"github.com/wayfarer-app/wayfarer/internal/repo"
	"github.com/wayfarer-app/wayfarer/internal/store"
	"github.com/wayfarer-app/wayfarer/internal/suggest"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// Both drivers load the whole state once at startup; every mutation is
	// written back through the same store.
	var st store.Store
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		st, err = store.NewSQLiteStore(cfg.DataPath, logger)
		if err != nil {
			slog.Error("failed to open sqlite store", "path", cfg.DataPath, "error", err)
			os.Exit(1)
		}
	default:
		st = store.NewFileStore(cfg.DataPath, logger)
	}

	state, err := st.Load()
	if err != nil {
		slog.Error("failed to load state", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}
	slog.Info("state loaded", "driver", cfg.StoreDriver, "trips", len(state.Trips))

	repository := repo.New(state, st, logger)

	// --- Suggestion service -----------------------------------------------
	// Optional: left nil when no upstream is configured, which turns the
	// suggestions endpoint into a 503.
	var suggester handler.Suggester
	if cfg.SuggestAPIURL != "" {
		suggester = suggest.NewClient(cfg.SuggestAPIURL, cfg.SuggestAPIKey)
		slog.Info("suggestion service configured", "url", cfg.SuggestAPIURL)
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", handler.NewServer(repository, suggester).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
