package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"bulwark/internal/app"
	"bulwark/internal/platform/config"
	"bulwark/internal/platform/httpserver"
	"bulwark/internal/platform/logger"
	"bulwark/internal/platform/metrics"
	"bulwark/internal/platform/middleware"
	reviewhandler "bulwark/internal/review/handler"
	taskhandler "bulwark/internal/task/handler"
	"bulwark/pkg/platform/httputil"
)

const requestTimeout = 30 * time.Second

// main wires the services, exposes the HTTP router and runs the notify relay
// next to it. Business logic lives in the internal service packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to build application", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log), middleware.Logger(log))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := a.Health(r.Context()); err != nil {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireReviewer(log), middleware.Timeout(requestTimeout))
		taskhandler.New(a.Tasks, log).Register(r)
		reviewhandler.New(a.Feeds, a.Comments, log).Register(r)
	})

	go func() {
		if err := a.Relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("notify relay stopped", "error", err)
		}
	}()

	srv := httpserver.New(cfg.Server, r)
	log.Info("starting bulwark", "addr", cfg.Server.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
