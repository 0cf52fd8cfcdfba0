package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fmt"

	"github.com/franznanni77/mkt-1/internal/adapter/heuristic"
	"github.com/franznanni77/mkt-1/internal/adapter/http"
	"github.com/franznanni77/mkt-1/internal/adapter/solver"
	"github.com/franznanni77/mkt-1/internal/adapter/usecase"
	"github.com/franznanni77/mkt-1/internal/config"
	"github.com/franznanni77/mkt-1/internal/core/port"
)

// main is the entry point of the allocation service. It loads configuration,
// wires the exact and heuristic solvers into the allocation use case, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	exact := solver.NewExact(solver.Config{MaxNodes: cfg.Solver.MaxNodes})
	fallback := heuristic.NewAllocator()
	svc := usecase.NewAllocationUseCase(exact, fallback, usecase.Config{
		SolveTimeout:    cfg.Solver.Timeout,
		DefaultStrategy: port.Strategy(cfg.Engine.Strategy()),
	})

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
