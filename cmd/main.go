// Package main wires the HTTP server for the users insights service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"users-insights/config"
	"users-insights/internal/analytics"
	"users-insights/internal/evaluation"
	"users-insights/internal/repository"
	"users-insights/internal/transport/http/server"
	"users-insights/internal/transport/http/server/handlers-fiber"
	"users-insights/internal/usecase"
	"users-insights/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, "memory", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	opts := []analytics.Option{}
	if !cfg.Metrics.Enabled {
		opts = append(opts, analytics.WithObserver(nil))
	}
	uc := usecase.New(log, ctx, repo, analytics.NewEngine(opts...), cfg.HTTP.RequestTimeout)
	eval := evaluation.New(log, cfg.EvaluationBaseURL(), cfg.Evaluation.Timeout)

	h := handlers_fiber.NewHandler(log, uc, eval)
	serv := server.New(log, cfg, h)

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr())
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
