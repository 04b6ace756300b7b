// Package main implements the entry point for the questboard API server,
// which exposes the quest and user resource collections over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/questboard/questboard-api/internal/config"
	"github.com/questboard/questboard-api/internal/platform/logger"
	"github.com/questboard/questboard-api/internal/platform/postgres"
	"github.com/questboard/questboard-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run wires configuration, logging, the database, the stores, the resource
// services and the HTTP server, then blocks until shutdown.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("set up logger: %w", err)
	}

	db, err := postgres.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	queryTimeout := time.Duration(cfg.Database.QueryTimeout) * time.Second
	questStore := postgres.NewQuestStore(db, queryTimeout, appLogger)
	userStore := postgres.NewUserStore(db, queryTimeout, appLogger)
	roleStore := postgres.NewRoleStore(db, queryTimeout, appLogger)

	questService := service.NewQuestService(questStore, appLogger)
	userService := service.NewUserService(
		userStore,
		roleStore,
		cfg.App.DefaultUserRole,
		cfg.App.BcryptCost,
		appLogger,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      newRouter(questService, userService, appLogger),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(appLogger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-quit:
		appLogger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	appLogger.Info("server stopped")
	return nil
}
