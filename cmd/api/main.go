package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/movie-notes-api/internal/config"
	"github.com/movie-notes-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/movie-notes-api/internal/infrastructure/jwt"
	"github.com/movie-notes-api/internal/pkg/logger"
	"github.com/movie-notes-api/internal/pkg/password"
	transporthttp "github.com/movie-notes-api/internal/transport/http"
	"github.com/movie-notes-api/internal/transport/http/metrics"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	if envErr != nil {
		log.Info("no .env file found, reading from environment")
	}

	if err := cfg.Validate(); err != nil {
		fatal(log, "invalid configuration", err)
	}

	ctx := context.Background()

	conn := dynamo.NewConn(cfg)
	pingCtx, cancelPing := context.WithTimeout(ctx, 10*time.Second)
	err := conn.Ping(pingCtx)
	cancelPing()
	if err != nil {
		fatal(log, "database unreachable", err)
	}
	if err := dynamo.Bootstrap(ctx, conn, cfg.DynamoTables); err != nil {
		fatal(log, "table bootstrap failed", err)
	}

	tokens, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		fatal(log, "token provider unavailable", err)
	}

	deps := &transporthttp.Deps{
		UserRepo:     dynamo.NewUserRepo(conn, cfg.DynamoTables.Users),
		FavoriteRepo: dynamo.NewFavoriteRepo(conn, cfg.DynamoTables.Favorites),
		NoteRepo:     dynamo.NewNoteRepo(conn, cfg.DynamoTables.Notes),
		Hasher:       password.NewBcrypt(),
		Tokens:       tokens,
		Metrics:      metrics.New(),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      transporthttp.NewRouter(cfg, deps, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", slog.String("addr", srv.Addr), slog.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(log, "server error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", logger.Err(err))
		return
	}
	log.Info("server stopped")
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, logger.Err(err))
	os.Exit(1)
}
