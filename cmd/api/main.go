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

	"github.com/joho/godotenv"
	"github.com/mypass/mypass-go/internal/config"
	"github.com/mypass/mypass-go/internal/crypto"
	"github.com/mypass/mypass-go/internal/handler"
	"github.com/mypass/mypass-go/internal/repository"
	"github.com/mypass/mypass-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	gen := crypto.NewGenerator(crypto.NewCryptoSource(), crypto.WithMaxAttempts(cfg.GeneratorMaxAttempts))
	genService := service.NewGeneratorService(gen)

	routes := handler.RouterConfig{
		Generator:      handler.NewGeneratorHandler(genService),
		JWTSecret:      cfg.JWTSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Metrics:        cfg.MetricsEnabled,
	}

	// Accounts and presets need the database; generation works without it.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, account and preset routes disabled", "error", err)
	} else {
		defer db.Close()

		authService := service.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiry)
		presetService := service.NewPresetService(repository.NewPresetRepository(db), genService)

		routes.Auth = handler.NewAuthHandler(authService)
		routes.Preset = handler.NewPresetHandler(presetService)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(routes),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "accounts", routes.Auth != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
