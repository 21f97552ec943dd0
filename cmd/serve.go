package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "ads-manager/internal/adapter/http"
	"ads-manager/internal/adapter/llm"
	"ads-manager/internal/adapter/postgres"
	"ads-manager/internal/adapter/usecase"
	"ads-manager/internal/auth"
	"ads-manager/internal/core/assistant"
	"ads-manager/internal/db"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

// serve runs the API until SIGINT or SIGTERM, then drains in-flight
// requests for cfg.HTTP.ShutdownTimeout.
func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}
	if cfg.LLM.APIKey == "" {
		logger.Warn("LLM_API_KEY is empty; chat replies will fail")
	}
	if cfg.Auth.InsecureSecret() {
		logger.Warn("AUTH_JWT_SECRET is not set; using the built-in default secret")
	}

	pool, err := a.openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	campaigns := postgres.NewCampaignRepository(pool)
	adSets := postgres.NewAdSetRepository(pool)
	ads := postgres.NewAdRepository(pool)
	users := postgres.NewUserRepository(pool)

	chat := usecase.NewChatUseCase(
		llm.NewClient(cfg.LLM),
		assistant.NewDispatcher(campaigns, adSets, ads),
		assistant.NewHistory(cfg.Chat.HistoryLimit),
		logger,
		cfg.LLM.Timeout,
	)
	entities := usecase.NewEntityUseCase(campaigns, adSets, ads)
	accounts := usecase.NewAuthUseCase(users, auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL))

	var limiter *httpadapter.RateLimiter
	if cfg.Chat.RatePerSecond > 0 {
		limiter = httpadapter.NewRateLimiter(cfg.Chat.RatePerSecond, cfg.Chat.RateBurst)
	}

	handler := httpadapter.NewHandler(chat, entities, accounts, limiter, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := notifyShutdown()
	var stopErr error
	select {
	case value := <-quit:
		stopErr = signalExit{sig: value.(syscall.Signal)}
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return stopErr
}
