package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yakoovad/octofit-tracker/internal/app"
	"github.com/yakoovad/octofit-tracker/internal/auth"
	"github.com/yakoovad/octofit-tracker/internal/config"
	"github.com/yakoovad/octofit-tracker/internal/service"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	l, err := app.NewLogger(cfg)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(logger.WithLogger(ctx, l), cfg, l)
	stop()

	if err != nil {
		l.Error("application failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
	_ = l.Sync()
}

// run serves until ctx is cancelled or the server fails. Storage is closed on every return path.
func run(ctx context.Context, cfg *config.Config, l *zap.Logger) error {
	l.Info("starting application", zap.String("storage", cfg.Storage), zap.String("addr", cfg.Addr))

	if cfg.TokenSecret == "" {
		l.Warn("token_secret is empty, admin routes will reject every request")
	}
	auth.SetSecret(cfg.TokenSecret)

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	storage, err := app.OpenStorage(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "open storage")
	}
	defer storage.Close()

	handler := app.NewHandler(cfg, l, storage)

	if cfg.SeedOnStart {
		if _, seedErr := service.NewSeedService(storage.Store).Populate(ctx); seedErr != nil {
			return errors.Wrap(seedErr, "seed store")
		}
	}

	e := echo.New()
	e.HideBanner = true
	handler.RegisterRoutes(e)

	serveErr := make(chan error, 1)
	go func() {
		l.Info("server starting", zap.String("addr", cfg.Addr))
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			stop()
		}
	}()

	<-ctx.Done()
	l.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		l.Error("server shutdown failed", zap.Error(err))
	}
	l.Info("server stopped")

	select {
	case err = <-serveErr:
		return errors.Wrap(err, "server stopped unexpectedly")
	default:
		return nil
	}
}
