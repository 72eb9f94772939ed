package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/yakoovad/octofit-tracker/internal/app"
	"github.com/yakoovad/octofit-tracker/internal/config"
	"github.com/yakoovad/octofit-tracker/internal/service"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

// populate wipes the configured store and loads the demo dataset.
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
	defer l.Sync()

	if cfg.Storage == config.StorageMemory {
		l.Warn("populating in-memory storage, data is discarded when the command exits")
	}

	ctx := logger.WithLogger(context.Background(), l)

	storage, err := app.OpenStorage(ctx, cfg)
	if err != nil {
		l.Fatal("failed to open storage", zap.Error(err))
	}
	defer storage.Close()

	summary, seedErr := service.NewSeedService(storage.Store).Populate(ctx)
	if seedErr != nil {
		l.Fatal("failed to populate store", zap.String("error", seedErr.Message))
	}

	l.Info("database populated",
		zap.Int("users", summary.Users),
		zap.Int("teams", summary.Teams),
		zap.Int("activities", summary.Activities),
		zap.Int("leaderboard_entries", summary.LeaderboardEntries),
		zap.Int("workouts", summary.Workouts))
}
