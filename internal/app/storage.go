// Package app wires configuration, storage and services together for the commands.
package app

import (
	"context"

	"github.com/hellofresh/health-go/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/yakoovad/octofit-tracker/internal/api"
	"github.com/yakoovad/octofit-tracker/internal/config"
	"github.com/yakoovad/octofit-tracker/internal/db"
	"github.com/yakoovad/octofit-tracker/internal/repository"
	"github.com/yakoovad/octofit-tracker/pkg/logger"
	"go.uber.org/zap"
)

// Storage is an opened record store together with its transactor.
type Storage struct {
	Store *repository.Store
	Tx    db.Transactor

	pool *pgxpool.Pool
}

// OpenStorage connects to the store selected by cfg.Storage and prepares its schema.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	l := logger.FromContext(ctx)

	if cfg.Storage == config.StorageMemory {
		l.Info("using in-memory storage")
		return &Storage{
			Store: repository.NewMemoryStore(),
			Tx:    db.NewMemoryTransactor(),
		}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	l.Info("database connection established")

	if err = db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &Storage{
		Store: repository.NewPgxStore(pool),
		Tx:    db.NewPgxTransactor(pool),
		pool:  pool,
	}, nil
}

func (s *Storage) HealthChecks() []health.Config {
	if s.pool == nil {
		return nil
	}
	return []health.Config{api.PostgresCheck(s.pool)}
}

func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// NewLogger builds the process logger and installs it as the zap global.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
