package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evgeniy-krivenko/minds/internal/config"
	"github.com/evgeniy-krivenko/minds/internal/entity"
	"github.com/evgeniy-krivenko/minds/internal/repository"
	"github.com/evgeniy-krivenko/minds/internal/repository/memory"
	"github.com/evgeniy-krivenko/minds/pkg/database"
	"github.com/evgeniy-krivenko/minds/pkg/logger/slogx"
)

type mindsRepository interface {
	List(ctx context.Context) ([]entity.Mind, error)
	Create(ctx context.Context, content string) (entity.Mind, error)
	Delete(ctx context.Context, id uint64) error
}

// newRepository picks the store backend. The returned func releases its resources.
func newRepository(ctx context.Context, cfg config.Config) (mindsRepository, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		return newPostgresRepository(ctx, cfg.Database)
	default:
		return newMemoryRepository(ctx, cfg.Store)
	}
}

func newMemoryRepository(ctx context.Context, cfg config.StoreConfig) (mindsRepository, func(), error) {
	var seed []entity.Mind

	switch {
	case cfg.SeedFile != "":
		s, err := memory.LoadSeed(cfg.SeedFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load seed: %v", err)
		}
		seed = s
	case cfg.Seed:
		seed = memory.DefaultSeed()
	}

	slogx.Info(ctx, "use in-memory store", slog.Int("seed", len(seed)))

	return memory.New(memory.WithSeed(seed)), func() {}, nil
}

func newPostgresRepository(ctx context.Context, cfg config.DatabaseConfig) (mindsRepository, func(), error) {
	pool, err := database.NewPGX(ctx, database.NewOptions(
		cfg.Addr(),
		cfg.User,
		cfg.Password,
		cfg.Name,
		database.WithMaxConns(cfg.MaxConns),
		database.WithRetryAttempts(cfg.RetryAttempts),
		database.WithLogger(slogx.Default()),
	))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %v", err)
	}

	if cfg.Migrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate: %v", err)
		}
	}

	slogx.Info(ctx, "use postgres store",
		slog.String("addr", cfg.Addr()),
		slog.Int("max_conns", int(cfg.MaxConns)),
	)

	db := database.NewDatabase(pool)

	return repository.New(db), db.Close, nil
}
