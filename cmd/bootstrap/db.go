package bootstrap

import (
	"context"
	"log/slog"

	"pontomais/internal/infra/cache"
	"pontomais/internal/infra/db"
	"pontomais/internal/infra/memstore"
	"pontomais/internal/infra/uow"
	"pontomais/internal/pkg/config"
	"pontomais/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const storeDriverMemory = "memory"

var DBModule = fx.Module("db",
	fx.Provide(
		NewUnitOfWork,
		NewOccupancyCache,
	),
)

// NewUnitOfWork opens postgres (migrating on start when enabled), or an in-process
// store seeded with the demo points when STORE_DRIVER=memory.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	if cfg.App.StoreDriver == storeDriverMemory {
		store := memstore.New(logger)
		store.Seed(memstore.DemoPoints()...)
		logger.Warn("using in-memory store, data is lost on restart")
		return store, nil
	}

	pool, err := NewDB(lc, cfg)
	if err != nil {
		return nil, err
	}
	return uow.NewPostgresUoW(pool, logger), nil
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.MigrateOnStart {
		if err := db.Migrate(ctx, pool); err != nil {
			cleanup()
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewOccupancyCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.OccupancyCache, error) {
	if cfg.Redis.Addr == "" {
		return cache.Noop{}, nil
	}

	client, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewOccupancyCache(client, cfg.Redis.IndexTTL, logger), nil
}
