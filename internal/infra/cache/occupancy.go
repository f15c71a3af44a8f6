// Package cache stores occupied-date indexes in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pontomais/internal/domain/occupancy"
	"pontomais/internal/pkg/config"
	"pontomais/internal/pkg/errs"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const keyPrefix = "occupancy"

func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}
	return client, nil
}

// OccupancyCache never fails a request: Redis errors are logged and read as a miss.
type OccupancyCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewOccupancyCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *OccupancyCache {
	return &OccupancyCache{client: client, ttl: ttl, logger: logger}
}

var _ shared.OccupancyCache = (*OccupancyCache)(nil)

func Key(pointID uuid.UUID, version int64, day time.Time) string {
	return fmt.Sprintf("%s:%s:v%d:%s", keyPrefix, pointID, version, occupancy.KeyOf(day))
}

func (c *OccupancyCache) Get(ctx context.Context, pointID uuid.UUID, version int64, day time.Time) (occupancy.Index, bool) {
	raw, err := c.client.Get(ctx, Key(pointID, version, day)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("occupancy cache read failed", slog.String("error", err.Error()))
		}
		return occupancy.Index{}, false
	}
	var keys []occupancy.Key
	if err := json.Unmarshal(raw, &keys); err != nil {
		c.logger.Warn("occupancy cache entry corrupted", slog.String("error", err.Error()))
		return occupancy.Index{}, false
	}
	return occupancy.FromKeys(keys), true
}

func (c *OccupancyCache) Set(ctx context.Context, pointID uuid.UUID, version int64, day time.Time, ix occupancy.Index) {
	raw, err := json.Marshal(ix.Keys())
	if err != nil {
		c.logger.Warn("occupancy cache encode failed", slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, Key(pointID, version, day), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("occupancy cache write failed", slog.String("error", err.Error()))
	}
}

// Noop is used when no Redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID, int64, time.Time) (occupancy.Index, bool) {
	return occupancy.Index{}, false
}

func (Noop) Set(context.Context, uuid.UUID, int64, time.Time, occupancy.Index) {}
