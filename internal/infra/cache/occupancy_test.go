//go:build unit

package cache_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"pontomais/internal/domain/occupancy"
	"pontomais/internal/infra/cache"
	"pontomais/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRedis overrides the two commands the cache issues.
type MockRedis struct {
	redis.Cmdable
	mock.Mock
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func (m *MockRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, ttl)
	return redis.NewStatusResult("OK", args.Error(0))
}

var (
	pointID = uuid.MustParse("6f1c2a7e-0d2b-4c54-9a51-2f7d1b0e8a01")
	day     = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
)

func TestKey(t *testing.T) {
	assert.Equal(t, "occupancy:6f1c2a7e-0d2b-4c54-9a51-2f7d1b0e8a01:v3:2024-03-15", cache.Key(pointID, 3, day))
	assert.NotEqual(t, cache.Key(pointID, 3, day), cache.Key(pointID, 4, day))
	assert.NotEqual(t, cache.Key(pointID, 3, day), cache.Key(pointID, 3, day.AddDate(0, 0, 1)))
}

func TestGet(t *testing.T) {
	key := cache.Key(pointID, 2, day)

	tests := []struct {
		name     string
		raw      string
		err      error
		wantHit  bool
		wantWarn bool
		wantDays []occupancy.Key
	}{
		{
			name:     "hit",
			raw:      `["2024-03-20","2024-03-21"]`,
			wantHit:  true,
			wantDays: []occupancy.Key{"2024-03-20", "2024-03-21"},
		},
		{
			name: "miss",
			err:  redis.Nil,
		},
		{
			name: "wrapped miss is still a quiet miss",
			err:  fmt.Errorf("pipeline: %w", redis.Nil),
		},
		{
			name:     "redis failure reads as miss",
			err:      assert.AnError,
			wantWarn: true,
		},
		{
			name:     "corrupted entry reads as miss",
			raw:      `{not json`,
			wantWarn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockRedis)
			client.On("Get", mock.Anything, key).Return(tt.raw, tt.err)

			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))
			c := cache.NewOccupancyCache(client, time.Minute, logger)
			ix, ok := c.Get(context.Background(), pointID, 2, day)

			require.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.wantWarn, bytes.Contains(logs.Bytes(), []byte("level=WARN")), logs.String())
			if tt.wantHit {
				assert.Equal(t, tt.wantDays, ix.Keys())
			}
			client.AssertExpectations(t)
		})
	}
}

func TestSet(t *testing.T) {
	key := cache.Key(pointID, 2, day)
	ix := occupancy.FromKeys([]occupancy.Key{"2024-03-20"})

	client := new(MockRedis)
	client.On("Set", mock.Anything, key, []byte(`["2024-03-20"]`), 5*time.Minute).Return(nil)

	c := cache.NewOccupancyCache(client, 5*time.Minute, slog.Default())
	c.Set(context.Background(), pointID, 2, day, ix)

	client.AssertExpectations(t)
}

func TestConnectUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := cache.Connect(ctx, config.RedisConfig{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping redis")
}

func TestNoop(t *testing.T) {
	var c cache.Noop
	c.Set(context.Background(), pointID, 1, day, occupancy.FromKeys([]occupancy.Key{"2024-03-20"}))
	_, ok := c.Get(context.Background(), pointID, 1, day)
	assert.False(t, ok)
}
