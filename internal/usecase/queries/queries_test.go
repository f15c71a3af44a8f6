//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/occupancy"
	"pontomais/internal/domain/partner"
	"pontomais/internal/domain/point"
	"pontomais/internal/domain/user"
	"pontomais/internal/infra/memstore"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

var now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func newStore() *memstore.Store {
	return memstore.New(slog.Default())
}

func newClock() *clock.MockClock {
	return clock.NewMockClock(now)
}

func insertBookings(store *memstore.Store, bookings ...*booking.Booking) {
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, b := range bookings {
			if err := tx.Bookings().Create(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
}

func insertUsers(store *memstore.Store, users ...*user.User) {
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, u := range users {
			if err := tx.Users().Create(ctx, u); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
}

func insertRequests(store *memstore.Store, reqs ...*partner.Request) {
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, r := range reqs {
			if err := tx.PartnerRequests().Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
}

func bumpVersion(store *memstore.Store, pt *point.Point) {
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		stored, err := tx.Points().FindByID(ctx, pt.ID())
		if err != nil {
			return err
		}
		_, err = tx.Points().BumpVersion(ctx, pt.ID(), stored.Version())
		return err
	})
	if err != nil {
		panic(err)
	}
}

type cacheKey struct {
	pointID uuid.UUID
	version int64
	day     time.Time
}

// countingCache is an in-memory OccupancyCache that counts hits and misses.
type countingCache struct {
	mu      sync.Mutex
	entries map[cacheKey]occupancy.Index
	hits    int
	misses  int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: map[cacheKey]occupancy.Index{}}
}

func (c *countingCache) Get(_ context.Context, pointID uuid.UUID, version int64, day time.Time) (occupancy.Index, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ix, ok := c.entries[cacheKey{pointID, version, day}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return ix, ok
}

func (c *countingCache) Set(_ context.Context, pointID uuid.UUID, version int64, day time.Time, ix occupancy.Index) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{pointID, version, day}] = ix
}
