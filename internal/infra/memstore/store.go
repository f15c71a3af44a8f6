// Package memstore is an in-process UnitOfWork for local runs and usecase tests.
// A write transaction works on a copy of the tables and swaps it in on success,
// so a failing fn leaves nothing behind. Writers are serialized.
package memstore

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/partner"
	"pontomais/internal/domain/point"
	"pontomais/internal/domain/user"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

type idemKey struct {
	key   uuid.UUID
	email string
}

type tables struct {
	users       map[uuid.UUID]*user.User
	points      map[uuid.UUID]*point.Point
	bookings    map[uuid.UUID]*booking.Booking
	requests    map[uuid.UUID]*partner.Request
	idempotency map[idemKey]shared.IdempotencyRecord
}

func (t tables) clone() tables {
	return tables{
		users:       maps.Clone(t.users),
		points:      maps.Clone(t.points),
		bookings:    maps.Clone(t.bookings),
		requests:    maps.Clone(t.requests),
		idempotency: maps.Clone(t.idempotency),
	}
}

type Store struct {
	mu     sync.RWMutex
	data   tables
	logger *slog.Logger
	now    func() time.Time
}

func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		data: tables{
			users:       map[uuid.UUID]*user.User{},
			points:      map[uuid.UUID]*point.Point{},
			bookings:    map[uuid.UUID]*booking.Booking{},
			requests:    map[uuid.UUID]*partner.Request{},
			idempotency: map[idemKey]shared.IdempotencyRecord{},
		},
		logger: logger,
		now:    time.Now,
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.data.clone()
	if err := fn(ctx, &memTx{store: s, t: &staged}); err != nil {
		return err
	}
	s.data = staged
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	// writes through a read-only tx land on a throwaway copy
	view := s.data.clone()
	return fn(ctx, &memTx{store: s, t: &view})
}

type memTx struct {
	store *Store
	t     *tables
}

func (tx *memTx) Users() shared.UserRepository {
	return &userRepo{tx: tx}
}

func (tx *memTx) Points() shared.PointRepository {
	return &pointRepo{tx: tx}
}

func (tx *memTx) Bookings() shared.BookingRepository {
	return &bookingRepo{tx: tx}
}

func (tx *memTx) PartnerRequests() shared.PartnerRequestRepository {
	return &requestRepo{tx: tx}
}

func (tx *memTx) Idempotency() shared.IdempotencyRepository {
	return &idempotencyRepo{tx: tx}
}
