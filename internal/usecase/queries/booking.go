package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"strings"

	"pontomais/internal/pkg/clock"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListMine(ctx context.Context, userEmail string) ([]*BookingView, error)
	// Get returns a receipt to its buyer or to an admin.
	Get(ctx context.Context, id uuid.UUID, userEmail string, isAdmin bool) (*BookingView, error)
}

type bookingQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingQueries(uow shared.UnitOfWork, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{uow: uow, clock: clk}
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, userEmail string) ([]*BookingView, error) {
	var views []*BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookings, err := tx.Bookings().ListByUser(ctx, strings.ToLower(strings.TrimSpace(userEmail)))
		if err != nil {
			return err
		}
		views = ToBookingViews(bookings, q.clock.Now())
		return nil
	})
	return views, err
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id uuid.UUID, userEmail string, isAdmin bool) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}
		if !isAdmin && !strings.EqualFold(b.UserEmail(), strings.TrimSpace(userEmail)) {
			return ErrBookingAccess
		}
		view = ToBookingView(b, q.clock.Now())
		return nil
	})
	return view, err
}
