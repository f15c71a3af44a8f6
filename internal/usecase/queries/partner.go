package queries

//go:generate mockgen -source=partner.go -destination=../../../tests/mock/queries/partner.go -package=queriesmock

import (
	"context"
	"strings"

	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/finance"
	"pontomais/internal/domain/partner"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/usecase/shared"
)

type PartnerQueries interface {
	ListMine(ctx context.Context, email string) ([]*PartnerRequestView, error)
	// Dashboard adds the bookings and revenue of the points linked to the caller's requests.
	Dashboard(ctx context.Context, email string) (*PartnerDashboardView, error)
	ListForAdmin(ctx context.Context, status *partner.Status) ([]*PartnerRequestView, error)
}

type partnerQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPartnerQueries(uow shared.UnitOfWork, clk clock.Clock) PartnerQueries {
	return &partnerQueriesImpl{uow: uow, clock: clk}
}

func (q *partnerQueriesImpl) ListMine(ctx context.Context, email string) ([]*PartnerRequestView, error) {
	var views []*PartnerRequestView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		reqs, err := tx.PartnerRequests().ListByEmail(ctx, normalizeEmail(email))
		if err != nil {
			return err
		}
		views = ToPartnerRequestViews(reqs)
		return nil
	})
	return views, err
}

func (q *partnerQueriesImpl) Dashboard(ctx context.Context, email string) (*PartnerDashboardView, error) {
	var view *PartnerDashboardView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		reqs, err := tx.PartnerRequests().ListByEmail(ctx, normalizeEmail(email))
		if err != nil {
			return err
		}

		var bookings []*booking.Booking
		for _, r := range reqs {
			if r.PointID() == nil {
				continue
			}
			linked, err := tx.Bookings().ListByPoint(ctx, *r.PointID())
			if err != nil {
				return err
			}
			bookings = append(bookings, linked...)
		}

		view = &PartnerDashboardView{
			Requests: ToPartnerRequestViews(reqs),
			Bookings: ToBookingViews(bookings, q.clock.Now()),
			Revenue:  finance.Revenue(bookings),
		}
		return nil
	})
	return view, err
}

func (q *partnerQueriesImpl) ListForAdmin(ctx context.Context, status *partner.Status) ([]*PartnerRequestView, error) {
	var views []*PartnerRequestView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		reqs, err := tx.PartnerRequests().List(ctx, status)
		if err != nil {
			return err
		}
		views = ToPartnerRequestViews(reqs)
		return nil
	})
	return views, err
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
