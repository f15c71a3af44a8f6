package queries

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin.go -package=queriesmock

import (
	"context"

	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/catalog"
	"pontomais/internal/domain/finance"
	"pontomais/internal/domain/partner"
	"pontomais/internal/domain/point"
	"pontomais/internal/domain/user"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/usecase/shared"
)

type AdminQueries interface {
	Financials(ctx context.Context) (*FinancialsView, error)
	Users(ctx context.Context) ([]*UserView, error)
	// Export dumps the four collections under their storage keys.
	Export(ctx context.Context) (*ExportDocument, error)
}

type adminQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAdminQueries(uow shared.UnitOfWork, clk clock.Clock) AdminQueries {
	return &adminQueriesImpl{uow: uow, clock: clk}
}

type collections struct {
	users    []*user.User
	points   []*point.Point
	bookings []*booking.Booking
	requests []*partner.Request
}

func (q *adminQueriesImpl) load(ctx context.Context, tx shared.Tx) (collections, error) {
	var c collections
	var err error
	if c.users, err = tx.Users().List(ctx); err != nil {
		return c, err
	}
	if c.points, err = tx.Points().Search(ctx, catalog.Filter{}, true); err != nil {
		return c, err
	}
	if c.bookings, err = tx.Bookings().List(ctx); err != nil {
		return c, err
	}
	if c.requests, err = tx.PartnerRequests().List(ctx, nil); err != nil {
		return c, err
	}
	return c, nil
}

func (q *adminQueriesImpl) Financials(ctx context.Context) (*FinancialsView, error) {
	var view *FinancialsView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := q.load(ctx, tx)
		if err != nil {
			return err
		}
		now := q.clock.Now()

		owners := make(map[string]struct{}, len(c.requests))
		var pending []*partner.Request
		for _, r := range c.requests {
			owners[normalizeEmail(r.Email())] = struct{}{}
			if r.IsPending() {
				pending = append(pending, r)
			}
		}

		s := finance.Summarize(c.bookings, now)
		view = &FinancialsView{
			Summary: FinancialSummaryView{
				TotalRevenue:   s.TotalRevenue,
				CompanyProfit:  s.CompanyProfit,
				PartnerRevenue: s.PartnerRevenue,
				BookingCount:   s.BookingCount,
				ActiveBookings: s.ActiveBookings,
			},
			Users:           make([]*UserMetricsView, 0, len(c.users)),
			Points:          make([]*PointMetricsView, 0, len(c.points)),
			PendingRequests: ToPartnerRequestViews(pending),
		}
		for _, u := range c.users {
			m := finance.ForUser(u.Email().Value(), c.bookings, owners, now)
			view.Users = append(view.Users, &UserMetricsView{
				UserView:         *ToUserView(u),
				TotalInvested:    m.TotalInvested,
				BookingCount:     m.BookingCount,
				HasActiveBooking: m.HasActiveBooking,
				IsOwner:          m.IsOwner,
			})
		}
		for _, p := range c.points {
			m := finance.ForPoint(p.ID(), c.bookings, now)
			view.Points = append(view.Points, &PointMetricsView{
				PointView:       *ToPointView(p),
				TotalRevenue:    m.TotalRevenue,
				BookingCount:    m.BookingCount,
				IsActive:        m.IsActive,
				TotalDaysRented: m.TotalDaysRented,
				LastPaymentDate: m.LastPaymentDate,
			})
		}
		return nil
	})
	return view, err
}

func (q *adminQueriesImpl) Users(ctx context.Context) ([]*UserView, error) {
	var views []*UserView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		users, err := tx.Users().List(ctx)
		if err != nil {
			return err
		}
		views = make([]*UserView, 0, len(users))
		for _, u := range users {
			views = append(views, ToUserView(u))
		}
		return nil
	})
	return views, err
}

func (q *adminQueriesImpl) Export(ctx context.Context) (*ExportDocument, error) {
	var doc *ExportDocument
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := q.load(ctx, tx)
		if err != nil {
			return err
		}
		users := make([]*UserView, 0, len(c.users))
		for _, u := range c.users {
			users = append(users, ToUserView(u))
		}
		doc = &ExportDocument{
			Users:    users,
			Points:   ToPointViews(c.points),
			Bookings: ToBookingViews(c.bookings, q.clock.Now()),
			Requests: ToPartnerRequestViews(c.requests),
		}
		return nil
	})
	return doc, err
}
