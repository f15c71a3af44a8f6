package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"time"

	"pontomais/internal/domain/availability"
	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/datepick"
	"pontomais/internal/domain/occupancy"
	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"
	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	Calendar(ctx context.Context, pointID uuid.UUID, q reqdto.CalendarQuery) (*CalendarView, error)
	// Check reports a validation failure inside the view, not as an error.
	Check(ctx context.Context, pointID uuid.UUID, req reqdto.AvailabilityRequest) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow   shared.UnitOfWork
	cache shared.OccupancyCache
	clock clock.Clock
}

func NewAvailabilityQueries(uow shared.UnitOfWork, cache shared.OccupancyCache, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

func (a *availabilityQueriesImpl) Calendar(ctx context.Context, pointID uuid.UUID, q reqdto.CalendarQuery) (*CalendarView, error) {
	today := clock.Today(a.clock)
	year, month, period, selected, err := q.ToDomain(today)
	if err != nil {
		return nil, err
	}

	var view *CalendarView
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		pt, ix, err := a.load(ctx, tx, pointID)
		if err != nil {
			return err
		}
		if q.Period == "" {
			period = defaultPeriod(pt, period)
		}
		if _, ok := pt.Catalog().Find(period); !ok {
			return booking.ErrOptionNotOffered
		}

		sel := datepick.NewSelector(period, ix, today)
		if selected != nil {
			sel.Click(*selected)
		}
		sel.Show(year, month)
		view = toCalendarView(pointID, sel, ix)
		return nil
	})
	return view, err
}

func (a *availabilityQueriesImpl) Check(ctx context.Context, pointID uuid.UUID, req reqdto.AvailabilityRequest) (*AvailabilityView, error) {
	period, start, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	var view *AvailabilityView
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		pt, ix, err := a.load(ctx, tx, pointID)
		if err != nil {
			return err
		}
		if _, ok := pt.Catalog().Find(period); !ok {
			return booking.ErrOptionNotOffered
		}

		verr := availability.Validate(start, period, ix, a.clock.Now())
		view = &AvailabilityView{
			Available: verr == nil,
			StartDate: start.Format(time.DateOnly),
			EndDate:   booking.EndDateFor(start, period).Format(time.DateOnly),
			Period:    period.String(),
			Error:     ToAvailabilityError(verr),
		}
		return nil
	})
	return view, err
}

// load returns a visible point and its occupied-date index, served from the cache
// when the point version and the day still match.
func (a *availabilityQueriesImpl) load(ctx context.Context, tx shared.Tx, pointID uuid.UUID) (*point.Point, occupancy.Index, error) {
	pt, err := tx.Points().FindByID(ctx, pointID)
	if err != nil {
		return nil, occupancy.Index{}, notFoundAs(err, ErrPointNotFound)
	}
	if pt.IsHidden() {
		return nil, occupancy.Index{}, ErrPointNotFound
	}

	now := a.clock.Now()
	today := clock.DateOf(now)
	if ix, ok := a.cache.Get(ctx, pt.ID(), pt.Version(), today); ok {
		return pt, ix, nil
	}

	bookings, err := tx.Bookings().ListByPoint(ctx, pt.ID())
	if err != nil {
		return nil, occupancy.Index{}, err
	}
	ix := occupancy.Build(bookings, pt.ID(), now)
	a.cache.Set(ctx, pt.ID(), pt.Version(), today, ix)
	return pt, ix, nil
}

// defaultPeriod keeps fallback when the point offers it, else the first listed option.
func defaultPeriod(pt *point.Point, fallback plan.Period) plan.Period {
	if _, ok := pt.Catalog().Find(fallback); ok {
		return fallback
	}
	opts := pt.Catalog().Options()
	if len(opts) == 0 {
		return fallback
	}
	return opts[0].Period()
}

func toCalendarView(pointID uuid.UUID, sel *datepick.Selector, ix occupancy.Index) *CalendarView {
	m := sel.Month()
	days := make([]CalendarDayView, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, CalendarDayView{
			Date:       d.Date.Format(time.DateOnly),
			Day:        d.Number,
			IsPast:     d.IsPast,
			IsOccupied: d.IsOccupied,
			IsToday:    d.IsToday,
			IsSelected: d.IsSelected,
			Selectable: d.Selectable,
		})
	}

	keys := ix.Keys()
	occupied := make([]string, 0, len(keys))
	for _, k := range keys {
		occupied = append(occupied, string(k))
	}

	view := &CalendarView{
		PointID:       pointID,
		Year:          m.Year,
		Month:         int(m.Month),
		Period:        sel.Period().String(),
		LeadingBlanks: m.LeadingBlanks,
		Days:          days,
		OccupiedDates: occupied,
		Error:         ToAvailabilityError(sel.Err()),
		CanProceed:    sel.CanProceed(),
	}
	if d, ok := sel.Selected(); ok {
		s := d.Format(time.DateOnly)
		view.Selected = &s
	}
	return view
}
