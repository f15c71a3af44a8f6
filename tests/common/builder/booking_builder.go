//go:build unit || e2e

package builder

import (
	"time"

	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"
	"pontomais/internal/pkg/clock"
)

type fixedCode string

func (c fixedCode) Next() string { return string(c) }

type BookingBuilder struct {
	Point        *point.Point
	Period       plan.Period
	StartDate    time.Time
	PurchaseDate time.Time
	BuyerEmail   string
	Code         string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Period:       plan.PeriodQuinzenal,
		StartDate:    Date(2024, time.March, 10),
		PurchaseDate: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
		BuyerEmail:   "cliente@example.com",
		Code:         "#PM4242",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) ForPoint(p *point.Point) *BookingBuilder {
	b.Point = p
	return b
}

func (b *BookingBuilder) WithPeriod(p plan.Period) *BookingBuilder {
	b.Period = p
	return b
}

func (b *BookingBuilder) StartingOn(t time.Time) *BookingBuilder {
	b.StartDate = t
	return b
}

func (b *BookingBuilder) WithBuyer(email string) *BookingBuilder {
	b.BuyerEmail = email
	return b
}

func (b *BookingBuilder) PurchasedAt(t time.Time) *BookingBuilder {
	b.PurchaseDate = t
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	pt := b.Point
	if pt == nil {
		p, err := NewPointBuilder().BuildDomain()
		if err != nil {
			return nil, err
		}
		pt = p
		b.Point = p
	}
	f := booking.NewFactory(clock.NewMockClock(b.PurchaseDate), fixedCode(b.Code))
	return f.Finalize(pt, b.Period, b.StartDate, b.BuyerEmail)
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
