// Package finance computes the marketplace revenue split and per-user and per-point figures.
package finance

import (
	"time"

	"pontomais/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	CompanyShare = decimal.NewFromFloat(0.25)
	PartnerShare = decimal.NewFromFloat(0.75)
)

type Summary struct {
	TotalRevenue   decimal.Decimal
	CompanyProfit  decimal.Decimal
	PartnerRevenue decimal.Decimal
	BookingCount   int
	ActiveBookings int
}

func Summarize(bookings []*booking.Booking, now time.Time) Summary {
	total := Revenue(bookings)
	active := 0
	for _, b := range bookings {
		if b.Status(now) == booking.StatusActive {
			active++
		}
	}
	return Summary{
		TotalRevenue:   total,
		CompanyProfit:  total.Mul(CompanyShare),
		PartnerRevenue: total.Mul(PartnerShare),
		BookingCount:   len(bookings),
		ActiveBookings: active,
	}
}

func Revenue(bookings []*booking.Booking) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range bookings {
		sum = sum.Add(b.Amount())
	}
	return sum
}

type UserMetrics struct {
	Email            string
	TotalInvested    decimal.Decimal
	BookingCount     int
	HasActiveBooking bool
	IsOwner          bool
}

// ForUser considers only bookings made under email. owners is the set of emails
// that submitted at least one partner request.
func ForUser(email string, bookings []*booking.Booking, owners map[string]struct{}, now time.Time) UserMetrics {
	m := UserMetrics{Email: email, TotalInvested: decimal.Zero}
	for _, b := range bookings {
		if b.UserEmail() != email {
			continue
		}
		m.BookingCount++
		m.TotalInvested = m.TotalInvested.Add(b.Amount())
		if b.Status(now) == booking.StatusActive {
			m.HasActiveBooking = true
		}
	}
	_, m.IsOwner = owners[email]
	return m
}

type PointMetrics struct {
	PointID         uuid.UUID
	TotalRevenue    decimal.Decimal
	BookingCount    int
	IsActive        bool
	TotalDaysRented int
	LastPaymentDate *time.Time
}

func ForPoint(pointID uuid.UUID, bookings []*booking.Booking, now time.Time) PointMetrics {
	m := PointMetrics{PointID: pointID, TotalRevenue: decimal.Zero}
	for _, b := range bookings {
		if b.PointID() != pointID {
			continue
		}
		m.BookingCount++
		m.TotalRevenue = m.TotalRevenue.Add(b.Amount())
		m.TotalDaysRented += b.DaysRented()
		if b.Status(now) == booking.StatusActive {
			m.IsActive = true
		}
		if p := b.PurchaseDate(); m.LastPaymentDate == nil || p.After(*m.LastPaymentDate) {
			m.LastPaymentDate = &p
		}
	}
	return m
}
