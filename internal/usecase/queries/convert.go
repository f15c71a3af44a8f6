package queries

import (
	"time"

	"pontomais/internal/domain/availability"
	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/catalog"
	"pontomais/internal/domain/partner"
	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"
	"pontomais/internal/domain/user"
)

func ToPointView(p *point.Point) *PointView {
	quotes := p.Catalog().Quotes()
	opts := make([]PlanQuoteView, 0, len(quotes))
	for _, q := range quotes {
		v := PlanQuoteView{
			Period:       q.Option.Period().String(),
			DurationDays: plan.DurationDays(q.Option.Period()),
			Price:        q.Option.Price(),
			PerDay:       q.PerDay.Round(2),
		}
		if q.HasBadge {
			pct := q.SavingsPercent
			v.SavingsPercent = &pct
		}
		opts = append(opts, v)
	}
	return &PointView{
		ID:            p.ID(),
		Title:         p.Title(),
		Location:      p.Location(),
		Neighborhood:  p.Neighborhood(),
		City:          p.City(),
		State:         catalog.StateOf(p.City()),
		Images:        p.Images(),
		FootTraffic:   p.FootTraffic().String(),
		Description:   p.Description(),
		Category:      p.Category(),
		Features:      p.Features(),
		RentalOptions: opts,
		IsHidden:      p.IsHidden(),
		Version:       p.Version(),
	}
}

func ToPointViews(ps []*point.Point) []*PointView {
	out := make([]*PointView, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToPointView(p))
	}
	return out
}

func ToBookingView(b *booking.Booking, now time.Time) *BookingView {
	return &BookingView{
		ID:              b.ID(),
		TransactionCode: b.TransactionCode(),
		Point:           b.Point(),
		Period:          b.Option().Period().String(),
		Price:           b.Amount(),
		StartDate:       b.StartDate(),
		EndDate:         b.EndDate(),
		PurchaseDate:    b.PurchaseDate(),
		UserEmail:       b.UserEmail(),
		Status:          b.Status(now).String(),
	}
}

func ToBookingViews(bs []*booking.Booking, now time.Time) []*BookingView {
	out := make([]*BookingView, 0, len(bs))
	for _, b := range bs {
		out = append(out, ToBookingView(b, now))
	}
	return out
}

func ToUserView(u *user.User) *UserView {
	return &UserView{
		ID:          u.ID(),
		Name:        u.Name(),
		Email:       u.Email().Value(),
		Phone:       u.Phone(),
		Role:        u.Role().String(),
		ProfileType: u.ProfileType().String(),
		JoinDate:    u.JoinDate(),
	}
}

func ToPartnerRequestView(r *partner.Request) *PartnerRequestView {
	s := r.Submission()
	return &PartnerRequestView{
		ID:                r.ID(),
		OwnerName:         s.OwnerName,
		Email:             s.Email,
		Phone:             s.Phone,
		EstablishmentName: s.EstablishmentName,
		CNPJ:              s.CNPJ,
		Address:           s.Address,
		City:              s.City,
		Description:       s.Description,
		Features:          s.Features,
		Images:            s.Images,
		Prices: PricesView{
			Quinzenal:  s.Prices.Quinzenal,
			Mensal:     s.Prices.Mensal,
			Trimestral: s.Prices.Trimestral,
		},
		Status:      r.Status().String(),
		RequestDate: r.RequestDate(),
		ResolvedAt:  r.ResolvedAt(),
		PointID:     r.PointID(),
	}
}

func ToPartnerRequestViews(rs []*partner.Request) []*PartnerRequestView {
	out := make([]*PartnerRequestView, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToPartnerRequestView(r))
	}
	return out
}

// ToAvailabilityError is nil for a nil err.
func ToAvailabilityError(err error) *AvailabilityError {
	if err == nil {
		return nil
	}
	code := availability.CodeOf(err)
	if code == "" {
		code = availability.CodeInvalidDate
	}
	return &AvailabilityError{Code: string(code), Message: err.Error()}
}
