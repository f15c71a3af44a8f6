package converter

import (
	"time"

	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"
	"pontomais/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRow struct {
	ID              uuid.UUID
	PointID         uuid.UUID
	PointSnapshot   []byte
	Period          string
	Price           pgtype.Numeric
	StartDate       time.Time
	EndDate         time.Time
	PurchaseDate    time.Time
	UserEmail       string
	TransactionCode string
}

func BookingToRow(b *booking.Booking) (BookingRow, error) {
	snap, err := json.Marshal(b.Point())
	if err != nil {
		return BookingRow{}, err
	}
	return BookingRow{
		ID:              b.ID(),
		PointID:         b.PointID(),
		PointSnapshot:   snap,
		Period:          b.Option().Period().String(),
		Price:           pgconv.DecimalToNumeric(b.Amount()),
		StartDate:       b.StartDate(),
		EndDate:         b.EndDate(),
		PurchaseDate:    b.PurchaseDate(),
		UserEmail:       b.UserEmail(),
		TransactionCode: b.TransactionCode(),
	}, nil
}

func BookingFromRow(r BookingRow) (*booking.Booking, error) {
	var snap point.Snapshot
	if err := json.Unmarshal(r.PointSnapshot, &snap); err != nil {
		return nil, err
	}
	period, err := plan.NewPeriod(r.Period)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(r.Price)
	if err != nil {
		return nil, err
	}
	option, err := plan.NewOption(period, price)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		r.ID, r.PointID, snap, option,
		r.StartDate, r.EndDate, r.PurchaseDate,
		r.UserEmail, r.TransactionCode,
	), nil
}
