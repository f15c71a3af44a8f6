package booking

import (
	"strings"
	"time"

	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	id              uuid.UUID
	pointID         uuid.UUID
	point           point.Snapshot
	option          plan.Option
	startDate       time.Time
	endDate         time.Time
	purchaseDate    time.Time
	userEmail       string
	transactionCode string
}

var snapshotOf = (*point.Point).Snapshot

type Factory struct {
	Clock clock.Clock
	Codes CodeGenerator
}

func NewFactory(clk clock.Clock, codes CodeGenerator) *Factory {
	return &Factory{
		Clock: clk,
		Codes: codes,
	}
}

// Finalize builds the booking record. Availability is the caller's concern.
func (f *Factory) Finalize(pt *point.Point, period plan.Period, start time.Time, buyerEmail string) (*Booking, error) {
	if pt.IsHidden() {
		return nil, point.ErrPointHidden
	}
	option, ok := pt.Catalog().Find(period)
	if !ok {
		return nil, ErrOptionNotOffered
	}
	buyerEmail = strings.TrimSpace(strings.ToLower(buyerEmail))
	if buyerEmail == "" {
		return nil, ErrEmptyBuyer
	}

	snap, err := snapshotOf(pt)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "snapshot point "+pt.ID().String()), ErrSnapshotFailed)
	}

	startDate := clock.DateOf(start)
	return &Booking{
		id:              uuid.New(),
		pointID:         pt.ID(),
		point:           snap,
		option:          option,
		startDate:       startDate,
		endDate:         EndDateFor(startDate, period),
		purchaseDate:    f.Clock.Now(),
		userEmail:       buyerEmail,
		transactionCode: f.Codes.Next(),
	}, nil
}

func Reconstruct(
	id, pointID uuid.UUID,
	snap point.Snapshot,
	option plan.Option,
	startDate, endDate, purchaseDate time.Time,
	userEmail, transactionCode string,
) *Booking {
	return &Booking{
		id:              id,
		pointID:         pointID,
		point:           snap,
		option:          option,
		startDate:       clock.DateOf(startDate),
		endDate:         clock.DateOf(endDate),
		purchaseDate:    purchaseDate,
		userEmail:       userEmail,
		transactionCode: transactionCode,
	}
}

func (b *Booking) Status(now time.Time) Status {
	return StatusAt(b.startDate, b.endDate, now)
}

// DaysRented is the whole-day distance between start and end.
func (b *Booking) DaysRented() int {
	return int(b.endDate.Sub(b.startDate).Round(24*time.Hour) / (24 * time.Hour))
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) PointID() uuid.UUID      { return b.pointID }
func (b *Booking) Point() point.Snapshot   { return b.point }
func (b *Booking) Option() plan.Option     { return b.option }
func (b *Booking) Amount() decimal.Decimal { return b.option.Price() }
func (b *Booking) StartDate() time.Time    { return b.startDate }
func (b *Booking) EndDate() time.Time      { return b.endDate }
func (b *Booking) PurchaseDate() time.Time { return b.purchaseDate }
func (b *Booking) UserEmail() string       { return b.userEmail }
func (b *Booking) TransactionCode() string { return b.transactionCode }

type Receipt struct {
	BookingID       uuid.UUID
	TransactionCode string
	PointTitle      string
	Period          plan.Period
	StartDate       time.Time
	EndDate         time.Time
	Amount          decimal.Decimal
	PurchaseDate    time.Time
}

func (b *Booking) Receipt() Receipt {
	return Receipt{
		BookingID:       b.id,
		TransactionCode: b.transactionCode,
		PointTitle:      b.point.Title,
		Period:          b.option.Period(),
		StartDate:       b.startDate,
		EndDate:         b.endDate,
		Amount:          b.option.Price(),
		PurchaseDate:    b.purchaseDate,
	}
}
