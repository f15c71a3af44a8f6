package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pontomais/internal/domain/availability"
	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/occupancy"
	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"
	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/infra"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/pkg/errs"
	"pontomais/internal/usecase/queries"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPointNotFound        = errs.New("point not found")
	ErrIdempotencyKeyReused = errs.New("idempotency key reused with a different request")
	ErrPaymentFailed        = errs.New("payment failed")
)

type ConfirmBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	Confirm(ctx context.Context, req reqdto.ConfirmBookingRequest, userEmail string, idempotencyKey uuid.UUID) (*ConfirmBookingResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	factory  *booking.Factory
	payments shared.PaymentGateway
	clock    clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	payments shared.PaymentGateway,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		factory:  factory,
		payments: payments,
		clock:    clk,
	}
}

// Confirm runs the booking flow: idempotency replay, a read-side availability
// check, the payment, then the commit. The commit re-validates against
// committed bookings under the point row lock, so a slot taken while the
// payment was pending fails with availability.ErrSlotUnavailable.
func (b *bookingCommandsImpl) Confirm(
	ctx context.Context,
	req reqdto.ConfirmBookingRequest,
	userEmail string,
	idempotencyKey uuid.UUID,
) (*ConfirmBookingResult, error) {
	period, start, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(userEmail))
	requestHash := req.Hash()

	replayed, err := b.replay(ctx, idempotencyKey, email, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &ConfirmBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	option, err := b.precheck(ctx, req.PointID, period, start)
	if err != nil {
		return nil, err
	}

	err = b.payments.Charge(ctx, shared.PaymentRequest{
		PointID:   req.PointID,
		UserEmail: email,
		Amount:    option.Price(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentFailed)
	}

	view, err := b.commit(ctx, req.PointID, period, start, email, idempotencyKey, requestHash)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) || errs.Is(err, availability.ErrSlotUnavailable) {
			// a concurrent request with the same key may have committed first
			replayed, replayErr := b.replay(ctx, idempotencyKey, email, requestHash)
			if replayErr != nil {
				return nil, replayErr
			}
			if replayed != nil {
				return &ConfirmBookingResult{Booking: replayed, IsReplayed: true}, nil
			}
		}
		return nil, err
	}

	return &ConfirmBookingResult{Booking: view, IsReplayed: false}, nil
}

func (b *bookingCommandsImpl) replay(
	ctx context.Context,
	key uuid.UUID,
	email, requestHash string,
) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := b.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Idempotency().Find(ctx, key, email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		if rec.RequestHash != requestHash {
			return ErrIdempotencyKeyReused
		}
		bk, err := tx.Bookings().FindByID(ctx, rec.BookingID)
		if err != nil {
			return errs.Wrap(err, "completed idempotency key without booking")
		}
		view = queries.ToBookingView(bk, b.clock.Now())
		return nil
	})
	return view, err
}

func (b *bookingCommandsImpl) precheck(
	ctx context.Context,
	pointID uuid.UUID,
	period plan.Period,
	start time.Time,
) (plan.Option, error) {
	var option plan.Option
	err := b.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		pt, err := tx.Points().FindByID(ctx, pointID)
		if err != nil {
			return pointLookupErr(err)
		}
		if pt.IsHidden() {
			return point.ErrPointHidden
		}
		o, ok := pt.Catalog().Find(period)
		if !ok {
			return booking.ErrOptionNotOffered
		}

		existing, err := tx.Bookings().ListByPoint(ctx, pointID)
		if err != nil {
			return err
		}
		now := b.clock.Now()
		if err := availability.Validate(start, period, occupancy.Build(existing, pointID, now), now); err != nil {
			return err
		}
		option = o
		return nil
	})
	return option, err
}

func (b *bookingCommandsImpl) commit(
	ctx context.Context,
	pointID uuid.UUID,
	period plan.Period,
	start time.Time,
	email string,
	key uuid.UUID,
	requestHash string,
) (*queries.BookingView, error) {
	var created *booking.Booking
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pt, err := tx.Points().LockByID(ctx, pointID)
		if err != nil {
			return pointLookupErr(err)
		}

		existing, err := tx.Bookings().ListByPoint(ctx, pointID)
		if err != nil {
			return err
		}
		now := b.clock.Now()
		if err := availability.Validate(start, period, occupancy.Build(existing, pointID, now), now); err != nil {
			slog.Warn("slot taken before commit", "point_id", pointID, "start", start.Format(time.DateOnly), "error", err.Error())
			return errs.Wrap(availability.ErrSlotUnavailable, err.Error())
		}

		bk, err := b.factory.Finalize(pt, period, start, email)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, bk); err != nil {
			return err
		}
		if _, err := tx.Points().BumpVersion(ctx, pt.ID(), pt.Version()); err != nil {
			if infra.IsKind(err, infra.KindVersionConflict) {
				return errs.Wrap(availability.ErrSlotUnavailable, "point changed during commit")
			}
			return err
		}
		err = tx.Idempotency().Save(ctx, shared.IdempotencyRecord{
			Key:         key,
			UserEmail:   email,
			RequestHash: requestHash,
			BookingID:   bk.ID(),
			CreatedAt:   now,
		})
		if err != nil {
			return err
		}
		created = bk
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.ToBookingView(created, b.clock.Now()), nil
}

func pointLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrPointNotFound
	}
	return err
}
