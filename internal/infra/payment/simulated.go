// Package payment holds the stand-in payment gateway. No money moves.
package payment

import (
	"context"
	"log/slog"
	"time"

	"pontomais/internal/pkg/errs"
	"pontomais/internal/usecase/shared"
)

var ErrDeclined = errs.New("payment declined")

type SimulatedGateway struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewSimulatedGateway(delay time.Duration, logger *slog.Logger) *SimulatedGateway {
	return &SimulatedGateway{delay: delay, logger: logger}
}

var _ shared.PaymentGateway = (*SimulatedGateway)(nil)

// Charge waits for the configured delay and approves any positive amount.
func (g *SimulatedGateway) Charge(ctx context.Context, req shared.PaymentRequest) error {
	if !req.Amount.IsPositive() {
		return errs.Wrapf(ErrDeclined, "amount %s", req.Amount.String())
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return errs.Wrap(ctx.Err(), "payment interrupted")
		case <-timer.C:
		}
	}

	g.logger.InfoContext(ctx, "payment approved",
		slog.String("point_id", req.PointID.String()),
		slog.String("user_email", req.UserEmail),
		slog.String("amount", req.Amount.StringFixed(2)),
	)
	return nil
}
