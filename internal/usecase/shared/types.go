package shared

import (
	"context"
	"time"

	"pontomais/internal/domain/occupancy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserEmail   string
	RequestHash string
	BookingID   uuid.UUID
	CreatedAt   time.Time
}

// OccupancyCache memoizes occupied-date indexes on the read path.
// Entries are keyed by point version and day, so a booking commit or a new day
// never serves a stale index. The commit path never reads it.
type OccupancyCache interface {
	Get(ctx context.Context, pointID uuid.UUID, version int64, day time.Time) (occupancy.Index, bool)
	Set(ctx context.Context, pointID uuid.UUID, version int64, day time.Time, ix occupancy.Index)
}

type PaymentRequest struct {
	PointID   uuid.UUID
	UserEmail string
	Amount    decimal.Decimal
}

type PaymentGateway interface {
	Charge(ctx context.Context, req PaymentRequest) error
}
