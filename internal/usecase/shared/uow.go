package shared

import (
	"context"

	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/catalog"
	"pontomais/internal/domain/partner"
	"pontomais/internal/domain/point"
	"pontomais/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Points() PointRepository
	Bookings() BookingRepository
	PartnerRequests() PartnerRequestRepository
	Idempotency() IdempotencyRepository
}

// Lookups by id or key report a missing row as an infra.RepositoryError of kind NOT_FOUND.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
}

type PointRepository interface {
	Create(ctx context.Context, p *point.Point) error
	// Update writes p only if the stored version still equals p.Version(), then bumps it.
	Update(ctx context.Context, p *point.Point) error
	FindByID(ctx context.Context, id uuid.UUID) (*point.Point, error)
	// LockByID reads the row FOR UPDATE; booking commits for one point serialize on it.
	LockByID(ctx context.Context, id uuid.UUID) (*point.Point, error)
	Search(ctx context.Context, f catalog.Filter, includeHidden bool) ([]*point.Point, error)
	// BumpVersion fails with VERSION_CONFLICT when the stored version moved past expected.
	BumpVersion(ctx context.Context, id uuid.UUID, expected int64) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByPoint(ctx context.Context, pointID uuid.UUID) ([]*booking.Booking, error)
	ListByUser(ctx context.Context, email string) ([]*booking.Booking, error)
	List(ctx context.Context) ([]*booking.Booking, error)
}

type PartnerRequestRepository interface {
	Create(ctx context.Context, r *partner.Request) error
	Update(ctx context.Context, r *partner.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*partner.Request, error)
	LockByID(ctx context.Context, id uuid.UUID) (*partner.Request, error)
	// List returns every request when status is nil.
	List(ctx context.Context, status *partner.Status) ([]*partner.Request, error)
	ListByEmail(ctx context.Context, email string) ([]*partner.Request, error)
}

type IdempotencyRepository interface {
	Find(ctx context.Context, key uuid.UUID, userEmail string) (*IdempotencyRecord, error)
	// Save fails with DUPLICATE_KEY when a concurrent request claimed the key first.
	Save(ctx context.Context, rec IdempotencyRecord) error
}
