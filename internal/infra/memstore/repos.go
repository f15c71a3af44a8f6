package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/catalog"
	"pontomais/internal/domain/partner"
	"pontomais/internal/domain/point"
	"pontomais/internal/domain/user"
	"pontomais/internal/infra"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

func (tx *memTx) notFound(msg string) error {
	return infra.WrapRepoErr(tx.store.logger, infra.KindNotFound, msg, nil)
}

// Entities are copied on the way in and out; callers mutate what they load.

func copyUser(u *user.User) *user.User {
	return user.ReconstructUser(
		u.ID(), u.Name(), u.Email(), u.Phone(), u.PasswordHash(),
		u.Role(), u.ProfileType(), u.JoinDate(), u.UpdatedAt(),
	)
}

func copyPoint(p *point.Point) *point.Point {
	return point.Reconstruct(p.ID(), p.Details(), p.IsHidden(), p.Version(), p.CreatedAt(), p.UpdatedAt())
}

func copyRequest(r *partner.Request) *partner.Request {
	s := r.Submission()
	s.Features = slices.Clone(s.Features)
	s.Images = slices.Clone(s.Images)
	return partner.Reconstruct(r.ID(), s, r.Status(), r.RequestDate(), r.ResolvedAt(), r.PointID())
}

type userRepo struct{ tx *memTx }

func (r *userRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.tx.t.users {
		if existing.ID() == u.ID() || existing.Email() == u.Email() {
			return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "user already exists", nil)
		}
	}
	r.tx.t.users[u.ID()] = copyUser(u)
	return nil
}

func (r *userRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.tx.t.users[u.ID()]; !ok {
		return r.tx.notFound("user not found")
	}
	r.tx.t.users[u.ID()] = copyUser(u)
	return nil
}

func (r *userRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.t.users[id]; !ok {
		return r.tx.notFound("user not found")
	}
	delete(r.tx.t.users, id)
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.tx.t.users[id]
	if !ok {
		return nil, r.tx.notFound("user not found")
	}
	return copyUser(u), nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.tx.t.users {
		if u.Email().Value() == email {
			return copyUser(u), nil
		}
	}
	return nil, r.tx.notFound("user not found")
}

func (r *userRepo) List(_ context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(r.tx.t.users))
	for _, u := range r.tx.t.users {
		out = append(out, copyUser(u))
	}
	slices.SortFunc(out, func(a, b *user.User) int {
		if c := a.JoinDate().Compare(b.JoinDate()); c != 0 {
			return c
		}
		return strings.Compare(a.Email().Value(), b.Email().Value())
	})
	return out, nil
}

type pointRepo struct{ tx *memTx }

func (r *pointRepo) Create(_ context.Context, p *point.Point) error {
	if _, ok := r.tx.t.points[p.ID()]; ok {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "point already exists", nil)
	}
	now := r.tx.store.now()
	r.tx.t.points[p.ID()] = point.Reconstruct(p.ID(), p.Details(), p.IsHidden(), 1, now, now)
	return nil
}

func (r *pointRepo) Update(_ context.Context, p *point.Point) error {
	stored, ok := r.tx.t.points[p.ID()]
	if !ok {
		return r.tx.notFound("point not found")
	}
	if stored.Version() != p.Version() {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindVersionConflict, "point version changed", nil)
	}
	r.tx.t.points[p.ID()] = point.Reconstruct(
		p.ID(), p.Details(), p.IsHidden(), stored.Version()+1, stored.CreatedAt(), r.tx.store.now(),
	)
	return nil
}

func (r *pointRepo) FindByID(_ context.Context, id uuid.UUID) (*point.Point, error) {
	p, ok := r.tx.t.points[id]
	if !ok {
		return nil, r.tx.notFound("point not found")
	}
	return copyPoint(p), nil
}

// LockByID is FindByID here: write transactions already hold the store lock.
func (r *pointRepo) LockByID(ctx context.Context, id uuid.UUID) (*point.Point, error) {
	return r.FindByID(ctx, id)
}

func (r *pointRepo) Search(_ context.Context, f catalog.Filter, includeHidden bool) ([]*point.Point, error) {
	all := make([]*point.Point, 0, len(r.tx.t.points))
	for _, p := range r.tx.t.points {
		if p.IsHidden() && !includeHidden {
			continue
		}
		all = append(all, copyPoint(p))
	}
	out := catalog.Apply(all, f)
	slices.SortFunc(out, func(a, b *point.Point) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.Title(), b.Title())
	})
	return out, nil
}

func (r *pointRepo) BumpVersion(_ context.Context, id uuid.UUID, expected int64) (int64, error) {
	stored, ok := r.tx.t.points[id]
	if !ok {
		return 0, r.tx.notFound("point not found")
	}
	if stored.Version() != expected {
		return 0, infra.WrapRepoErr(r.tx.store.logger, infra.KindVersionConflict, "point version changed", nil)
	}
	next := expected + 1
	r.tx.t.points[id] = point.Reconstruct(
		id, stored.Details(), stored.IsHidden(), next, stored.CreatedAt(), r.tx.store.now(),
	)
	return next, nil
}

type bookingRepo struct{ tx *memTx }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.tx.t.bookings[b.ID()]; ok {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "booking already exists", nil)
	}
	if _, ok := r.tx.t.points[b.PointID()]; !ok {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindForeignKeyViolated, "booking references unknown point", nil)
	}
	r.tx.t.bookings[b.ID()] = b
	return nil
}

func (r *bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.tx.t.bookings[id]
	if !ok {
		return nil, r.tx.notFound("booking not found")
	}
	return b, nil
}

func (r *bookingRepo) ListByPoint(_ context.Context, pointID uuid.UUID) ([]*booking.Booking, error) {
	out := r.filter(func(b *booking.Booking) bool { return b.PointID() == pointID })
	slices.SortFunc(out, func(a, b *booking.Booking) int {
		return a.StartDate().Compare(b.StartDate())
	})
	return out, nil
}

func (r *bookingRepo) ListByUser(_ context.Context, email string) ([]*booking.Booking, error) {
	out := r.filter(func(b *booking.Booking) bool { return b.UserEmail() == email })
	sortByPurchaseDesc(out)
	return out, nil
}

func (r *bookingRepo) List(_ context.Context) ([]*booking.Booking, error) {
	out := r.filter(func(*booking.Booking) bool { return true })
	sortByPurchaseDesc(out)
	return out, nil
}

func (r *bookingRepo) filter(keep func(*booking.Booking) bool) []*booking.Booking {
	out := make([]*booking.Booking, 0)
	for _, b := range r.tx.t.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func sortByPurchaseDesc(bs []*booking.Booking) {
	slices.SortFunc(bs, func(a, b *booking.Booking) int {
		return b.PurchaseDate().Compare(a.PurchaseDate())
	})
}

type requestRepo struct{ tx *memTx }

func (r *requestRepo) Create(_ context.Context, req *partner.Request) error {
	if _, ok := r.tx.t.requests[req.ID()]; ok {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "partner request already exists", nil)
	}
	r.tx.t.requests[req.ID()] = copyRequest(req)
	return nil
}

func (r *requestRepo) Update(_ context.Context, req *partner.Request) error {
	if _, ok := r.tx.t.requests[req.ID()]; !ok {
		return r.tx.notFound("partner request not found")
	}
	if id := req.PointID(); id != nil {
		if _, ok := r.tx.t.points[*id]; !ok {
			return infra.WrapRepoErr(r.tx.store.logger, infra.KindForeignKeyViolated, "partner request references unknown point", nil)
		}
	}
	r.tx.t.requests[req.ID()] = copyRequest(req)
	return nil
}

func (r *requestRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Request, error) {
	req, ok := r.tx.t.requests[id]
	if !ok {
		return nil, r.tx.notFound("partner request not found")
	}
	return copyRequest(req), nil
}

func (r *requestRepo) LockByID(ctx context.Context, id uuid.UUID) (*partner.Request, error) {
	return r.FindByID(ctx, id)
}

func (r *requestRepo) List(_ context.Context, status *partner.Status) ([]*partner.Request, error) {
	return r.filter(func(req *partner.Request) bool {
		return status == nil || req.Status() == *status
	}), nil
}

func (r *requestRepo) ListByEmail(_ context.Context, email string) ([]*partner.Request, error) {
	return r.filter(func(req *partner.Request) bool { return req.Email() == email }), nil
}

func (r *requestRepo) filter(keep func(*partner.Request) bool) []*partner.Request {
	out := make([]*partner.Request, 0)
	for _, req := range r.tx.t.requests {
		if keep(req) {
			out = append(out, copyRequest(req))
		}
	}
	slices.SortFunc(out, func(a, b *partner.Request) int {
		return b.RequestDate().Compare(a.RequestDate())
	})
	return out
}

type idempotencyRepo struct{ tx *memTx }

func (r *idempotencyRepo) Find(_ context.Context, key uuid.UUID, userEmail string) (*shared.IdempotencyRecord, error) {
	rec, ok := r.tx.t.idempotency[idemKey{key: key, email: userEmail}]
	if !ok {
		return nil, r.tx.notFound("idempotency key not found")
	}
	return &rec, nil
}

func (r *idempotencyRepo) Save(_ context.Context, rec shared.IdempotencyRecord) error {
	k := idemKey{key: rec.Key, email: rec.UserEmail}
	if _, ok := r.tx.t.idempotency[k]; ok {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "idempotency key already used", nil)
	}
	if _, ok := r.tx.t.bookings[rec.BookingID]; !ok {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindForeignKeyViolated, "idempotency key references unknown booking", nil)
	}
	r.tx.t.idempotency[k] = rec
	return nil
}
