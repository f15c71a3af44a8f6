package commands

//go:generate mockgen -source=partner.go -destination=../../../tests/mock/commands/partner.go -package=commandsmock

import (
	"context"
	"strings"

	"pontomais/internal/domain/partner"
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
	ErrRequestNotFound = errs.New("partner request not found")
	ErrNotRequestOwner = errs.New("partner request belongs to another account")
)

type PartnerCommands interface {
	Submit(ctx context.Context, req reqdto.SubmitPartnerRequest) (*queries.PartnerRequestView, error)
	// Edit changes the caller's own request and propagates to the linked point once approved.
	Edit(ctx context.Context, id uuid.UUID, req reqdto.EditPartnerRequest, ownerEmail string) (*queries.PartnerRequestView, error)
	Approve(ctx context.Context, id uuid.UUID) (*queries.PartnerRequestView, error)
	Reject(ctx context.Context, id uuid.UUID) (*queries.PartnerRequestView, error)
}

type partnerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPartnerCommands(uow shared.UnitOfWork, clk clock.Clock) PartnerCommands {
	return &partnerCommandsImpl{uow: uow, clock: clk}
}

func (p *partnerCommandsImpl) Submit(ctx context.Context, req reqdto.SubmitPartnerRequest) (*queries.PartnerRequestView, error) {
	r, err := partner.Submit(req.ToDomain(), p.clock.Now())
	if err != nil {
		return nil, err
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PartnerRequests().Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return queries.ToPartnerRequestView(r), nil
}

func (p *partnerCommandsImpl) Edit(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.EditPartnerRequest,
	ownerEmail string,
) (*queries.PartnerRequestView, error) {
	var edited *partner.Request
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.PartnerRequests().LockByID(ctx, id)
		if err != nil {
			return requestLookupErr(err)
		}
		if !strings.EqualFold(r.Email(), strings.TrimSpace(ownerEmail)) {
			return ErrNotRequestOwner
		}

		listing, err := r.ApplyEdit(req.ToDomain())
		if err != nil {
			return err
		}
		if err := tx.PartnerRequests().Update(ctx, r); err != nil {
			return err
		}

		if listing != nil {
			pt, err := tx.Points().LockByID(ctx, *r.PointID())
			if err != nil {
				return pointLookupErr(err)
			}
			if err := pt.ApplyListingEdit(*listing); err != nil {
				return err
			}
			if err := tx.Points().Update(ctx, pt); err != nil {
				return err
			}
		}
		edited = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.ToPartnerRequestView(edited), nil
}

func (p *partnerCommandsImpl) Approve(ctx context.Context, id uuid.UUID) (*queries.PartnerRequestView, error) {
	var approved *partner.Request
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.PartnerRequests().LockByID(ctx, id)
		if err != nil {
			return requestLookupErr(err)
		}

		details, err := r.Approve(p.clock.Now())
		if err != nil {
			return err
		}
		pt, err := point.New(details)
		if err != nil {
			return err
		}
		if err := tx.Points().Create(ctx, pt); err != nil {
			return err
		}

		r.LinkPoint(pt.ID())
		if err := tx.PartnerRequests().Update(ctx, r); err != nil {
			return err
		}
		approved = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.ToPartnerRequestView(approved), nil
}

func (p *partnerCommandsImpl) Reject(ctx context.Context, id uuid.UUID) (*queries.PartnerRequestView, error) {
	var rejected *partner.Request
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.PartnerRequests().LockByID(ctx, id)
		if err != nil {
			return requestLookupErr(err)
		}
		if err := r.Reject(p.clock.Now()); err != nil {
			return err
		}
		if err := tx.PartnerRequests().Update(ctx, r); err != nil {
			return err
		}
		rejected = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.ToPartnerRequestView(rejected), nil
}

func requestLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrRequestNotFound
	}
	return err
}
