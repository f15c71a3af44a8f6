package commands

//go:generate mockgen -source=point.go -destination=../../../tests/mock/commands/point.go -package=commandsmock

import (
	"context"

	"pontomais/internal/domain/point"
	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/pkg/errs"
	"pontomais/internal/usecase/queries"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

// PointCommands is the admin maintenance surface for listings.
type PointCommands interface {
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdatePointRequest) (*queries.PointView, error)
	Hide(ctx context.Context, id uuid.UUID) (*queries.PointView, error)
	Unhide(ctx context.Context, id uuid.UUID) (*queries.PointView, error)
}

type pointCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPointCommands(uow shared.UnitOfWork) PointCommands {
	return &pointCommandsImpl{uow: uow}
}

func (p *pointCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdatePointRequest) (*queries.PointView, error) {
	details, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	return p.mutate(ctx, id, func(pt *point.Point) error {
		return pt.Update(details)
	})
}

func (p *pointCommandsImpl) Hide(ctx context.Context, id uuid.UUID) (*queries.PointView, error) {
	return p.mutate(ctx, id, func(pt *point.Point) error {
		pt.Hide()
		return nil
	})
}

func (p *pointCommandsImpl) Unhide(ctx context.Context, id uuid.UUID) (*queries.PointView, error) {
	return p.mutate(ctx, id, func(pt *point.Point) error {
		pt.Unhide()
		return nil
	})
}

// mutate applies fn under the row lock and returns the stored listing with its new version.
func (p *pointCommandsImpl) mutate(ctx context.Context, id uuid.UUID, fn func(*point.Point) error) (*queries.PointView, error) {
	var view *queries.PointView
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pt, err := tx.Points().LockByID(ctx, id)
		if err != nil {
			return pointLookupErr(err)
		}
		if err := fn(pt); err != nil {
			return err
		}
		if err := tx.Points().Update(ctx, pt); err != nil {
			return err
		}
		stored, err := tx.Points().FindByID(ctx, id)
		if err != nil {
			return err
		}
		view = queries.ToPointView(stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
