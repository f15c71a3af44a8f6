package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

import (
	"context"

	"pontomais/internal/domain/catalog"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	// List is the public catalog; hidden points never appear.
	List(ctx context.Context, f catalog.Filter) ([]*PointView, error)
	Filters(ctx context.Context, state, city string) (*FilterOptionsView, error)
	Get(ctx context.Context, id uuid.UUID) (*PointView, error)
	AdminList(ctx context.Context) ([]*PointView, error)
}

type catalogQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogQueries(uow shared.UnitOfWork) CatalogQueries {
	return &catalogQueriesImpl{uow: uow}
}

func (q *catalogQueriesImpl) List(ctx context.Context, f catalog.Filter) ([]*PointView, error) {
	var views []*PointView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		points, err := tx.Points().Search(ctx, f, false)
		if err != nil {
			return err
		}
		views = ToPointViews(points)
		return nil
	})
	return views, err
}

func (q *catalogQueriesImpl) Filters(ctx context.Context, state, city string) (*FilterOptionsView, error) {
	var view *FilterOptionsView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		points, err := tx.Points().Search(ctx, catalog.Filter{}, false)
		if err != nil {
			return err
		}
		opts := catalog.BuildOptions(points, state, city)
		view = &FilterOptionsView{
			States:        opts.States,
			Cities:        opts.Cities,
			Neighborhoods: opts.Neighborhoods,
			Categories:    opts.Categories,
		}
		return nil
	})
	return view, err
}

func (q *catalogQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*PointView, error) {
	var view *PointView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		pt, err := tx.Points().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrPointNotFound)
		}
		if pt.IsHidden() {
			return ErrPointNotFound
		}
		view = ToPointView(pt)
		return nil
	})
	return view, err
}

func (q *catalogQueriesImpl) AdminList(ctx context.Context) ([]*PointView, error) {
	var views []*PointView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		points, err := tx.Points().Search(ctx, catalog.Filter{}, true)
		if err != nil {
			return err
		}
		views = ToPointViews(points)
		return nil
	})
	return views, err
}
