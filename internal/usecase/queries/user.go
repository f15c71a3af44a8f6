package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"

	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserQueries interface {
	Me(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{uow: uow}
}

func (q *userQueriesImpl) Me(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	var view *UserView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		view = ToUserView(u)
		return nil
	})
	return view, err
}
