package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock

import (
	"context"
	"strings"

	"pontomais/internal/domain/user"
	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/infra"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/pkg/errs"
	"pontomais/internal/usecase/queries"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrProtectedUser = errs.New("the administrator account cannot be deleted")

// UserCommands is admin maintenance of accounts.
type UserCommands interface {
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	adminEmail string
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock, adminEmail string) UserCommands {
	return &userCommandsImpl{
		uow:        uow,
		clock:      clk,
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
	}
}

func (u *userCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error) {
	p, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	var updated *user.User
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		usr, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return userLookupErr(err)
		}
		if err := usr.Apply(p, u.clock.Now()); err != nil {
			return err
		}
		if err := tx.Users().Update(ctx, usr); err != nil {
			return err
		}
		updated = usr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.ToUserView(updated), nil
}

func (u *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		usr, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return userLookupErr(err)
		}
		if usr.Email().Value() == u.adminEmail {
			return ErrProtectedUser
		}
		return tx.Users().Delete(ctx, id)
	})
}

func userLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrUserNotFound
	}
	return err
}
