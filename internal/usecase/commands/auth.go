package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"pontomais/internal/domain/user"
	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/infra"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/pkg/errs"
	"pontomais/internal/pkg/password"
	"pontomais/internal/usecase/queries"
	"pontomais/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidInput       = errs.New("invalid input")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email user.Email, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type AuthResult struct {
	User        *queries.UserView
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	// SeedAdmin makes sure the administrator account exists with role admin and the given password.
	SeedAdmin(ctx context.Context, email, pw string) error
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	hash, err := password.HashOptional(reg.Password.Value())
	if err != nil {
		return nil, err
	}

	var created *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, findErr := tx.Users().FindByEmail(ctx, reg.Email.Value())
		switch {
		case findErr == nil:
			return ErrEmailTaken
		case !infra.IsKind(findErr, infra.KindNotFound):
			return findErr
		}

		u := user.NewUser(reg.Email, reg.Name, reg.Phone, reg.ProfileType, hash, a.clock.Now())
		if createErr := tx.Users().Create(ctx, u); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return createErr
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issue(created)
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	email, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	var found *user.User
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, findErr := tx.Users().FindByEmail(ctx, email.Value())
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return findErr
		}
		found = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	// accounts registered without a password sign in by email alone, admins never do
	if found.IsAdmin() && !found.HasPassword() {
		return nil, ErrInvalidCredentials
	}
	if found.HasPassword() {
		if verifyErr := password.Verify(found.PasswordHash(), req.Password); verifyErr != nil {
			return nil, ErrInvalidCredentials
		}
	}

	return a.issue(found)
}

func (a *authCommandsImpl) SeedAdmin(ctx context.Context, email, pw string) error {
	adminEmail, err := user.NewEmail(email)
	if err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}
	hash, err := password.Hash(pw)
	if err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, findErr := tx.Users().FindByEmail(ctx, adminEmail.Value())
		if findErr == nil {
			if existing.IsAdmin() && existing.HasPassword() && password.Verify(existing.PasswordHash(), pw) == nil {
				return nil
			}
			if !existing.IsAdmin() {
				slog.Warn("promoting configured admin account", "email", adminEmail.Value())
			}
			existing.Promote()
			existing.SetPasswordHash(hash, a.clock.Now())
			return tx.Users().Update(ctx, existing)
		}
		if !infra.IsKind(findErr, infra.KindNotFound) {
			return findErr
		}

		admin := user.NewUser(adminEmail, "Administrador", "", user.ProfileAdmin, hash, a.clock.Now())
		admin.Promote()
		return tx.Users().Create(ctx, admin)
	})
}

func (a *authCommandsImpl) issue(u *user.User) (*AuthResult, error) {
	token, err := a.tokens.GenerateToken(u.ID(), u.Email(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		User:        queries.ToUserView(u),
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}
