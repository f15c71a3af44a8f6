//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/infra/memstore"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/pkg/config"
	"pontomais/internal/pkg/errs"
	"pontomais/internal/pkg/jwt"
	"pontomais/internal/usecase/commands"
	"pontomais/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminEmail = "admin@pontomais.com"

type authFixture struct {
	store *memstore.Store
	auth  commands.AuthCommands
	users commands.UserCommands
	me    queries.UserQueries
	jwt   *jwt.Service
}

func newAuthFixture() authFixture {
	store := memstore.New(slog.Default())
	clk := clock.NewMockClock(time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC))
	tokens := jwt.NewService(config.JWTConfig{Secret: "test-secret", Duration: time.Hour})
	return authFixture{
		store: store,
		auth:  commands.NewAuthCommands(store, tokens, clk),
		users: commands.NewUserCommands(store, clk, adminEmail),
		me:    queries.NewUserQueries(store),
		jwt:   tokens,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	res, err := f.auth.Register(ctx, reqdto.RegisterRequest{
		Name:        "Ana Souza",
		Email:       "Ana@Example.com",
		Password:    "segredo123",
		ProfileType: "imobiliaria",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.Equal(t, "user", res.User.Role)
	assert.Equal(t, time.Hour, res.ExpiresIn)

	claims, err := f.jwt.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)

	me, err := f.me.Me(ctx, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", me.Name)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := f.auth.Register(ctx, reqdto.RegisterRequest{Email: "ana@example.com"})
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("blank name falls back to the default", func(t *testing.T) {
		res, err := f.auth.Register(ctx, reqdto.RegisterRequest{Email: "sem.nome@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Usuário", res.User.Name)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	_, err := f.auth.Register(ctx, reqdto.RegisterRequest{Email: "com.senha@example.com", Password: "segredo123"})
	require.NoError(t, err)
	_, err = f.auth.Register(ctx, reqdto.RegisterRequest{Email: "sem.senha@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		req   reqdto.LoginRequest
		errIs error
	}{
		{name: "correct password", req: reqdto.LoginRequest{Email: "com.senha@example.com", Password: "segredo123"}},
		{name: "wrong password", req: reqdto.LoginRequest{Email: "com.senha@example.com", Password: "errada123"}, errIs: commands.ErrInvalidCredentials},
		{name: "missing password", req: reqdto.LoginRequest{Email: "com.senha@example.com"}, errIs: commands.ErrInvalidCredentials},
		{name: "email-only account", req: reqdto.LoginRequest{Email: "sem.senha@example.com", Password: "qualquer"}},
		{name: "unknown account", req: reqdto.LoginRequest{Email: "ninguem@example.com"}, errIs: commands.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.auth.Login(ctx, tt.req)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, res.AccessToken)
		})
	}
}

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account", func(t *testing.T) {
		f := newAuthFixture()
		require.NoError(t, f.auth.SeedAdmin(ctx, adminEmail, "admin-password"))
		require.NoError(t, f.auth.SeedAdmin(ctx, adminEmail, "admin-password"), "seeding twice is a no-op")

		res, err := f.auth.Login(ctx, reqdto.LoginRequest{Email: adminEmail, Password: "admin-password"})
		require.NoError(t, err)
		assert.Equal(t, "admin", res.User.Role)

		_, err = f.auth.Login(ctx, reqdto.LoginRequest{Email: adminEmail})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("promotes a registered account", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.auth.Register(ctx, reqdto.RegisterRequest{Email: adminEmail})
		require.NoError(t, err)

		require.NoError(t, f.auth.SeedAdmin(ctx, adminEmail, "admin-password"))
		res, err := f.auth.Login(ctx, reqdto.LoginRequest{Email: adminEmail, Password: "admin-password"})
		require.NoError(t, err)
		assert.Equal(t, "admin", res.User.Role)
		assert.Equal(t, "admin", res.User.ProfileType)
	})

	t.Run("refuses an empty password", func(t *testing.T) {
		f := newAuthFixture()
		err := f.auth.SeedAdmin(ctx, adminEmail, "")
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidInput), "got %v", err)
	})
}

func TestUserCommands(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	require.NoError(t, f.auth.SeedAdmin(ctx, adminEmail, "admin-password"))
	reg, err := f.auth.Register(ctx, reqdto.RegisterRequest{Email: "ana@example.com"})
	require.NoError(t, err)
	admin, err := f.auth.Login(ctx, reqdto.LoginRequest{Email: adminEmail, Password: "admin-password"})
	require.NoError(t, err)

	t.Run("update applies only the given fields", func(t *testing.T) {
		name := "Ana Lima"
		updated, err := f.users.Update(ctx, reg.User.ID, reqdto.UpdateUserRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ana Lima", updated.Name)
		assert.Equal(t, reg.User.ProfileType, updated.ProfileType)
	})

	t.Run("invalid role", func(t *testing.T) {
		role := "root"
		_, err := f.users.Update(ctx, reg.User.ID, reqdto.UpdateUserRequest{Role: &role})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidInput), "got %v", err)
	})

	t.Run("admin account is protected", func(t *testing.T) {
		err := f.users.Delete(ctx, admin.User.ID)
		assert.ErrorIs(t, err, commands.ErrProtectedUser)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, f.users.Delete(ctx, reg.User.ID))
		_, err := f.me.Me(ctx, reg.User.ID)
		assert.ErrorIs(t, err, queries.ErrUserNotFound)

		err = f.users.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}
