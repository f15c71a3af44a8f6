//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"pontomais/internal/domain/user"
	"pontomais/internal/pkg/config"
	"pontomais/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string, role user.Role) string {
	t.Helper()
	addr, err := user.NewEmail(email)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg).GenerateToken(userID, addr, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string, role user.Role) string {
	t.Helper()
	cfg := h.cfg
	cfg.Duration = time.Millisecond
	addr, err := user.NewEmail(email)
	require.NoError(t, err)
	token, err := jwt.NewService(cfg).GenerateToken(userID, addr, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
