//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"pontomais/internal/handler/dto/request"
	resdto "pontomais/internal/handler/dto/response"
	"pontomais/internal/pkg/cookie"
	"pontomais/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

// LoginUser returns the session cookie value, which doubles as a Bearer token.
func LoginUser(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "session cookie not set")
	require.NotEmpty(t, accessCookie.Value, "session cookie is empty")

	return accessCookie.Value
}

// RegisterAndLogin creates an account through the API and returns its token.
func RegisterAndLogin(t *testing.T, router http.Handler, req request.RegisterRequest) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register", req, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res resdto.AuthResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

func LogoutUser(t *testing.T, router http.Handler, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
