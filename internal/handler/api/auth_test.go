//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"pontomais/internal/domain/user"
	"pontomais/internal/handler/api"
	resdto "pontomais/internal/handler/dto/response"
	"pontomais/internal/pkg/config"
	"pontomais/internal/pkg/cookie"
	"pontomais/internal/pkg/errs"
	"pontomais/internal/usecase/commands"
	"pontomais/internal/usecase/queries"
	"pontomais/tests/common/builder"
	"pontomais/tests/common/httptest"
	"pontomais/tests/common/testutil"
	commandsmock "pontomais/tests/mock/commands"
	queriesmock "pontomais/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	callerID     uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())
	s.callerID = uuid.New()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", asCaller(s.callerID, "ana@example.com", user.RoleUser), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func authResult(email string) *commands.AuthResult {
	return &commands.AuthResult{
		User:        &queries.UserView{ID: uuid.New(), Email: email, Role: "user"},
		AccessToken: "test-jwt-token",
		ExpiresIn:   time.Hour,
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

	s.Run("success: 201 with token and session cookie", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(authResult(reqBody.Email), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("test-jwt-token", res.AccessToken)
		s.Equal(int64(3600), res.ExpiresIn)
		s.Equal(reqBody.Email, res.User.Email)

		session := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(session)
		s.Equal("test-jwt-token", session.Value)
		s.True(session.HttpOnly)
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(nil, errs.Wrap(commands.ErrEmailTaken, "register")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "short password", mutate: testutil.Field("password", strings.Repeat("a", 7))},
			{name: "unknown profile type", mutate: testutil.Field("profileType", "fazendeiro")},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 121))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: 200 with token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(authResult(reqBody.Email), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(reqBody.Email, res.User.Email)
		s.NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: 401 for a wrong password", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 401 for an unknown account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 without email", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	session := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(session)
	s.Empty(session.Value)
	s.Negative(session.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the caller", func() {
		view := &queries.UserView{ID: s.callerID, Email: "ana@example.com", Role: "user"}
		s.mockQueries.EXPECT().Me(gomock.Any(), s.callerID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var res queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(s.callerID, res.ID)
	})

	s.Run("error: 404 when the account was deleted", func() {
		s.mockQueries.EXPECT().Me(gomock.Any(), s.callerID).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
