package api

import (
	"net/http"

	reqdto "pontomais/internal/handler/dto/request"
	resdto "pontomais/internal/handler/dto/response"
	"pontomais/internal/pkg/config"
	"pontomais/internal/pkg/cookie"
	"pontomais/internal/pkg/errs"
	"pontomais/internal/usecase/commands"
	"pontomais/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Register
// @Description Create an account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusCreated, resdto.NewAuthResponse(result.AccessToken, result.ExpiresIn, result.User))
}

// @Summary User login
// @Description Login with email, and password when the account has one
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		// unknown accounts look the same as a wrong password
		if errs.Is(err, commands.ErrUserNotFound) {
			err = errs.Mark(err, commands.ErrInvalidCredentials)
		}
		respondError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.NewAuthResponse(result.AccessToken, result.ExpiresIn, result.User))
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; bearer clients drop theirs
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.UserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	u, err := h.userQueries.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
