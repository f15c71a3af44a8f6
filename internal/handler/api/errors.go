package api

import (
	"errors"
	"log/slog"
	"net/http"

	"pontomais/internal/domain/availability"
	"pontomais/internal/domain/booking"
	"pontomais/internal/domain/partner"
	"pontomais/internal/domain/plan"
	"pontomais/internal/domain/point"
	"pontomais/internal/domain/user"
	"pontomais/internal/handler/httperr"
	"pontomais/internal/handler/middleware"
	"pontomais/internal/pkg/errs"
	"pontomais/internal/usecase/commands"
	"pontomais/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidBody           = errors.New("invalid request body")
	errInvalidID             = errors.New("invalid id")
	errIdempotencyKeyMissing = errors.New("idempotency key required")
	errIdempotencyKeyFormat  = errors.New("invalid idempotency key format")
	errNoCaller              = errors.New("caller missing from context")
)

type errorRule struct {
	targets []error
	status  int
	message string
}

// first match wins, so SLOT_UNAVAILABLE must come before the generic availability rule
var errorRules = []errorRule{
	{[]error{commands.ErrInvalidCredentials}, http.StatusUnauthorized, "Invalid email or password"},
	{[]error{queries.ErrBookingAccess, commands.ErrNotRequestOwner}, http.StatusForbidden, "Access denied"},
	{[]error{commands.ErrProtectedUser}, http.StatusForbidden, "The administrator account cannot be deleted"},
	{[]error{commands.ErrPointNotFound, queries.ErrPointNotFound, point.ErrPointHidden}, http.StatusNotFound, "Point not found"},
	{[]error{queries.ErrBookingNotFound}, http.StatusNotFound, "Booking not found"},
	{[]error{commands.ErrRequestNotFound}, http.StatusNotFound, "Partner request not found"},
	{[]error{commands.ErrUserNotFound, queries.ErrUserNotFound}, http.StatusNotFound, "User not found"},
	{[]error{commands.ErrEmailTaken}, http.StatusConflict, "Email already registered"},
	{[]error{partner.ErrRequestAlreadyResolved}, http.StatusConflict, "Request already resolved"},
	{[]error{commands.ErrIdempotencyKeyReused}, http.StatusConflict, "Idempotency key reused with a different request"},
	{[]error{availability.ErrSlotUnavailable}, http.StatusConflict, "Slot no longer available"},
	{[]error{commands.ErrPaymentFailed}, http.StatusPaymentRequired, "Payment failed"},
	{
		[]error{
			commands.ErrInvalidInput,
			plan.ErrInvalidPeriod, plan.ErrNonPositivePrice, plan.ErrDuplicatePeriod, plan.ErrPeriodNotOffered,
			booking.ErrOptionNotOffered,
			partner.ErrMissingField, partner.ErrPriceBelowMinimum, partner.ErrInvalidStatus,
			point.ErrEmptyTitle, point.ErrEmptyCity, point.ErrInvalidFootTraffic, point.ErrNoRentalOptions,
			user.ErrInvalidEmail, user.ErrInvalidRole, user.ErrInvalidProfileType, user.ErrPasswordTooWeak,
		},
		http.StatusBadRequest, "Invalid request data",
	},
}

// respondError writes the envelope for err. Availability failures carry their code
// in detail; anything unmatched is a 500.
func respondError(c *gin.Context, err error) {
	for _, r := range errorRules {
		for _, target := range r.targets {
			if errs.Is(err, target) {
				httperr.AbortWithError(c, r.status, err, r.message, detailFor(err, r.status))
				return
			}
		}
	}

	if code := availability.CodeOf(err); code != "" {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), gin.H{"code": code})
		return
	}

	slog.ErrorContext(c.Request.Context(), "unhandled error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"request_id", middleware.GetRequestID(c))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func detailFor(err error, status int) any {
	if code := availability.CodeOf(err); code != "" {
		return gin.H{"code": code}
	}
	if status == http.StatusBadRequest {
		return gin.H{"reason": err.Error()}
	}
	return nil
}

func bindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(errInvalidBody, err), "Invalid request format", gin.H{"reason": err.Error()})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// caller reads the authenticated identity set by the auth middleware.
func caller(c *gin.Context) (uuid.UUID, string, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoCaller, "Internal server error", nil)
		return uuid.Nil, "", false
	}
	email, _ := middleware.GetUserEmail(c)
	return id, email, true
}
