package api

import (
	"net/http"

	reqdto "pontomais/internal/handler/dto/request"
	resdto "pontomais/internal/handler/dto/response"
	"pontomais/internal/handler/httperr"
	"pontomais/internal/handler/middleware"
	"pontomais/internal/usecase/commands"
	"pontomais/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Confirm booking
// @Description Charges the plan price and books the range. Retrying with the same Idempotency-Key returns the original booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "UUID identifying this purchase attempt"
// @Param request body reqdto.ConfirmBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingConfirmation
// @Success 200 {object} resdto.BookingConfirmation "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	_, email, ok := caller(c)
	if !ok {
		return
	}

	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.commands.Confirm(c.Request.Context(), req, email, key)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.BookingConfirmation{BookingView: result.Booking, Replayed: result.IsReplayed})
}

// @Summary My bookings
// @Description Newest purchase first, with the status computed for today
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BookingView
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	_, email, ok := caller(c)
	if !ok {
		return
	}

	bookings, err := h.queries.ListMine(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// @Summary Get booking
// @Description Receipt, visible to its buyer and to admins
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	_, email, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.queries.Get(c.Request.Context(), id, email, middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func idempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errIdempotencyKeyMissing, "Idempotency-Key header is required", nil)
		return uuid.Nil, false
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errIdempotencyKeyFormat, "Idempotency-Key must be a UUID", nil)
		return uuid.Nil, false
	}
	return key, true
}
