package api

import (
	"net/http"

	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PointHandler struct {
	catalog      queries.CatalogQueries
	availability queries.AvailabilityQueries
}

func NewPointHandler(catalog queries.CatalogQueries, availability queries.AvailabilityQueries) *PointHandler {
	return &PointHandler{
		catalog:      catalog,
		availability: availability,
	}
}

// @Summary List points
// @Description Public catalog. Hidden points never appear.
// @Tags points
// @Produce json
// @Param state query string false "State (UF)"
// @Param city query string false "City"
// @Param neighborhood query string false "Neighborhood"
// @Param category query []string false "Categories" collectionFormat(multi)
// @Success 200 {array} queries.PointView
// @Router /points [get]
func (h *PointHandler) List(c *gin.Context) {
	var q reqdto.ListPointsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	points, err := h.catalog.List(c.Request.Context(), q.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// @Summary Filter options
// @Description Cities are listed once a state is chosen, neighborhoods once a city is.
// @Tags points
// @Produce json
// @Param state query string false "State (UF)"
// @Param city query string false "City"
// @Success 200 {object} queries.FilterOptionsView
// @Router /points/filters [get]
func (h *PointHandler) Filters(c *gin.Context) {
	var q reqdto.FilterOptionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	opts, err := h.catalog.Filters(c.Request.Context(), q.State, q.City)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// @Summary Get point
// @Tags points
// @Produce json
// @Param id path string true "Point ID"
// @Success 200 {object} queries.PointView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /points/{id} [get]
func (h *PointHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Booking calendar
// @Description Month grid with past, occupied and selectable days for one plan
// @Tags points
// @Produce json
// @Param id path string true "Point ID"
// @Param month query string false "YYYY-MM"
// @Param period query string false "Quinzenal, Mensal or Trimestral"
// @Param selected query string false "DD/MM/YYYY or YYYY-MM-DD"
// @Success 200 {object} queries.CalendarView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /points/{id}/calendar [get]
func (h *PointHandler) Calendar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.availability.Calendar(c.Request.Context(), id, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Check availability
// @Description Validates a start date against a plan. A rejected date is still a 200 with the reason in the body.
// @Tags points
// @Accept json
// @Produce json
// @Param id path string true "Point ID"
// @Param request body reqdto.AvailabilityRequest true "Date and plan"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /points/{id}/availability [post]
func (h *PointHandler) Availability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.availability.Check(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
