package api

import (
	"net/http"

	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/usecase/commands"
	"pontomais/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	commands commands.PartnerCommands
	queries  queries.PartnerQueries
}

func NewPartnerHandler(cmds commands.PartnerCommands, qs queries.PartnerQueries) *PartnerHandler {
	return &PartnerHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Submit partner request
// @Description Public registration form for establishments. Prices must meet the plan minimums.
// @Tags partner
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitPartnerRequest true "Partner request"
// @Success 201 {object} queries.PartnerRequestView
// @Failure 400 {object} httperr.Response
// @Router /partner-requests [post]
func (h *PartnerHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	r, err := h.commands.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// @Summary My partner requests
// @Tags partner
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PartnerRequestView
// @Router /partner/requests [get]
func (h *PartnerHandler) ListMine(c *gin.Context) {
	_, email, ok := caller(c)
	if !ok {
		return
	}

	rs, err := h.queries.ListMine(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

// @Summary Edit partner request
// @Description Once approved, the changes are carried over to the linked point.
// @Tags partner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.EditPartnerRequest true "Changes"
// @Success 200 {object} queries.PartnerRequestView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /partner/requests/{id} [put]
func (h *PartnerHandler) Edit(c *gin.Context) {
	_, email, ok := caller(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.EditPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	r, err := h.commands.Edit(c.Request.Context(), id, req, email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Partner dashboard
// @Tags partner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.PartnerDashboardView
// @Router /partner/dashboard [get]
func (h *PartnerHandler) Dashboard(c *gin.Context) {
	_, email, ok := caller(c)
	if !ok {
		return
	}

	d, err := h.queries.Dashboard(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
