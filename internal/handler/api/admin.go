package api

import (
	"net/http"

	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/usecase/commands"
	"pontomais/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	partnerCommands commands.PartnerCommands
	pointCommands   commands.PointCommands
	userCommands    commands.UserCommands
	partnerQueries  queries.PartnerQueries
	catalogQueries  queries.CatalogQueries
	adminQueries    queries.AdminQueries
}

func NewAdminHandler(
	partnerCommands commands.PartnerCommands,
	pointCommands commands.PointCommands,
	userCommands commands.UserCommands,
	partnerQueries queries.PartnerQueries,
	catalogQueries queries.CatalogQueries,
	adminQueries queries.AdminQueries,
) *AdminHandler {
	return &AdminHandler{
		partnerCommands: partnerCommands,
		pointCommands:   pointCommands,
		userCommands:    userCommands,
		partnerQueries:  partnerQueries,
		catalogQueries:  catalogQueries,
		adminQueries:    adminQueries,
	}
}

// @Summary List partner requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} queries.PartnerRequestView
// @Router /admin/requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	var q reqdto.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	rs, err := h.partnerQueries.ListForAdmin(c.Request.Context(), q.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

// @Summary Approve partner request
// @Description Creates the point. A request is approved at most once.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} queries.PartnerRequestView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/requests/{id}/approve [post]
func (h *AdminHandler) ApproveRequest(c *gin.Context) {
	h.withID(c, func(id uuid.UUID) (any, error) {
		return h.partnerCommands.Approve(c.Request.Context(), id)
	})
}

// @Summary Reject partner request
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} queries.PartnerRequestView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/requests/{id}/reject [post]
func (h *AdminHandler) RejectRequest(c *gin.Context) {
	h.withID(c, func(id uuid.UUID) (any, error) {
		return h.partnerCommands.Reject(c.Request.Context(), id)
	})
}

// @Summary List all points
// @Description Includes hidden points
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PointView
// @Router /admin/points [get]
func (h *AdminHandler) ListPoints(c *gin.Context) {
	ps, err := h.catalogQueries.AdminList(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary Edit point
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Point ID"
// @Param request body reqdto.UpdatePointRequest true "Point fields"
// @Success 200 {object} queries.PointView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/points/{id} [put]
func (h *AdminHandler) UpdatePoint(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.pointCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Hide point
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Point ID"
// @Success 200 {object} queries.PointView
// @Router /admin/points/{id}/hide [post]
func (h *AdminHandler) HidePoint(c *gin.Context) {
	h.withID(c, func(id uuid.UUID) (any, error) {
		return h.pointCommands.Hide(c.Request.Context(), id)
	})
}

// @Summary Unhide point
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Point ID"
// @Success 200 {object} queries.PointView
// @Router /admin/points/{id}/unhide [post]
func (h *AdminHandler) UnhidePoint(c *gin.Context) {
	h.withID(c, func(id uuid.UUID) (any, error) {
		return h.pointCommands.Unhide(c.Request.Context(), id)
	})
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.UserView
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	us, err := h.adminQueries.Users(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, us)
}

// @Summary Edit user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.userCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary Delete user
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userCommands.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Financials
// @Description Revenue split plus per-user and per-point metrics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.FinancialsView
// @Router /admin/financials [get]
func (h *AdminHandler) Financials(c *gin.Context) {
	f, err := h.adminQueries.Financials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// @Summary Export
// @Description The four collections as one JSON document
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.ExportDocument
// @Router /admin/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	doc, err := h.adminQueries.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="pontomais-export.json"`)
	c.JSON(http.StatusOK, doc)
}

func (h *AdminHandler) withID(c *gin.Context, fn func(uuid.UUID) (any, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	out, err := fn(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
