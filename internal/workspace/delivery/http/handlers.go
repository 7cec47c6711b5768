package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/workspace"
	"workspace-admin/pkg/response"
)

// List godoc
// @Summary     List workspaces
// @Tags        Workspaces
// @Produce     json
// @Param       q query string false "Filter on name or location"
// @Success     200 {object} listResp
// @Router      /api/v1/workspaces [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	spaces, err := h.uc.List(ctx, sc, workspace.ListInput{Query: c.Query("q")})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch workspaces. Please try again."))
		return
	}

	response.OK(c, newListResp(spaces))
}

// Create godoc
// @Summary     Create a workspace
// @Tags        Workspaces
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Workspace data"
// @Success     201 {object} model.Workspace
// @Failure     422 {object} response.Resp "Validation errors"
// @Router      /api/v1/workspaces [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ws, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, "Failed to create workspace. Please try again."))
		return
	}

	response.Created(c, ws)
}

// Detail godoc
// @Summary     Get a workspace
// @Tags        Workspaces
// @Produce     json
// @Param       id path int true "Workspace ID"
// @Success     200 {object} model.Workspace
// @Router      /api/v1/workspaces/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ws, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch workspace"))
		return
	}

	response.OK(c, ws)
}

// Update godoc
// @Summary     Update a workspace
// @Tags        Workspaces
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Workspace ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} model.Workspace
// @Router      /api/v1/workspaces/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ws, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, "Failed to update workspace. Please try again."))
		return
	}

	response.OK(c, ws)
}

// Delete godoc
// @Summary     Delete a workspace
// @Tags        Workspaces
// @Produce     json
// @Param       id path int true "Workspace ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/workspaces/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err, "Failed to delete workspace. Please try again."))
		return
	}

	response.OK(c, nil)
}
