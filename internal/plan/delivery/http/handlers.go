package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/plan"
	"workspace-admin/pkg/response"
)

// List godoc
// @Summary     List plans
// @Tags        Plans
// @Produce     json
// @Param       q query string false "Filter by name"
// @Success     200 {object} listResp
// @Router      /api/v1/plans [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	plans, err := h.uc.List(ctx, sc, plan.ListInput{Query: c.Query("q")})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch plans"))
		return
	}

	response.OK(c, listResp{Plans: plans})
}

// Create godoc
// @Summary     Create a plan
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Plan data"
// @Success     201 {object} model.Plan
// @Failure     422 {object} response.Resp "Validation errors"
// @Router      /api/v1/plans [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, "Failed to create plan"))
		return
	}

	response.Created(c, p)
}

// Update godoc
// @Summary     Update a plan
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Plan ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} model.Plan
// @Router      /api/v1/plans/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, "Failed to update plan"))
		return
	}

	response.OK(c, p)
}

// Delete godoc
// @Summary     Delete a plan
// @Tags        Plans
// @Produce     json
// @Param       id path int true "Plan ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/plans/{id} [DELETE]
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
		response.Error(c, h.mapError(err, "Failed to delete plan"))
		return
	}

	response.OK(c, nil)
}
