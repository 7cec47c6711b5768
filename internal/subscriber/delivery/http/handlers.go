package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/pkg/response"
)

// List godoc
// @Summary     List subscribers
// @Tags        Subscribers
// @Produce     json
// @Param       page     query int    false "Page (default 1)"
// @Param       per_page query int    false "Page size (default 10)"
// @Param       q        query string false "Search term"
// @Success     200 {object} listResp
// @Router      /api/v1/subscribers [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch subscribers. Please try again."))
		return
	}

	response.OK(c, newListResp(output))
}

// Create godoc
// @Summary     Create a subscriber
// @Description Omitted start_date means today; omitted end_date is start_date plus the plan duration.
// @Tags        Subscribers
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Subscription data"
// @Success     201 {object} model.Subscriber
// @Failure     422 {object} response.Resp "Validation errors"
// @Router      /api/v1/subscribers [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, "Failed to create subscriber. Please try again."))
		return
	}

	response.Created(c, s)
}

// Detail godoc
// @Summary     Get a subscriber
// @Tags        Subscribers
// @Produce     json
// @Param       id path int true "Subscriber ID"
// @Success     200 {object} model.Subscriber
// @Router      /api/v1/subscribers/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch subscriber"))
		return
	}

	response.OK(c, s)
}

// Update godoc
// @Summary     Update a subscriber
// @Tags        Subscribers
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Subscriber ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} model.Subscriber
// @Router      /api/v1/subscribers/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, "Failed to update subscriber. Please try again."))
		return
	}

	response.OK(c, s)
}

// Delete godoc
// @Summary     Delete a subscriber
// @Tags        Subscribers
// @Produce     json
// @Param       id path int true "Subscriber ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/subscribers/{id} [DELETE]
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
		response.Error(c, h.mapError(err, "Failed to delete subscriber. Please try again."))
		return
	}

	response.OK(c, nil)
}

// ChangePlan godoc
// @Summary     Move a subscriber to another plan
// @Tags        Subscribers
// @Accept      json
// @Produce     json
// @Param       id   path int           true "Subscriber ID"
// @Param       body body changePlanReq true "New plan and dates"
// @Success     200 {object} model.Subscriber
// @Router      /api/v1/subscribers/{id}/plan [PUT]
func (h *handler) ChangePlan(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processChangePlanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.ChangePlan(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ChangePlan: %v", err)
		response.Error(c, h.mapError(err, "Failed to change plan. Please try again."))
		return
	}

	response.OK(c, s)
}
