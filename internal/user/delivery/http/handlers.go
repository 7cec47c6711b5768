package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/pkg/response"
)

// List godoc
// @Summary     List users
// @Description Returns one page of users, optionally narrowed by a search term.
// @Tags        Users
// @Produce     json
// @Param       page     query int    false "Page (default 1)"
// @Param       per_page query int    false "Page size (default 10)"
// @Param       q        query string false "Search term"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/users [GET]
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
		response.Error(c, h.mapError(err, "Failed to fetch users. Please try again."))
		return
	}

	response.OK(c, newListResp(output))
}

// Create godoc
// @Summary     Create a user
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User data"
// @Success     201 {object} model.User
// @Failure     422 {object} response.Resp "Validation errors"
// @Router      /api/v1/users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, "Failed to create user"))
		return
	}

	response.Created(c, u)
}

// Detail godoc
// @Summary     Get a user
// @Tags        Users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} model.User
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch user"))
		return
	}

	response.OK(c, u)
}

// Update godoc
// @Summary     Update a user
// @Description Partial update. Status is active or inactive.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       id   path int       true "User ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} model.User
// @Failure     422 {object} response.Resp "Validation errors"
// @Router      /api/v1/users/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, "Failed to update user"))
		return
	}

	response.OK(c, u)
}

// Delete godoc
// @Summary     Delete a user
// @Tags        Users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/users/{id} [DELETE]
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
		response.Error(c, h.mapError(err, "Failed to delete user"))
		return
	}

	response.OK(c, nil)
}

// Search godoc
// @Summary     Search users
// @Description Used by pickers on the booking, subscriber and transaction forms.
// @Tags        Users
// @Produce     json
// @Param       q query string true "Search term"
// @Success     200 {array} model.User
// @Router      /api/v1/users/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	users, err := h.uc.Search(ctx, sc, c.Query("q"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err, "Failed to search users"))
		return
	}

	response.OK(c, users)
}
