package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/booking"
	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/pkg/response"
)

// List godoc
// @Summary     List bookings
// @Description Non-admin users only see their own bookings.
// @Tags        Bookings
// @Produce     json
// @Param       user_id      query int    false "User ID (admin only)"
// @Param       workspace_id query int    false "Workspace ID"
// @Param       status       query string false "pending, confirmed or cancelled"
// @Param       from         query string false "From date"
// @Param       to           query string false "To date"
// @Param       page         query int    false "Page (default 1)"
// @Param       per_page     query int    false "Page size (default 10)"
// @Success     200 {object} listResp
// @Router      /api/v1/bookings [GET]
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
		response.Error(c, h.mapError(err, "Failed to fetch bookings. Please try again."))
		return
	}

	response.OK(c, newListResp(output))
}

// Create godoc
// @Summary     Create a booking
// @Description Checks availability first. A positive deposit is recorded as a payment before the booking is created.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Booking data"
// @Success     201 {object} model.Booking
// @Failure     409 {object} response.Resp "Slot not available"
// @Router      /api/v1/bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, "Failed to create booking"))
		return
	}

	response.Created(c, b)
}

// Detail godoc
// @Summary     Get a booking
// @Tags        Bookings
// @Produce     json
// @Param       id path int true "Booking ID"
// @Success     200 {object} model.Booking
// @Router      /api/v1/bookings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch booking"))
		return
	}

	response.OK(c, b)
}

// Update godoc
// @Summary     Update a booking
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Booking ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} model.Booking
// @Router      /api/v1/bookings/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, "Failed to update booking. Please try again."))
		return
	}

	response.OK(c, b)
}

// Delete godoc
// @Summary     Delete a booking
// @Tags        Bookings
// @Produce     json
// @Param       id path int true "Booking ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/bookings/{id} [DELETE]
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
		response.Error(c, h.mapError(err, "Failed to delete booking. Please try again."))
		return
	}

	response.OK(c, nil)
}

// UpdateStatus godoc
// @Summary     Change the status of a booking
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Booking ID"
// @Param       body body statusReq true "New status"
// @Success     200 {object} model.Booking
// @Router      /api/v1/bookings/{id}/status [PUT]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	id, req, err := h.processStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.UpdateStatus(ctx, sc, id, model.BookingStatus(req.Status))
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err, "Failed to update booking status. Please try again."))
		return
	}

	response.OK(c, b)
}

// Availability godoc
// @Summary     Check whether a workspace is free
// @Tags        Bookings
// @Produce     json
// @Param       workspace_id query int    true  "Workspace ID"
// @Param       date         query string false "Date (with slot)"
// @Param       slot         query string false "Slot label, e.g. 09:00-10:00"
// @Param       start_time   query string false "Start time (without slot)"
// @Param       end_time     query string false "End time (without slot)"
// @Success     200 {object} model.Availability
// @Router      /api/v1/bookings/availability [GET]
func (h *handler) Availability(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processAvailabilityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	avail, err := h.uc.Availability(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Availability: %v", err)
		response.Error(c, h.mapError(err, "Failed to check availability"))
		return
	}

	response.OK(c, avail)
}

// Slots godoc
// @Summary     Hourly booking slots of a date
// @Description With workspace_id each slot is checked for availability.
// @Tags        Bookings
// @Produce     json
// @Param       date         query string false "Date (default today)"
// @Param       workspace_id query int    false "Workspace ID"
// @Success     200 {object} slotsResp
// @Router      /api/v1/bookings/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	slots, err := h.uc.Slots(ctx, sc, booking.SlotsInput{Date: req.Date, WorkspaceID: req.WorkspaceID})
	if err != nil {
		h.l.Errorf(ctx, "uc.Slots: %v", err)
		response.Error(c, h.mapError(err, "Failed to check availability"))
		return
	}

	response.OK(c, slotsResp{Slots: slots})
}
