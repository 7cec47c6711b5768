package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/pkg/response"
)

// List godoc
// @Summary     List attendance records
// @Tags        Attendance
// @Produce     json
// @Param       employee_id query int    false "Employee ID"
// @Param       from        query string false "From date"
// @Param       to          query string false "To date"
// @Param       q           query string false "Filter on employee name or email"
// @Success     200 {object} listResp
// @Router      /api/v1/attendance [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	records, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch attendance records. Please try again."))
		return
	}

	response.OK(c, newListResp(records))
}

// CheckIn godoc
// @Summary     Check an employee in
// @Description employee_id defaults to the caller and check_in to now.
// @Tags        Attendance
// @Accept      json
// @Produce     json
// @Param       body body checkInReq true "Check-in"
// @Success     201 {object} model.AttendanceRecord
// @Router      /api/v1/attendance/check-in [POST]
func (h *handler) CheckIn(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	input, err := h.processCheckInReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rec, err := h.uc.CheckIn(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckIn: %v", err)
		response.Error(c, h.mapError(err, "Failed to check in. Please try again."))
		return
	}

	response.Created(c, rec)
}

// CheckOut godoc
// @Summary     Check an employee out
// @Description employee_id defaults to the caller and check_out to now.
// @Tags        Attendance
// @Accept      json
// @Produce     json
// @Param       body body checkOutReq true "Check-out"
// @Success     200 {object} model.AttendanceRecord
// @Router      /api/v1/attendance/check-out [POST]
func (h *handler) CheckOut(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	input, err := h.processCheckOutReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rec, err := h.uc.CheckOut(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckOut: %v", err)
		response.Error(c, h.mapError(err, "Failed to check out. Please try again."))
		return
	}

	response.OK(c, rec)
}

// Employee godoc
// @Summary     Attendance of one employee
// @Tags        Attendance
// @Produce     json
// @Param       employee_id path int true "Employee ID"
// @Success     200 {object} listResp
// @Router      /api/v1/attendance/{employee_id} [GET]
func (h *handler) Employee(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	id, err := h.processEmployeeID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	records, err := h.uc.Employee(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Employee: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch attendance records. Please try again."))
		return
	}

	response.OK(c, newListResp(records))
}

// Report godoc
// @Summary     Attendance report
// @Tags        Attendance
// @Produce     json
// @Success     200 {object} reportResp
// @Router      /api/v1/attendance/report [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	rep, err := h.uc.Report(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Report: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch attendance report. Please try again."))
		return
	}

	response.OK(c, newReportResp(rep))
}
