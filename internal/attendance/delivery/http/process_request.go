package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/attendance"
)

func (h *handler) processEmployeeID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("employee_id"))
	if err != nil || id <= 0 {
		return 0, attendance.ErrInvalidEmployee
	}
	return id, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCheckInReq(c *gin.Context) (attendance.CheckInput, error) {
	var req checkInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return attendance.CheckInput{}, err
	}
	return attendance.CheckInput{EmployeeID: req.EmployeeID, At: req.CheckIn}, nil
}

func (h *handler) processCheckOutReq(c *gin.Context) (attendance.CheckInput, error) {
	var req checkOutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return attendance.CheckInput{}, err
	}
	return attendance.CheckInput{EmployeeID: req.EmployeeID, At: req.CheckOut}, nil
}
