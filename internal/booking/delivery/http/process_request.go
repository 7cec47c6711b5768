package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/booking"
)

func (h *handler) processID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, booking.ErrInvalidID
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

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

func (h *handler) processStatusReq(c *gin.Context) (int, statusReq, error) {
	var req statusReq
	id, err := h.processID(c)
	if err != nil {
		return 0, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return 0, req, err
	}
	return id, req, nil
}

func (h *handler) processAvailabilityReq(c *gin.Context) (availabilityReq, error) {
	var req availabilityReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSlotsReq(c *gin.Context) (slotsReq, error) {
	var req slotsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
