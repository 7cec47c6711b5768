package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/expense"
)

func (h *handler) processID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, expense.ErrInvalidID
	}
	return id, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
