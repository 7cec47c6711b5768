package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/product"
)

func (h *handler) processID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, product.ErrInvalidID
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

func (h *handler) processSellReq(c *gin.Context) (sellReq, error) {
	var req sellReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processConsumeReq(c *gin.Context) (consumeReq, error) {
	var req consumeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processStockReq(c *gin.Context) (product.StockInput, error) {
	id, err := h.processID(c)
	if err != nil {
		return product.StockInput{}, err
	}
	var req stockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return product.StockInput{}, err
	}
	return product.StockInput{ID: id, Stock: *req.Stock}, nil
}
