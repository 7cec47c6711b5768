package http

import "github.com/gin-gonic/gin"

func (h *handler) processFinancialReq(c *gin.Context) (financialReq, error) {
	var req financialReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUsageReq(c *gin.Context) (usageReq, error) {
	var req usageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
