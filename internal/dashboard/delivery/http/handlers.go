package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/pkg/response"
)

// Summary godoc
// @Summary     Dashboard summary
// @Description Admins get every figure; other roles only today's bookings.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} summaryResp
// @Router      /api/v1/dashboard/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	s, err := h.uc.Summary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch dashboard summary"))
		return
	}

	response.OK(c, newSummaryResp(sc, s))
}

// Financial godoc
// @Summary     Financial report
// @Description Blank dates default to the current month, group_by to day.
// @Tags        Dashboard
// @Produce     json
// @Param       from     query string false "From date"
// @Param       to       query string false "To date"
// @Param       group_by query string false "day or month"
// @Success     200 {object} financialResp
// @Router      /api/v1/dashboard/financial [GET]
func (h *handler) Financial(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processFinancialReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rep, rng, err := h.uc.Financial(ctx, sc, req.toRange())
	if err != nil {
		h.l.Errorf(ctx, "uc.Financial: %v", err)
		response.Error(c, h.mapError(err, "Failed to load financial data"))
		return
	}

	response.OK(c, newFinancialResp(rep, rng))
}

// Usage godoc
// @Summary     Workspace usage report
// @Tags        Dashboard
// @Produce     json
// @Param       workspace_id query int    false "Workspace ID"
// @Param       from         query string false "From date"
// @Param       to           query string false "To date"
// @Success     200 {object} usageResp
// @Router      /api/v1/dashboard/usage [GET]
func (h *handler) Usage(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processUsageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rep, err := h.uc.Usage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Usage: %v", err)
		response.Error(c, h.mapError(err, "Failed to load usage report"))
		return
	}

	response.OK(c, newUsageResp(rep))
}
