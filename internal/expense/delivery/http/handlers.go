package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/expense"
	"workspace-admin/internal/middleware"
	"workspace-admin/pkg/response"
)

// List godoc
// @Summary     List expenses
// @Description total is the sum of the returned rows.
// @Tags        Expenses
// @Produce     json
// @Param       q query string false "Filter on name or description"
// @Success     200 {object} listResp
// @Router      /api/v1/expenses [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	expenses, err := h.uc.List(ctx, sc, expense.ListInput{Query: c.Query("q")})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch expenses. Please try again."))
		return
	}

	response.OK(c, newListResp(expenses))
}

// Create godoc
// @Summary     Record an expense
// @Tags        Expenses
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Expense data"
// @Success     201 {object} model.Expense
// @Router      /api/v1/expenses [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	e, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, "Failed to create expense. Please try again."))
		return
	}

	response.Created(c, e)
}

// Detail godoc
// @Summary     Get an expense
// @Tags        Expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} model.Expense
// @Router      /api/v1/expenses/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	e, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch expense"))
		return
	}

	response.OK(c, e)
}

// Delete godoc
// @Summary     Delete an expense
// @Tags        Expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/expenses/{id} [DELETE]
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
		response.Error(c, h.mapError(err, "Failed to delete expense. Please try again."))
		return
	}

	response.OK(c, nil)
}

// Report godoc
// @Summary     Expense report
// @Tags        Expenses
// @Produce     json
// @Success     200 {object} reportResp
// @Router      /api/v1/expenses/report [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	rep, err := h.uc.Report(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Report: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch expense report. Please try again."))
		return
	}

	response.OK(c, newReportResp(rep))
}
