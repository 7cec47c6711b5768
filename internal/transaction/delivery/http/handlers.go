package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/pkg/response"
)

// List godoc
// @Summary     List transactions
// @Tags        Transactions
// @Produce     json
// @Param       user_id  query int    false "User ID"
// @Param       type     query string false "payment or withdrawal"
// @Param       from     query string false "From date (YYYY-MM-DD or relative)"
// @Param       to       query string false "To date (YYYY-MM-DD or relative)"
// @Param       page     query int    false "Page (default 1)"
// @Param       per_page query int    false "Page size (default 10)"
// @Success     200 {object} listResp
// @Router      /api/v1/transactions [GET]
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
		response.Error(c, h.mapError(err, "Failed to fetch transactions. Please try again."))
		return
	}

	response.OK(c, newListResp(output))
}

// Create godoc
// @Summary     Record a transaction
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Transaction data"
// @Success     201 {object} model.Transaction
// @Failure     422 {object} response.Resp "Validation errors"
// @Router      /api/v1/transactions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tx, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, "Failed to create transaction. Please try again."))
		return
	}

	response.Created(c, tx)
}

// Detail godoc
// @Summary     Get a transaction
// @Tags        Transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} model.Transaction
// @Router      /api/v1/transactions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tx, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch transaction"))
		return
	}

	response.OK(c, tx)
}

// Delete godoc
// @Summary     Delete a transaction
// @Tags        Transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/transactions/{id} [DELETE]
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
		response.Error(c, h.mapError(err, "Failed to delete transaction. Please try again."))
		return
	}

	response.OK(c, nil)
}

// Report godoc
// @Summary     Transaction report
// @Description Defaults to the current month grouped by day.
// @Tags        Transactions
// @Produce     json
// @Param       from     query string false "From date"
// @Param       to       query string false "To date"
// @Param       group_by query string false "day or month"
// @Success     200 {object} reportResp
// @Router      /api/v1/transactions/report [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rep, err := h.uc.Report(ctx, sc, req.toRange())
	if err != nil {
		h.l.Errorf(ctx, "uc.Report: %v", err)
		response.Error(c, h.mapError(err, "Failed to load transaction report"))
		return
	}

	response.OK(c, newReportResp(rep))
}

// Export godoc
// @Summary     Download the financial report as CSV
// @Tags        Reports
// @Produce     text/csv
// @Param       from     query string false "From date"
// @Param       to       query string false "To date"
// @Param       group_by query string false "day or month"
// @Success     200 {file} file
// @Router      /api/v1/reports/financial/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := h.uc.ExportReport(ctx, sc, req.toRange())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportReport: %v", err)
		response.Error(c, h.mapError(err, "Failed to export report"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
