package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/product"
	"workspace-admin/pkg/response"
)

// List godoc
// @Summary     List products
// @Tags        Products
// @Produce     json
// @Param       q query string false "Filter on name"
// @Success     200 {object} listResp
// @Router      /api/v1/products [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	products, err := h.uc.List(ctx, sc, product.ListInput{Query: c.Query("q")})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch products. Please try again."))
		return
	}

	response.OK(c, newListResp(products))
}

// Create godoc
// @Summary     Create a product
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Product data"
// @Success     201 {object} productResp
// @Router      /api/v1/products [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, "Failed to create product. Please try again."))
		return
	}

	response.Created(c, newProductResp(p))
}

// Detail godoc
// @Summary     Get a product
// @Tags        Products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} productResp
// @Router      /api/v1/products/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch product"))
		return
	}

	response.OK(c, newProductResp(p))
}

// Update godoc
// @Summary     Update a product
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Product ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} productResp
// @Router      /api/v1/products/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, "Failed to update product. Please try again."))
		return
	}

	response.OK(c, newProductResp(p))
}

// Delete godoc
// @Summary     Delete a product
// @Tags        Products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/products/{id} [DELETE]
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
		response.Error(c, h.mapError(err, "Failed to delete product. Please try again."))
		return
	}

	response.OK(c, nil)
}

// Sell godoc
// @Summary     Sell a product to a user
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body body sellReq true "Sale"
// @Success     200 {object} productResp
// @Router      /api/v1/products/sell [POST]
func (h *handler) Sell(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processSellReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Sell(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Sell: %v", err)
		response.Error(c, h.mapError(err, "Failed to sell product. Please try again."))
		return
	}

	response.OK(c, newProductResp(p))
}

// Consume godoc
// @Summary     Record product consumption by a subscriber
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body body consumeReq true "Consumption"
// @Success     200 {object} productResp
// @Router      /api/v1/products/consume [POST]
func (h *handler) Consume(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req, err := h.processConsumeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Consume(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Consume: %v", err)
		response.Error(c, h.mapError(err, "Failed to consume product. Please try again."))
		return
	}

	response.OK(c, newProductResp(p))
}

// UpdateStock godoc
// @Summary     Set the stock of a product
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id   path int      true "Product ID"
// @Param       body body stockReq true "New stock"
// @Success     200 {object} productResp
// @Router      /api/v1/products/{id}/stock [PUT]
func (h *handler) UpdateStock(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	input, err := h.processStockReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.UpdateStock(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStock: %v", err)
		response.Error(c, h.mapError(err, "Failed to update stock. Please try again."))
		return
	}

	response.OK(c, newProductResp(p))
}
