package http

import (
	"workspace-admin/internal/model"
	"workspace-admin/internal/product"
)

// --- Request DTOs ---

type createReq struct {
	Name  string  `json:"name"  binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
	Stock int     `json:"stock" binding:"gte=0"`
}

func (r createReq) toInput() product.CreateInput {
	return product.CreateInput{Name: r.Name, Price: r.Price, Stock: r.Stock}
}

type updateReq struct {
	ID    int      `json:"-"`
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

func (r updateReq) toInput() product.UpdateInput {
	return product.UpdateInput{ID: r.ID, Name: r.Name, Price: r.Price, Stock: r.Stock}
}

type sellReq struct {
	ProductID int `json:"product_id" binding:"required"`
	UserID    int `json:"user_id"    binding:"required"`
	Quantity  int `json:"quantity"   binding:"required,min=1"`
}

func (r sellReq) toInput() product.SellInput {
	return product.SellInput{ProductID: r.ProductID, UserID: r.UserID, Quantity: r.Quantity}
}

type consumeReq struct {
	ProductID    int `json:"product_id"    binding:"required"`
	SubscriberID int `json:"subscriber_id" binding:"required"`
	Quantity     int `json:"quantity"      binding:"required,min=1"`
}

func (r consumeReq) toInput() product.ConsumeInput {
	return product.ConsumeInput{ProductID: r.ProductID, SubscriberID: r.SubscriberID, Quantity: r.Quantity}
}

type stockReq struct {
	Stock *int `json:"stock" binding:"required,gte=0"`
}

// --- Response DTOs ---

type productResp struct {
	model.Product
	StockStatus string `json:"stock_status"`
}

func newProductResp(p model.Product) productResp {
	return productResp{Product: p, StockStatus: p.StockStatus()}
}

type listResp struct {
	Products []productResp `json:"products"`
}

func newListResp(products []model.Product) listResp {
	out := make([]productResp, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResp(p))
	}
	return listResp{Products: out}
}
