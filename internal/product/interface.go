package product

import (
	"context"

	"workspace-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Product, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Product, error)
	Detail(ctx context.Context, sc model.Scope, id int) (model.Product, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Product, error)
	Delete(ctx context.Context, sc model.Scope, id int) error
	// Sell and Consume return the product as it stands after the stock change.
	Sell(ctx context.Context, sc model.Scope, input SellInput) (model.Product, error)
	Consume(ctx context.Context, sc model.Scope, input ConsumeInput) (model.Product, error)
	UpdateStock(ctx context.Context, sc model.Scope, input StockInput) (model.Product, error)
}
