package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /products facade of the remote API.
type Repository interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, opt CreateOptions) (model.Product, error)
	Detail(ctx context.Context, id int) (model.Product, error)
	Update(ctx context.Context, id int, opt UpdateOptions) (model.Product, error)
	Delete(ctx context.Context, id int) error
	Sell(ctx context.Context, opt SellOptions) error
	Consume(ctx context.Context, opt ConsumeOptions) error
	UpdateStock(ctx context.Context, id int, opt StockOptions) (model.Product, error)
}
