package api

import (
	"context"
	"fmt"
	"strconv"

	"workspace-admin/internal/model"
	"workspace-admin/internal/product/repository"
)

func (r *implRepository) List(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if _, err := r.client.GetList(ctx, "/products", nil, "products", &out); err != nil {
		return nil, fmt.Errorf("products.List: %w", err)
	}
	return out, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Product, error) {
	var out model.Product
	if err := r.client.Post(ctx, "/products", opt, &out); err != nil {
		return model.Product{}, fmt.Errorf("products.Create: %w", err)
	}
	return out, nil
}

func (r *implRepository) Detail(ctx context.Context, id int) (model.Product, error) {
	var out model.Product
	if err := r.client.Get(ctx, productPath(id), nil, &out); err != nil {
		return model.Product{}, fmt.Errorf("products.Detail: %w", err)
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, id int, opt repository.UpdateOptions) (model.Product, error) {
	var out model.Product
	if err := r.client.Put(ctx, productPath(id), opt, &out); err != nil {
		return model.Product{}, fmt.Errorf("products.Update: %w", err)
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, productPath(id), nil); err != nil {
		return fmt.Errorf("products.Delete: %w", err)
	}
	return nil
}

func (r *implRepository) Sell(ctx context.Context, opt repository.SellOptions) error {
	if err := r.client.Post(ctx, "/products/sell", opt, nil); err != nil {
		return fmt.Errorf("products.Sell: %w", err)
	}
	return nil
}

func (r *implRepository) Consume(ctx context.Context, opt repository.ConsumeOptions) error {
	if err := r.client.Post(ctx, "/products/consume", opt, nil); err != nil {
		return fmt.Errorf("products.Consume: %w", err)
	}
	return nil
}

func (r *implRepository) UpdateStock(ctx context.Context, id int, opt repository.StockOptions) (model.Product, error) {
	var out model.Product
	if err := r.client.Put(ctx, productPath(id)+"/stock", opt, &out); err != nil {
		return model.Product{}, fmt.Errorf("products.UpdateStock: %w", err)
	}
	return out, nil
}

func productPath(id int) string {
	return "/products/" + strconv.Itoa(id)
}
