package usecase

import (
	"context"
	"strings"

	"workspace-admin/internal/model"
	"workspace-admin/internal/product"
	"workspace-admin/internal/product/repository"
	"workspace-admin/pkg/filter"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input product.ListInput) ([]model.Product, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Slice(products, input.Query, func(p model.Product) []string {
		return []string{p.Name}
	}), nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input product.CreateInput) (model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Product{}, product.ErrMissingName
	}
	if input.Price < 0 {
		return model.Product{}, product.ErrInvalidPrice
	}
	if input.Stock < 0 {
		return model.Product{}, product.ErrInvalidStock
	}

	return uc.repo.Create(ctx, repository.CreateOptions{Name: name, Price: input.Price, Stock: input.Stock})
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, product.ErrInvalidID
	}
	return uc.repo.Detail(ctx, id)
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input product.UpdateInput) (model.Product, error) {
	if input.ID <= 0 {
		return model.Product{}, product.ErrInvalidID
	}
	if input.Price != nil && *input.Price < 0 {
		return model.Product{}, product.ErrInvalidPrice
	}
	if input.Stock != nil && *input.Stock < 0 {
		return model.Product{}, product.ErrInvalidStock
	}

	return uc.repo.Update(ctx, input.ID, repository.UpdateOptions{
		Name:  strings.TrimSpace(input.Name),
		Price: input.Price,
		Stock: input.Stock,
	})
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int) error {
	if id <= 0 {
		return product.ErrInvalidID
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *implUseCase) Sell(ctx context.Context, sc model.Scope, input product.SellInput) (model.Product, error) {
	if input.ProductID <= 0 {
		return model.Product{}, product.ErrInvalidID
	}
	if input.UserID <= 0 {
		return model.Product{}, product.ErrInvalidUser
	}
	if input.Quantity < 1 {
		return model.Product{}, product.ErrInvalidQuantity
	}

	if err := uc.repo.Sell(ctx, repository.SellOptions{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Quantity:  input.Quantity,
	}); err != nil {
		return model.Product{}, err
	}

	uc.l.Infof(ctx, "product.usecase.Sell: product=%d user=%d quantity=%d", input.ProductID, input.UserID, input.Quantity)
	return uc.refresh(ctx, input.ProductID)
}

func (uc *implUseCase) Consume(ctx context.Context, sc model.Scope, input product.ConsumeInput) (model.Product, error) {
	if input.ProductID <= 0 {
		return model.Product{}, product.ErrInvalidID
	}
	if input.SubscriberID <= 0 {
		return model.Product{}, product.ErrInvalidSubscriber
	}
	if input.Quantity < 1 {
		return model.Product{}, product.ErrInvalidQuantity
	}

	if err := uc.repo.Consume(ctx, repository.ConsumeOptions{
		ProductID:    input.ProductID,
		SubscriberID: input.SubscriberID,
		Quantity:     input.Quantity,
	}); err != nil {
		return model.Product{}, err
	}

	uc.l.Infof(ctx, "product.usecase.Consume: product=%d subscriber=%d quantity=%d", input.ProductID, input.SubscriberID, input.Quantity)
	return uc.refresh(ctx, input.ProductID)
}

func (uc *implUseCase) UpdateStock(ctx context.Context, sc model.Scope, input product.StockInput) (model.Product, error) {
	if input.ID <= 0 {
		return model.Product{}, product.ErrInvalidID
	}
	if input.Stock < 0 {
		return model.Product{}, product.ErrInvalidStock
	}
	return uc.repo.UpdateStock(ctx, input.ID, repository.StockOptions{Stock: input.Stock})
}

// refresh reloads a product after a stock change. The change already
// happened, so a failed reload only returns the id.
func (uc *implUseCase) refresh(ctx context.Context, id int) (model.Product, error) {
	p, err := uc.repo.Detail(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "product.usecase.refresh: %v", err)
		return model.Product{ID: id}, nil
	}
	return p, nil
}
