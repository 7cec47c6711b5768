package api

import (
	"context"
	"fmt"
	"strconv"

	"workspace-admin/internal/model"
	"workspace-admin/internal/plan/repository"
)

func (r *implRepository) List(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	if _, err := r.client.GetList(ctx, "/plans", nil, "plans", &plans); err != nil {
		return nil, fmt.Errorf("plans.List: %w", err)
	}
	return plans, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Plan, error) {
	var out model.Plan
	if err := r.client.Post(ctx, "/plans", opt, &out); err != nil {
		return model.Plan{}, fmt.Errorf("plans.Create: %w", err)
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, id int, opt repository.UpdateOptions) (model.Plan, error) {
	var out model.Plan
	if err := r.client.Put(ctx, "/plans/"+strconv.Itoa(id), opt, &out); err != nil {
		return model.Plan{}, fmt.Errorf("plans.Update: %w", err)
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, "/plans/"+strconv.Itoa(id), nil); err != nil {
		return fmt.Errorf("plans.Delete: %w", err)
	}
	return nil
}
