package usecase

import (
	"context"
	"strings"

	"workspace-admin/internal/model"
	"workspace-admin/internal/plan"
	"workspace-admin/internal/plan/repository"
	"workspace-admin/pkg/datemath"
	"workspace-admin/pkg/filter"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input plan.ListInput) ([]plan.PlanView, error) {
	plans, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	plans = filter.Slice(plans, input.Query, func(p model.Plan) []string {
		return []string{p.Name}
	})

	out := make([]plan.PlanView, 0, len(plans))
	for _, p := range plans {
		out = append(out, plan.PlanView{Plan: p, DurationLabel: datemath.DurationLabel(p.DurationDays)})
	}
	return out, nil
}

// Get finds a plan by id. The remote API has no single-plan endpoint, so the
// list is searched.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id int) (model.Plan, error) {
	if id <= 0 {
		return model.Plan{}, plan.ErrInvalidID
	}
	plans, err := uc.repo.List(ctx)
	if err != nil {
		return model.Plan{}, err
	}
	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Plan{}, plan.ErrPlanNotFound
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input plan.CreateInput) (model.Plan, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Plan{}, plan.ErrMissingName
	}
	if input.DurationDays < 1 {
		return model.Plan{}, plan.ErrInvalidDuration
	}
	if input.Price < 0 {
		return model.Plan{}, plan.ErrInvalidPrice
	}

	return uc.repo.Create(ctx, repository.CreateOptions{
		Name:         name,
		DurationDays: input.DurationDays,
		Price:        input.Price,
	})
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input plan.UpdateInput) (model.Plan, error) {
	if input.ID <= 0 {
		return model.Plan{}, plan.ErrInvalidID
	}
	if input.DurationDays != nil && *input.DurationDays < 1 {
		return model.Plan{}, plan.ErrInvalidDuration
	}
	if input.Price != nil && *input.Price < 0 {
		return model.Plan{}, plan.ErrInvalidPrice
	}

	return uc.repo.Update(ctx, input.ID, repository.UpdateOptions{
		Name:         strings.TrimSpace(input.Name),
		DurationDays: input.DurationDays,
		Price:        input.Price,
	})
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int) error {
	if id <= 0 {
		return plan.ErrInvalidID
	}
	return uc.repo.Delete(ctx, id)
}
