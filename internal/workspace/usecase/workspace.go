package usecase

import (
	"context"
	"strings"

	"workspace-admin/internal/model"
	"workspace-admin/internal/workspace"
	"workspace-admin/internal/workspace/repository"
	"workspace-admin/pkg/filter"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input workspace.ListInput) ([]model.Workspace, error) {
	spaces, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Slice(spaces, input.Query, func(w model.Workspace) []string {
		return []string{w.Name, w.Location}
	}), nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input workspace.CreateInput) (model.Workspace, error) {
	name := strings.TrimSpace(input.Name)
	location := strings.TrimSpace(input.Location)
	if name == "" || location == "" {
		return model.Workspace{}, workspace.ErrMissingFields
	}
	if input.Capacity < 1 {
		return model.Workspace{}, workspace.ErrInvalidCapacity
	}

	ws, err := uc.repo.Create(ctx, repository.CreateOptions{
		Name:     name,
		Location: location,
		Capacity: input.Capacity,
	})
	if err != nil {
		return model.Workspace{}, err
	}

	uc.l.Infof(ctx, "workspace.usecase.Create: %q at %q", name, location)
	return ws, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int) (model.Workspace, error) {
	if id <= 0 {
		return model.Workspace{}, workspace.ErrInvalidID
	}
	return uc.repo.Detail(ctx, id)
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input workspace.UpdateInput) (model.Workspace, error) {
	if input.ID <= 0 {
		return model.Workspace{}, workspace.ErrInvalidID
	}
	if input.Capacity != nil && *input.Capacity < 1 {
		return model.Workspace{}, workspace.ErrInvalidCapacity
	}

	return uc.repo.Update(ctx, input.ID, repository.UpdateOptions{
		Name:     strings.TrimSpace(input.Name),
		Location: strings.TrimSpace(input.Location),
		Capacity: input.Capacity,
	})
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int) error {
	if id <= 0 {
		return workspace.ErrInvalidID
	}
	return uc.repo.Delete(ctx, id)
}
