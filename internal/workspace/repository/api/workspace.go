package api

import (
	"context"
	"fmt"
	"strconv"

	"workspace-admin/internal/model"
	"workspace-admin/internal/workspace/repository"
)

func (r *implRepository) List(ctx context.Context) ([]model.Workspace, error) {
	var out []model.Workspace
	if _, err := r.client.GetList(ctx, "/workspaces", nil, "workspaces", &out); err != nil {
		return nil, fmt.Errorf("workspaces.List: %w", err)
	}
	return out, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Workspace, error) {
	var out model.Workspace
	if err := r.client.Post(ctx, "/workspaces", opt, &out); err != nil {
		return model.Workspace{}, fmt.Errorf("workspaces.Create: %w", err)
	}
	return out, nil
}

func (r *implRepository) Detail(ctx context.Context, id int) (model.Workspace, error) {
	var out model.Workspace
	if err := r.client.Get(ctx, workspacePath(id), nil, &out); err != nil {
		return model.Workspace{}, fmt.Errorf("workspaces.Detail: %w", err)
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, id int, opt repository.UpdateOptions) (model.Workspace, error) {
	var out model.Workspace
	if err := r.client.Put(ctx, workspacePath(id), opt, &out); err != nil {
		return model.Workspace{}, fmt.Errorf("workspaces.Update: %w", err)
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, workspacePath(id), nil); err != nil {
		return fmt.Errorf("workspaces.Delete: %w", err)
	}
	return nil
}

func workspacePath(id int) string {
	return "/workspaces/" + strconv.Itoa(id)
}
