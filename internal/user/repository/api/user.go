package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"workspace-admin/internal/model"
	"workspace-admin/internal/user/repository"
)

const listKey = "users"

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.User, int, error) {
	q := url.Values{}
	if opt.Page > 0 {
		q.Set("page", strconv.Itoa(opt.Page))
	}
	if opt.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opt.PerPage))
	}
	if opt.Query != "" {
		q.Set("q", opt.Query)
	}

	var users []model.User
	totalPages, err := r.client.GetList(ctx, "/users", q, listKey, &users)
	if err != nil {
		return nil, 0, fmt.Errorf("users.List: %w", err)
	}
	return users, totalPages, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.User, error) {
	var out model.User
	if err := r.client.Post(ctx, "/users", opt, &out); err != nil {
		return model.User{}, fmt.Errorf("users.Create: %w", err)
	}
	return out, nil
}

func (r *implRepository) Detail(ctx context.Context, id int) (model.User, error) {
	var out model.User
	if err := r.client.Get(ctx, userPath(id), nil, &out); err != nil {
		return model.User{}, fmt.Errorf("users.Detail: %w", err)
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, id int, opt repository.UpdateOptions) (model.User, error) {
	var out model.User
	if err := r.client.Put(ctx, userPath(id), opt, &out); err != nil {
		return model.User{}, fmt.Errorf("users.Update: %w", err)
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, userPath(id), nil); err != nil {
		return fmt.Errorf("users.Delete: %w", err)
	}
	return nil
}

func (r *implRepository) Search(ctx context.Context, query string) ([]model.User, error) {
	var users []model.User
	if _, err := r.client.GetList(ctx, "/users/search", url.Values{"q": {query}}, listKey, &users); err != nil {
		return nil, fmt.Errorf("users.Search: %w", err)
	}
	return users, nil
}

func userPath(id int) string {
	return "/users/" + strconv.Itoa(id)
}
