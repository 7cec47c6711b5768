package usecase

import (
	"context"
	"strings"

	"workspace-admin/internal/model"
	"workspace-admin/internal/user"
	"workspace-admin/internal/user/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input user.ListInput) (user.ListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage <= 0 {
		perPage = uc.perPage
	}

	users, totalPages, err := uc.repo.List(ctx, repository.ListOptions{
		Page:    page,
		PerPage: perPage,
		Query:   strings.TrimSpace(input.Query),
	})
	if err != nil {
		return user.ListOutput{}, err
	}
	if totalPages < 1 {
		totalPages = 1
	}

	return user.ListOutput{
		Users:      users,
		Pagination: model.Pagination{Page: page, PerPage: perPage, TotalPages: totalPages},
	}, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input user.CreateInput) (model.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return model.User{}, user.ErrMissingFields
	}

	u, err := uc.repo.Create(ctx, repository.CreateOptions{
		Name:     name,
		Email:    email,
		Password: input.Password,
		RoleID:   input.Role.RoleID(),
		Phone:    strings.TrimSpace(input.Phone),
	})
	if err != nil {
		return model.User{}, err
	}

	uc.l.Infof(ctx, "user.usecase.Create: user %d created by %d", u.ID, sc.UserID)
	return u, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int) (model.User, error) {
	if id <= 0 {
		return model.User{}, user.ErrInvalidID
	}
	return uc.repo.Detail(ctx, id)
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input user.UpdateInput) (model.User, error) {
	if input.ID <= 0 {
		return model.User{}, user.ErrInvalidID
	}
	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status != "" && status != "active" && status != "inactive" {
		return model.User{}, user.ErrInvalidStatus
	}

	return uc.repo.Update(ctx, input.ID, repository.UpdateOptions{
		Name:   strings.TrimSpace(input.Name),
		Email:  strings.TrimSpace(input.Email),
		Phone:  strings.TrimSpace(input.Phone),
		Status: status,
	})
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int) error {
	if id <= 0 {
		return user.ErrInvalidID
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.l.Infof(ctx, "user.usecase.Delete: user %d deleted by %d", id, sc.UserID)
	return nil
}

func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, query string) ([]model.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.User{}, nil
	}
	return uc.repo.Search(ctx, query)
}
