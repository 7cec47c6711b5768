package user

import "workspace-admin/internal/model"

type ListInput struct {
	Page    int
	PerPage int
	Query   string
}

type ListOutput struct {
	Users      []model.User
	Pagination model.Pagination
}

type CreateInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     model.Role
}

// UpdateInput carries a partial update. Empty fields are left untouched.
type UpdateInput struct {
	ID     int
	Name   string
	Email  string
	Phone  string
	Status string
}
