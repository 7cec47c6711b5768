package http

import (
	"workspace-admin/internal/model"
	"workspace-admin/internal/user"
)

// --- Request DTOs ---

type listReq struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Query   string `form:"q"`
}

func (r listReq) toInput() user.ListInput {
	return user.ListInput{Page: r.Page, PerPage: r.PerPage, Query: r.Query}
}

type createReq struct {
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		Role:     model.ParseRole(r.Role),
	}
}

type updateReq struct {
	ID     int    `json:"-"`
	Name   string `json:"name"`
	Email  string `json:"email"  binding:"omitempty,email"`
	Phone  string `json:"phone"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r updateReq) toInput() user.UpdateInput {
	return user.UpdateInput{
		ID:     r.ID,
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Status: r.Status,
	}
}

// --- Response DTOs ---

type listResp struct {
	Users      []model.User     `json:"users"`
	Pagination model.Pagination `json:"pagination"`
}

func newListResp(o user.ListOutput) listResp {
	users := o.Users
	if users == nil {
		users = []model.User{}
	}
	return listResp{Users: users, Pagination: o.Pagination}
}
