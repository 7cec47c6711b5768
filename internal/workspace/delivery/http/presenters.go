package http

import (
	"workspace-admin/internal/model"
	"workspace-admin/internal/workspace"
)

// --- Request DTOs ---

type createReq struct {
	Name     string `json:"name"     binding:"required"`
	Location string `json:"location" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

func (r createReq) toInput() workspace.CreateInput {
	return workspace.CreateInput{Name: r.Name, Location: r.Location, Capacity: r.Capacity}
}

type updateReq struct {
	ID       int    `json:"-"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity *int   `json:"capacity"`
}

func (r updateReq) toInput() workspace.UpdateInput {
	return workspace.UpdateInput{ID: r.ID, Name: r.Name, Location: r.Location, Capacity: r.Capacity}
}

// --- Response DTOs ---

type listResp struct {
	Workspaces []model.Workspace `json:"workspaces"`
}

func newListResp(spaces []model.Workspace) listResp {
	if spaces == nil {
		spaces = []model.Workspace{}
	}
	return listResp{Workspaces: spaces}
}
