package http

import (
	"workspace-admin/internal/dashboard"
	"workspace-admin/internal/model"
)

// --- Request DTOs ---

type financialReq struct {
	From    string `form:"from"`
	To      string `form:"to"`
	GroupBy string `form:"group_by" binding:"omitempty,oneof=day month"`
}

func (r financialReq) toRange() model.ReportRange {
	return model.ReportRange{From: r.From, To: r.To, GroupBy: r.GroupBy}
}

type usageReq struct {
	WorkspaceID int    `form:"workspace_id" binding:"gte=0"`
	From        string `form:"from"`
	To          string `form:"to"`
}

func (r usageReq) toInput() dashboard.UsageInput {
	return dashboard.UsageInput{WorkspaceID: r.WorkspaceID, From: r.From, To: r.To}
}

// --- Response DTOs ---

// summaryResp is the full summary for admins. Other roles only see the
// booking figures.
type summaryResp struct {
	model.DashboardSummary
	Extra map[string]any `json:"extra,omitempty"`
}

type memberSummaryResp struct {
	TodayBookings int `json:"today_bookings"`
}

func newSummaryResp(sc model.Scope, s model.DashboardSummary) any {
	if !sc.IsAdmin() {
		return memberSummaryResp{TodayBookings: s.TodayBookings}
	}
	return summaryResp{DashboardSummary: s, Extra: s.Raw}
}

type financialResp struct {
	model.FinancialReport
	Range rangeResp      `json:"range"`
	Extra map[string]any `json:"extra,omitempty"`
}

type rangeResp struct {
	From    string `json:"from"`
	To      string `json:"to"`
	GroupBy string `json:"group_by"`
}

func newFinancialResp(rep model.FinancialReport, rng model.ReportRange) financialResp {
	return financialResp{
		FinancialReport: rep,
		Range:           rangeResp{From: rng.From, To: rng.To, GroupBy: rng.GroupBy},
		Extra:           rep.Raw,
	}
}

type usageResp struct {
	model.UsageReport
	Extra map[string]any `json:"extra,omitempty"`
}

func newUsageResp(rep model.UsageReport) usageResp {
	return usageResp{UsageReport: rep, Extra: rep.Raw}
}
