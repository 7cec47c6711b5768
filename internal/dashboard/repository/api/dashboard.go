package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"workspace-admin/internal/dashboard/repository"
	"workspace-admin/internal/model"
)

func (r *implRepository) Summary(ctx context.Context) (model.DashboardSummary, error) {
	var out model.DashboardSummary
	if err := r.client.GetReport(ctx, "/dashboard/summary", nil, &out, &out.Raw); err != nil {
		return model.DashboardSummary{}, fmt.Errorf("dashboard.Summary: %w", err)
	}
	return out, nil
}

func (r *implRepository) Financial(ctx context.Context, opt repository.FinancialOptions) (model.FinancialReport, error) {
	q := url.Values{}
	setDate(q, "from", opt.From)
	setDate(q, "to", opt.To)
	if opt.GroupBy != "" {
		q.Set("group_by", opt.GroupBy)
	}

	var out model.FinancialReport
	if err := r.client.GetReport(ctx, "/dashboard/financial", q, &out, &out.Raw); err != nil {
		return model.FinancialReport{}, fmt.Errorf("dashboard.Financial: %w", err)
	}
	return out, nil
}

func (r *implRepository) Usage(ctx context.Context, opt repository.UsageOptions) (model.UsageReport, error) {
	q := url.Values{}
	if opt.WorkspaceID > 0 {
		q.Set("workspace_id", strconv.Itoa(opt.WorkspaceID))
	}
	setDate(q, "from", opt.From)
	setDate(q, "to", opt.To)

	var out model.UsageReport
	if err := r.client.GetReport(ctx, "/dashboard/usage", q, &out, &out.Raw); err != nil {
		return model.UsageReport{}, fmt.Errorf("dashboard.Usage: %w", err)
	}
	return out, nil
}

func setDate(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
