package dashboard

import (
	"context"

	"workspace-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Summary(ctx context.Context, sc model.Scope) (model.DashboardSummary, error)
	Overview(ctx context.Context, sc model.Scope) (Overview, error)
	Financial(ctx context.Context, sc model.Scope, rng model.ReportRange) (model.FinancialReport, model.ReportRange, error)
	Usage(ctx context.Context, sc model.Scope, input UsageInput) (model.UsageReport, error)
}
