package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /dashboard facade of the remote API.
type Repository interface {
	Summary(ctx context.Context) (model.DashboardSummary, error)
	Financial(ctx context.Context, opt FinancialOptions) (model.FinancialReport, error)
	Usage(ctx context.Context, opt UsageOptions) (model.UsageReport, error)
}
