package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /transactions facade of the remote API.
type Repository interface {
	List(ctx context.Context, opt ListOptions) ([]model.Transaction, int, error)
	Create(ctx context.Context, opt CreateOptions) (model.Transaction, error)
	Detail(ctx context.Context, id int) (model.Transaction, error)
	Delete(ctx context.Context, id int) error
	Report(ctx context.Context, opt ReportOptions) (model.TransactionReport, error)
	// ExportReport fetches the report with format=csv and returns the body
	// with its content type.
	ExportReport(ctx context.Context, opt ReportOptions) ([]byte, string, error)
}
