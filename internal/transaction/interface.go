package transaction

import (
	"context"

	"workspace-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Transaction, error)
	Detail(ctx context.Context, sc model.Scope, id int) (model.Transaction, error)
	Delete(ctx context.Context, sc model.Scope, id int) error
	Report(ctx context.Context, sc model.Scope, rng model.ReportRange) (model.TransactionReport, error)
	ExportReport(ctx context.Context, sc model.Scope, rng model.ReportRange) (model.Export, error)
}
