package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workspace-admin/internal/model"
	"workspace-admin/internal/transaction"
	"workspace-admin/internal/transaction/repository"
	"workspace-admin/pkg/datemath"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input transaction.ListInput) (transaction.ListOutput, error) {
	if input.Type != "" && !input.Type.Valid() {
		return transaction.ListOutput{}, transaction.ErrInvalidType
	}

	opt := repository.ListOptions{UserID: input.UserID, Type: input.Type}
	var err error
	if strings.TrimSpace(input.From) != "" {
		if opt.From, err = uc.date(input.From); err != nil {
			return transaction.ListOutput{}, err
		}
	}
	if strings.TrimSpace(input.To) != "" {
		if opt.To, err = uc.date(input.To); err != nil {
			return transaction.ListOutput{}, err
		}
	}
	if opt.From != "" && opt.To != "" && opt.From > opt.To {
		return transaction.ListOutput{}, transaction.ErrDateOrder
	}

	opt.Page = input.Page
	if opt.Page < 1 {
		opt.Page = 1
	}
	opt.PerPage = input.PerPage
	if opt.PerPage <= 0 {
		opt.PerPage = uc.perPage
	}

	txs, totalPages, err := uc.repo.List(ctx, opt)
	if err != nil {
		return transaction.ListOutput{}, err
	}
	if totalPages < 1 {
		totalPages = 1
	}

	return transaction.ListOutput{
		Transactions: txs,
		Pagination:   model.Pagination{Page: opt.Page, PerPage: opt.PerPage, TotalPages: totalPages},
	}, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input transaction.CreateInput) (model.Transaction, error) {
	if input.UserID <= 0 {
		return model.Transaction{}, transaction.ErrInvalidUser
	}
	if !input.Type.Valid() {
		return model.Transaction{}, transaction.ErrInvalidType
	}
	if input.Amount <= 0 {
		return model.Transaction{}, transaction.ErrInvalidAmount
	}

	tx, err := uc.repo.Create(ctx, repository.CreateOptions{
		UserID:      input.UserID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		return model.Transaction{}, err
	}

	uc.l.Infof(ctx, "transaction.usecase.Create: %s of %.2f for user %d", input.Type, input.Amount, input.UserID)
	return tx, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int) (model.Transaction, error) {
	if id <= 0 {
		return model.Transaction{}, transaction.ErrInvalidID
	}
	return uc.repo.Detail(ctx, id)
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int) error {
	if id <= 0 {
		return transaction.ErrInvalidID
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *implUseCase) Report(ctx context.Context, sc model.Scope, rng model.ReportRange) (model.TransactionReport, error) {
	opt, err := uc.reportOptions(rng)
	if err != nil {
		return model.TransactionReport{}, err
	}
	return uc.repo.Report(ctx, opt)
}

func (uc *implUseCase) date(expr string) (string, error) {
	d, err := uc.cal.Resolve(expr)
	if err != nil {
		return "", fmt.Errorf("%w: %v", transaction.ErrInvalidDate, err)
	}
	return d, nil
}

// reportOptions defaults the range to the current month grouped by day.
func (uc *implUseCase) reportOptions(rng model.ReportRange) (repository.ReportOptions, error) {
	groupBy := strings.ToLower(strings.TrimSpace(rng.GroupBy))
	switch groupBy {
	case "":
		groupBy = "day"
	case "day", "month":
	default:
		return repository.ReportOptions{}, transaction.ErrInvalidGroupBy
	}

	from, to, err := uc.cal.ResolveRange(rng.From, rng.To)
	if err != nil {
		if errors.Is(err, datemath.ErrRangeOrder) {
			return repository.ReportOptions{}, transaction.ErrDateOrder
		}
		return repository.ReportOptions{}, fmt.Errorf("%w: %v", transaction.ErrInvalidDate, err)
	}
	return repository.ReportOptions{From: from, To: to, GroupBy: groupBy}, nil
}
