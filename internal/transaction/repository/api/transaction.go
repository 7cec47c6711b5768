package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"workspace-admin/internal/model"
	"workspace-admin/internal/transaction/repository"
)

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Transaction, int, error) {
	q := url.Values{}
	if opt.UserID > 0 {
		q.Set("user_id", strconv.Itoa(opt.UserID))
	}
	if opt.Type != "" {
		q.Set("type", string(opt.Type))
	}
	if opt.From != "" {
		q.Set("from", opt.From)
	}
	if opt.To != "" {
		q.Set("to", opt.To)
	}
	if opt.Page > 0 {
		q.Set("page", strconv.Itoa(opt.Page))
	}
	if opt.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opt.PerPage))
	}

	var out []model.Transaction
	totalPages, err := r.client.GetList(ctx, "/transactions", q, "transactions", &out)
	if err != nil {
		return nil, 0, fmt.Errorf("transactions.List: %w", err)
	}
	return out, totalPages, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Transaction, error) {
	var out model.Transaction
	if err := r.client.Post(ctx, "/transactions", opt, &out); err != nil {
		return model.Transaction{}, fmt.Errorf("transactions.Create: %w", err)
	}
	return out, nil
}

func (r *implRepository) Detail(ctx context.Context, id int) (model.Transaction, error) {
	var out model.Transaction
	if err := r.client.Get(ctx, transactionPath(id), nil, &out); err != nil {
		return model.Transaction{}, fmt.Errorf("transactions.Detail: %w", err)
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, transactionPath(id), nil); err != nil {
		return fmt.Errorf("transactions.Delete: %w", err)
	}
	return nil
}

func (r *implRepository) Report(ctx context.Context, opt repository.ReportOptions) (model.TransactionReport, error) {
	var out model.TransactionReport
	if err := r.client.GetReport(ctx, "/transactions/report", reportQuery(opt), &out, &out.Raw); err != nil {
		return model.TransactionReport{}, fmt.Errorf("transactions.Report: %w", err)
	}
	return out, nil
}

func (r *implRepository) ExportReport(ctx context.Context, opt repository.ReportOptions) ([]byte, string, error) {
	q := reportQuery(opt)
	q.Set("format", "csv")
	raw, contentType, err := r.client.GetRaw(ctx, "/transactions/report", q)
	if err != nil {
		return nil, "", fmt.Errorf("transactions.ExportReport: %w", err)
	}
	return raw, contentType, nil
}

func reportQuery(opt repository.ReportOptions) url.Values {
	q := url.Values{}
	if opt.From != "" {
		q.Set("from", opt.From)
	}
	if opt.To != "" {
		q.Set("to", opt.To)
	}
	if opt.GroupBy != "" {
		q.Set("group_by", opt.GroupBy)
	}
	return q
}

func transactionPath(id int) string {
	return "/transactions/" + strconv.Itoa(id)
}
