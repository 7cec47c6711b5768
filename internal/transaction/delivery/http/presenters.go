package http

import (
	"workspace-admin/internal/model"
	"workspace-admin/internal/transaction"
)

// --- Request DTOs ---

type listReq struct {
	UserID  int    `form:"user_id"`
	Type    string `form:"type"`
	From    string `form:"from"`
	To      string `form:"to"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

func (r listReq) toInput() transaction.ListInput {
	return transaction.ListInput{
		UserID:  r.UserID,
		Type:    model.TransactionType(r.Type),
		From:    r.From,
		To:      r.To,
		Page:    r.Page,
		PerPage: r.PerPage,
	}
}

type createReq struct {
	UserID      int     `json:"user_id"     binding:"required"`
	Type        string  `json:"type"        binding:"required,oneof=payment withdrawal"`
	Amount      float64 `json:"amount"      binding:"required,gt=0"`
	Description string  `json:"description"`
}

func (r createReq) toInput() transaction.CreateInput {
	return transaction.CreateInput{
		UserID:      r.UserID,
		Type:        model.TransactionType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
	}
}

type reportReq struct {
	From    string `form:"from"`
	To      string `form:"to"`
	GroupBy string `form:"group_by"`
}

func (r reportReq) toRange() model.ReportRange {
	return model.ReportRange{From: r.From, To: r.To, GroupBy: r.GroupBy}
}

// --- Response DTOs ---

type listResp struct {
	Transactions []model.Transaction `json:"transactions"`
	Pagination   model.Pagination    `json:"pagination"`
}

func newListResp(o transaction.ListOutput) listResp {
	txs := o.Transactions
	if txs == nil {
		txs = []model.Transaction{}
	}
	return listResp{Transactions: txs, Pagination: o.Pagination}
}

type reportResp struct {
	model.TransactionReport
	Extra map[string]any `json:"extra,omitempty"`
}

func newReportResp(r model.TransactionReport) reportResp {
	return reportResp{TransactionReport: r, Extra: r.Raw}
}
