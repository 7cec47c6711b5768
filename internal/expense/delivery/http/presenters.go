package http

import (
	"workspace-admin/internal/expense"
	"workspace-admin/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name        string  `json:"name"   binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

func (r createReq) toInput() expense.CreateInput {
	return expense.CreateInput{Name: r.Name, Amount: r.Amount, Description: r.Description}
}

// --- Response DTOs ---

type listResp struct {
	Expenses []model.Expense `json:"expenses"`
	Total    float64         `json:"total"`
}

func newListResp(expenses []model.Expense) listResp {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return listResp{Expenses: expenses, Total: model.TotalExpenses(expenses)}
}

type reportResp struct {
	model.ExpenseReport
	Extra map[string]any `json:"extra,omitempty"`
}

func newReportResp(rep model.ExpenseReport) reportResp {
	return reportResp{ExpenseReport: rep, Extra: rep.Raw}
}
