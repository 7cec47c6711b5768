package repository

import "workspace-admin/internal/model"

// ListOptions are the query parameters of GET /transactions.
type ListOptions struct {
	UserID  int
	Type    model.TransactionType
	From    string
	To      string
	Page    int
	PerPage int
}

// CreateOptions is the body of POST /transactions.
type CreateOptions struct {
	UserID      int                   `json:"user_id"`
	Type        model.TransactionType `json:"type"`
	Amount      float64               `json:"amount"`
	Description string                `json:"description"`
}

// ReportOptions are the query parameters of GET /transactions/report.
type ReportOptions struct {
	From    string
	To      string
	GroupBy string
}
