package transaction

import "workspace-admin/internal/model"

// ListInput filters the transaction list. From and To accept the same
// expressions as datemath.Calendar.Resolve.
type ListInput struct {
	UserID  int
	Type    model.TransactionType
	From    string
	To      string
	Page    int
	PerPage int
}

type ListOutput struct {
	Transactions []model.Transaction
	Pagination   model.Pagination
}

type CreateInput struct {
	UserID      int
	Type        model.TransactionType
	Amount      float64
	Description string
}
