package repository

// CreateOptions is the body of POST /expenses.
type CreateOptions struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}
