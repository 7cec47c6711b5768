package model

// TransactionType is the direction of a money movement.
type TransactionType string

const (
	TransactionPayment    TransactionType = "payment"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// Valid reports whether t is one of the known types.
func (t TransactionType) Valid() bool {
	return t == TransactionPayment || t == TransactionWithdrawal
}

// Transaction is a payment or withdrawal.
type Transaction struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at,omitempty"`
	User        *UserRef        `json:"user,omitempty"`
}
