package repository

// FinancialOptions are the query parameters of GET /dashboard/financial.
type FinancialOptions struct {
	From    string
	To      string
	GroupBy string
}

// UsageOptions are the query parameters of GET /dashboard/usage.
type UsageOptions struct {
	WorkspaceID int
	From        string
	To          string
}
