package expense

type ListInput struct {
	Query string
}

type CreateInput struct {
	Name        string
	Amount      float64
	Description string
}
