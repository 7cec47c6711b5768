package workspace

type ListInput struct {
	Query string
}

type CreateInput struct {
	Name     string
	Location string
	Capacity int
}

// UpdateInput carries a partial update. Empty or nil fields are left untouched.
type UpdateInput struct {
	ID       int
	Name     string
	Location string
	Capacity *int
}
