package repository

// ListOptions are the query parameters of GET /users.
type ListOptions struct {
	Page    int
	PerPage int
	Query   string
}

// CreateOptions is the body of POST /users.
type CreateOptions struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
	Phone    string `json:"phone,omitempty"`
}

// UpdateOptions is the body of PUT /users/:id.
type UpdateOptions struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Status string `json:"status,omitempty"`
}
