package repository

// CreateOptions is the body of POST /workspaces.
type CreateOptions struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

// UpdateOptions is the body of PUT /workspaces/:id.
type UpdateOptions struct {
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
	Capacity *int   `json:"capacity,omitempty"`
}
