package repository

// CreateOptions is the body of POST /plans.
type CreateOptions struct {
	Name         string  `json:"name"`
	DurationDays int     `json:"duration_days"`
	Price        float64 `json:"price"`
}

// UpdateOptions is the body of PUT /plans/:id.
type UpdateOptions struct {
	Name         string   `json:"name,omitempty"`
	DurationDays *int     `json:"duration_days,omitempty"`
	Price        *float64 `json:"price,omitempty"`
}
