package model

// Plan is a subscription plan.
type Plan struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	DurationDays int     `json:"duration_days"`
	Price        float64 `json:"price"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

// PlanRef is the embedded plan summary on subscribers.
type PlanRef struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
