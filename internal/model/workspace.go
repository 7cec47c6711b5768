package model

// Workspace is a bookable location.
type Workspace struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at,omitempty"`
}

// WorkspaceRef is the embedded workspace summary on bookings.
type WorkspaceRef struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}
