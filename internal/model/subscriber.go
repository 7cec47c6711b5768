package model

// SubscriberStatus is the lifecycle state of a subscription.
type SubscriberStatus string

const (
	SubscriberActive    SubscriberStatus = "active"
	SubscriberExpired   SubscriberStatus = "expired"
	SubscriberSuspended SubscriberStatus = "suspended"
)

// Subscriber is a user holding a plan between two dates.
type Subscriber struct {
	ID        int              `json:"id"`
	UserID    int              `json:"user_id"`
	PlanID    int              `json:"plan_id"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Status    SubscriberStatus `json:"status"`
	User      *UserRef         `json:"user,omitempty"`
	Plan      *PlanRef         `json:"plan,omitempty"`
}
