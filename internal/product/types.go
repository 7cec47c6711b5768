package product

type ListInput struct {
	Query string
}

type CreateInput struct {
	Name  string
	Price float64
	Stock int
}

// UpdateInput carries a partial update. Empty or nil fields are left untouched.
type UpdateInput struct {
	ID    int
	Name  string
	Price *float64
	Stock *int
}

// SellInput sells Quantity items of a product to a user.
type SellInput struct {
	ProductID int
	UserID    int
	Quantity  int
}

// ConsumeInput records Quantity items used by a subscriber.
type ConsumeInput struct {
	ProductID    int
	SubscriberID int
	Quantity     int
}

type StockInput struct {
	ID    int
	Stock int
}
