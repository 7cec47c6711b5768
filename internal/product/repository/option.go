package repository

// CreateOptions is the body of POST /products.
type CreateOptions struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// UpdateOptions is the body of PUT /products/:id.
type UpdateOptions struct {
	Name  string   `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
	Stock *int     `json:"stock,omitempty"`
}

// SellOptions is the body of POST /products/sell.
type SellOptions struct {
	ProductID int `json:"product_id"`
	UserID    int `json:"user_id"`
	Quantity  int `json:"quantity"`
}

// ConsumeOptions is the body of POST /products/consume.
type ConsumeOptions struct {
	ProductID    int `json:"product_id"`
	SubscriberID int `json:"subscriber_id"`
	Quantity     int `json:"quantity"`
}

// StockOptions is the body of PUT /products/:id/stock.
type StockOptions struct {
	Stock int `json:"stock"`
}
