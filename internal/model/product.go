package model

// LowStockThreshold is the highest stock still reported as low.
const LowStockThreshold = 10

// Product is a sellable item kept in stock.
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// StockStatus labels the stock level of p.
func (p Product) StockStatus() string {
	switch {
	case p.Stock <= 0:
		return "Out of Stock"
	case p.Stock <= LowStockThreshold:
		return "Low Stock"
	default:
		return "In Stock"
	}
}
