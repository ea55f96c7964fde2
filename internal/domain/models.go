package domain

import "time"

// Product represents a catalog product
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Category      string    `json:"category"`
	Images        []string  `json:"images"`
	Stock         int       `json:"stock"`
	Supplier      string    `json:"supplier"` // temu, shein, aliexpress
	Tags          []string  `json:"tags"`
	Rating        float64   `json:"rating"`
	ReviewsCount  int       `json:"reviews_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// Category represents a catalog category
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
	ProductCount int    `json:"product_count"`
}

// Order represents a placed order. It is created once at submission and is
// immutable from the client's perspective apart from status updates server-side.
type Order struct {
	ID              string          `json:"id"`
	UserEmail       string          `json:"user_email"`
	UserName        string          `json:"user_name"`
	Items           []OrderItem     `json:"items"`
	Total           float64         `json:"total"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is a snapshot of one cart line item at submission time
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ShippingAddress is the denormalized shipping destination of an order
type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}
