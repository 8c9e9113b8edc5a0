// internal/models/order.go
package models

import "time"

type Order struct {
	ID           int         `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	CustomerID   *int        `json:"customerId,omitempty"`
	CustomerName string      `json:"customerName"`
	Status       OrderStatus `json:"status"`
	Total        string      `json:"total"`
	Notes        string      `json:"notes,omitempty"`
	Created      time.Time   `json:"created"`
}

// OrderItem is owned by its order and immutable once created. Price and
// subtotal snapshot the product price at order time.
type OrderItem struct {
	ID        int    `json:"id"`
	OrderID   int    `json:"orderId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Subtotal  string `json:"subtotal"`
}

// OrderWithItems is the order transaction result.
type OrderWithItems struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}
