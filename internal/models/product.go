// internal/models/product.go
package models

import "time"

// Product quantities are plain counters; the order transaction is the
// only writer that may decrement them.
type Product struct {
	ID           int        `json:"id"`
	SKU          string     `json:"sku"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category,omitempty"`
	Price        string     `json:"price"`
	Cost         string     `json:"cost"`
	Quantity     int        `json:"quantity"`
	ReorderLevel int        `json:"reorderLevel"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	Created      time.Time  `json:"created"`
}

type ProductPatch struct {
	SKU          *string    `json:"sku"`
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Category     *string    `json:"category"`
	Price        *string    `json:"price"`
	Cost         *string    `json:"cost"`
	Quantity     *int       `json:"quantity"`
	ReorderLevel *int       `json:"reorderLevel"`
	ExpiryDate   *time.Time `json:"expiryDate"`
}
