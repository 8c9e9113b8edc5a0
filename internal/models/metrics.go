// internal/models/metrics.go
package models

import "time"

// InventoryAlert is derived from product state on every read and is not
// persisted; ids restart at 1 per classification run.
type InventoryAlert struct {
	ID          int        `json:"id"`
	Type        AlertType  `json:"type"`
	ProductID   int        `json:"productId"`
	ProductName string     `json:"productName"`
	Message     string     `json:"message"`
	Quantity    int        `json:"quantity"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
}

// MetricFigure holds a dashboard figure with its period-over-period
// change. Value is a formatted string for money figures and a plain
// count otherwise, matching the dashboard wire contract.
type MetricFigure struct {
	Value  any    `json:"value"`
	Change string `json:"change"`
	Trend  Trend  `json:"trend"`
}

type DashboardMetrics struct {
	TotalSales MetricFigure `json:"totalSales"`
	Orders     MetricFigure `json:"orders"`
	Inventory  MetricFigure `json:"inventory"`
	Users      MetricFigure `json:"users"`
}

type SalesDataPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
