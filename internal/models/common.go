// internal/models/common.go
package models

// Role controls what a user may administer.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// OrderStatus follows the order lifecycle state machine enforced by the
// order service.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type AlertType string

const (
	AlertTypeLowStock   AlertType = "low_stock"
	AlertTypeExpiration AlertType = "expiration"
	AlertTypeReorder    AlertType = "reorder"
)

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)
