// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/acmesoft/bizops-backend/internal/models"
	"github.com/acmesoft/bizops-backend/internal/store"
	"github.com/acmesoft/bizops-backend/internal/utils"
)

// ErrInvalidTransition is returned when an order status update names a
// status the current state cannot move to.
var ErrInvalidTransition = errors.New("invalid order status transition")

// statusTransitions is the explicit order lifecycle: orders move
// forward through processing to completed, and may be cancelled while
// still pending or processing. Completed and cancelled are terminal.
var statusTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:    {models.OrderStatusProcessing, models.OrderStatusCancelled},
	models.OrderStatusProcessing: {models.OrderStatusCompleted, models.OrderStatusCancelled},
	models.OrderStatusCompleted:  {},
	models.OrderStatusCancelled:  {},
}

type OrderService struct {
	store *store.MemStore
}

func NewOrderService(store *store.MemStore) *OrderService {
	return &OrderService{store: store}
}

type CreateOrderRequest struct {
	OrderNumber  string `json:"orderNumber" validate:"omitempty,max=50"`
	CustomerID   *int   `json:"customerId"`
	CustomerName string `json:"customerName" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=pending processing completed cancelled"`
	Total        string `json:"total" validate:"required,decimal"`
	Notes        string `json:"notes"`
}

type OrderItemRequest struct {
	ProductID int    `json:"productId" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Price     string `json:"price" validate:"required,decimal"`
	Subtotal  string `json:"subtotal" validate:"required,decimal"`
}

// CreateOrder runs the order transaction: the order and its line items
// are stored and each referenced product's quantity is decremented by
// the item quantity, all under a single store lock so concurrent orders
// against the same product cannot race.
//
// Items referencing a product that does not exist keep their record but
// skip the inventory decrement; the inconsistency is logged rather than
// rejected, preserving the permissive contract of the original system.
func (s *OrderService) CreateOrder(req *CreateOrderRequest, itemReqs []OrderItemRequest) (*models.OrderWithItems, error) {
	orderNumber := req.OrderNumber
	if orderNumber == "" {
		generated, err := utils.GenerateOrderNumber()
		if err != nil {
			return nil, fmt.Errorf("generate order number: %w", err)
		}
		orderNumber = generated
	}

	status := models.OrderStatus(req.Status)
	if status == "" {
		status = models.OrderStatusPending
	}

	order := models.Order{
		OrderNumber:  orderNumber,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Status:       status,
		Total:        req.Total,
		Notes:        req.Notes,
	}

	items := make([]models.OrderItem, 0, len(itemReqs))
	for _, item := range itemReqs {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		})
	}

	createdOrder, createdItems, missing := s.store.CreateOrderWithItems(order, items)
	for _, productID := range missing {
		logrus.WithFields(logrus.Fields{
			"order_id":   createdOrder.ID,
			"product_id": productID,
		}).Warn("Order item references unknown product; inventory decrement skipped")
	}

	return &models.OrderWithItems{Order: createdOrder, Items: createdItems}, nil
}

// UpdateOrderStatus applies a status change after checking it against
// the transition table. The store is only touched on a legal move.
func (s *OrderService) UpdateOrderStatus(id int, status models.OrderStatus) (models.Order, error) {
	order, err := s.store.GetOrder(id)
	if err != nil {
		return models.Order{}, err
	}

	allowed := statusTransitions[order.Status]
	for _, next := range allowed {
		if next == status {
			return s.store.UpdateOrderStatus(id, status)
		}
	}
	return models.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
}

func (s *OrderService) GetOrder(id int) (models.Order, error) {
	return s.store.GetOrder(id)
}

func (s *OrderService) GetOrderWithItems(id int) (*models.OrderWithItems, error) {
	order, err := s.store.GetOrder(id)
	if err != nil {
		return nil, err
	}
	return &models.OrderWithItems{Order: order, Items: s.store.GetOrderItems(order.ID)}, nil
}

func (s *OrderService) GetAllOrders() []models.Order {
	return s.store.GetAllOrders()
}
