// internal/handlers/order.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acmesoft/bizops-backend/internal/models"
	"github.com/acmesoft/bizops-backend/internal/services"
	"github.com/acmesoft/bizops-backend/internal/store"
	"github.com/acmesoft/bizops-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderPayload struct {
	Order services.CreateOrderRequest `json:"order"`
	Items []services.OrderItemRequest `json:"items" validate:"dive"`
}

type updateStatusPayload struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"orders": h.orderService.GetAllOrders(),
	})
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Order not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// GET /api/orders/:id/items
func (h *OrderHandler) GetOrderWithItems(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	result, err := h.orderService.GetOrderWithItems(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Order not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, result)
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload createOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequestResponse(c, "Invalid order data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&payload.Order)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}
	for i := range payload.Items {
		if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&payload.Items[i])); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
	}

	result, err := h.orderService.CreateOrder(&payload.Order, payload.Items)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, result)
}

// PUT /api/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequestResponse(c, "Invalid status data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&payload)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.NotFoundResponse(c, "Order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// GET /api/export/orders
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"orders": h.orderService.GetAllOrders(),
	})
}
