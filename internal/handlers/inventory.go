// internal/handlers/inventory.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/acmesoft/bizops-backend/internal/services"
	"github.com/acmesoft/bizops-backend/internal/utils"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GET /api/inventory/alerts
func (h *InventoryHandler) GetInventoryAlerts(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"alerts": h.inventoryService.GetInventoryAlerts(),
	})
}
