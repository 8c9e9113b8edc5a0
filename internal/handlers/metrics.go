// internal/handlers/metrics.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/acmesoft/bizops-backend/internal/services"
	"github.com/acmesoft/bizops-backend/internal/utils"
)

type MetricsHandler struct {
	metricsService *services.MetricsService
}

func NewMetricsHandler(metricsService *services.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

// GET /api/metrics/dashboard
func (h *MetricsHandler) GetDashboardMetrics(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"metrics": h.metricsService.GetDashboardMetrics(),
	})
}

// GET /api/metrics/sales?period=7days|30days|90days|12months
func (h *MetricsHandler) GetSalesMetrics(c *gin.Context) {
	period := c.DefaultQuery("period", services.Period30Days)

	switch period {
	case services.Period7Days, services.Period30Days, services.Period90Days, services.Period12Month:
	default:
		utils.BadRequestResponse(c, "Invalid period parameter", nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"sales": h.metricsService.GetSalesMetrics(period),
	})
}
