// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acmesoft/bizops-backend/internal/config"
	"github.com/acmesoft/bizops-backend/internal/handlers"
	"github.com/acmesoft/bizops-backend/internal/middleware"
	"github.com/acmesoft/bizops-backend/internal/services"
	"github.com/acmesoft/bizops-backend/internal/store"
)

// Initialize wires services and handlers around the given store and
// returns the configured engine.
func Initialize(st *store.MemStore, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	userService := services.NewUserService(st)
	productService := services.NewProductService(st)
	inventoryService := services.NewInventoryService(st)
	orderService := services.NewOrderService(st)
	metricsService := services.NewMetricsService(st)
	settingsService := services.NewSettingsService(st)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	orderHandler := handlers.NewOrderHandler(orderService)
	metricsHandler := handlers.NewMetricsHandler(metricsService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, storageService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Company settings
		company := api.Group("/company")
		{
			company.GET("", settingsHandler.GetCompanySettings)
			company.POST("", settingsHandler.UpdateCompanySettings)
			company.POST("/logo", middleware.UploadRateLimit(), settingsHandler.UploadLogo)
		}

		// User management
		users := api.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
		}

		// Products / inventory
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
		}
		api.GET("/inventory/alerts", inventoryHandler.GetInventoryAlerts)

		// Orders
		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/:id/items", orderHandler.GetOrderWithItems)
			orders.POST("", orderHandler.CreateOrder)
			orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
		}

		// Metrics
		metrics := api.Group("/metrics")
		{
			metrics.GET("/dashboard", metricsHandler.GetDashboardMetrics)
			metrics.GET("/sales", metricsHandler.GetSalesMetrics)
		}

		// Import/Export
		api.POST("/import/products", productHandler.ImportProducts)
		api.GET("/export/products", productHandler.ExportProducts)
		api.GET("/export/orders", orderHandler.ExportOrders)
	}

	return r, nil
}
