// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acmesoft/bizops-backend/internal/services"
	"github.com/acmesoft/bizops-backend/internal/store"
	"github.com/acmesoft/bizops-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"products": h.productService.GetAllProducts(),
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid product data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product := h.productService.CreateProduct(&req)

	utils.CreatedResponse(c, gin.H{
		"product": product,
	})
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid product data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /api/import/products
func (h *ProductHandler) ImportProducts(c *gin.Context) {
	var reqs []services.CreateProductRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.BadRequestResponse(c, "Invalid import data", err.Error())
		return
	}

	for i := range reqs {
		if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&reqs[i])); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
	}

	imported := h.productService.ImportProducts(reqs)

	utils.SuccessResponse(c, gin.H{
		"message":  "Products imported successfully",
		"count":    len(imported),
		"products": imported,
	})
}

// GET /api/export/products
func (h *ProductHandler) ExportProducts(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"products": h.productService.GetAllProducts(),
	})
}
