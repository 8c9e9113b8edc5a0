// internal/services/product_service.go
package services

import (
	"time"

	"github.com/acmesoft/bizops-backend/internal/models"
	"github.com/acmesoft/bizops-backend/internal/store"
)

const defaultReorderLevel = 10

type ProductService struct {
	store *store.MemStore
}

func NewProductService(store *store.MemStore) *ProductService {
	return &ProductService{store: store}
}

type CreateProductRequest struct {
	SKU          string     `json:"sku" validate:"required,max=50"`
	Name         string     `json:"name" validate:"required,max=255"`
	Description  string     `json:"description"`
	Category     string     `json:"category" validate:"omitempty,max=100"`
	Price        string     `json:"price" validate:"required,decimal"`
	Cost         string     `json:"cost" validate:"required,decimal"`
	Quantity     int        `json:"quantity"`
	ReorderLevel *int       `json:"reorderLevel"`
	ExpiryDate   *time.Time `json:"expiryDate"`
}

type UpdateProductRequest struct {
	SKU          *string    `json:"sku" validate:"omitempty,max=50"`
	Name         *string    `json:"name" validate:"omitempty,max=255"`
	Description  *string    `json:"description"`
	Category     *string    `json:"category" validate:"omitempty,max=100"`
	Price        *string    `json:"price" validate:"omitempty,decimal"`
	Cost         *string    `json:"cost" validate:"omitempty,decimal"`
	Quantity     *int       `json:"quantity"`
	ReorderLevel *int       `json:"reorderLevel"`
	ExpiryDate   *time.Time `json:"expiryDate"`
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) models.Product {
	reorderLevel := defaultReorderLevel
	if req.ReorderLevel != nil {
		reorderLevel = *req.ReorderLevel
	}

	return s.store.CreateProduct(models.Product{
		SKU:          req.SKU,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Cost:         req.Cost,
		Quantity:     req.Quantity,
		ReorderLevel: reorderLevel,
		ExpiryDate:   req.ExpiryDate,
	})
}

func (s *ProductService) UpdateProduct(id int, req *UpdateProductRequest) (models.Product, error) {
	return s.store.UpdateProduct(id, models.ProductPatch{
		SKU:          req.SKU,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Cost:         req.Cost,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		ExpiryDate:   req.ExpiryDate,
	})
}

func (s *ProductService) GetProduct(id int) (models.Product, error) {
	return s.store.GetProduct(id)
}

func (s *ProductService) GetAllProducts() []models.Product {
	return s.store.GetAllProducts()
}

// ImportProducts creates every product in input order with the same id
// minting as single creates.
func (s *ProductService) ImportProducts(reqs []CreateProductRequest) []models.Product {
	imported := make([]models.Product, 0, len(reqs))
	for i := range reqs {
		imported = append(imported, s.CreateProduct(&reqs[i]))
	}
	return imported
}
