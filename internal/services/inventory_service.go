// internal/services/inventory_service.go
package services

import (
	"fmt"
	"time"

	"github.com/acmesoft/bizops-backend/internal/models"
	"github.com/acmesoft/bizops-backend/internal/store"
)

// InventoryService derives stock alerts from current product state.
type InventoryService struct {
	store *store.MemStore
}

func NewInventoryService(store *store.MemStore) *InventoryService {
	return &InventoryService{store: store}
}

// lowStockThreshold is an absolute floor, independent of each product's
// configured reorder level.
const lowStockThreshold = 5

// expirationWindow is how far ahead expiry dates are flagged.
const expirationWindow = 30 * 24 * time.Hour

// GetInventoryAlerts classifies every product into alert buckets and
// returns them concatenated in a fixed order: all low_stock alerts,
// then all expiration alerts, then all reorder alerts. Within a bucket
// products appear in ascending id order. Alert ids are synthetic and
// restart at 1 on every call; alerts are never persisted.
//
// The reorder rule requires quantity > 5 so a product already in the
// low_stock bucket is never double-flagged for reorder. A product can
// appear in both the low_stock and expiration buckets.
func (s *InventoryService) GetInventoryAlerts() []models.InventoryAlert {
	products := s.store.GetAllProducts()
	alerts := []models.InventoryAlert{}
	alertID := 1

	for _, product := range products {
		if product.Quantity <= lowStockThreshold {
			alerts = append(alerts, models.InventoryAlert{
				ID:          alertID,
				Type:        models.AlertTypeLowStock,
				ProductID:   product.ID,
				ProductName: product.Name,
				Message:     fmt.Sprintf("Low Stock Alert: %s has only %d units remaining", product.Name, product.Quantity),
				Quantity:    product.Quantity,
			})
			alertID++
		}
	}

	expiryCutoff := time.Now().Add(expirationWindow)
	for _, product := range products {
		if product.ExpiryDate != nil && !product.ExpiryDate.After(expiryCutoff) {
			alerts = append(alerts, models.InventoryAlert{
				ID:          alertID,
				Type:        models.AlertTypeExpiration,
				ProductID:   product.ID,
				ProductName: product.Name,
				Message:     fmt.Sprintf("Expiration Alert: %d units of %s will expire soon", product.Quantity, product.Name),
				Quantity:    product.Quantity,
				ExpiryDate:  product.ExpiryDate,
			})
			alertID++
		}
	}

	for _, product := range products {
		if product.Quantity <= product.ReorderLevel && product.Quantity > lowStockThreshold {
			alerts = append(alerts, models.InventoryAlert{
				ID:          alertID,
				Type:        models.AlertTypeReorder,
				ProductID:   product.ID,
				ProductName: product.Name,
				Message:     fmt.Sprintf("Reorder Reminder: %s is at reorder level", product.Name),
				Quantity:    product.Quantity,
			})
			alertID++
		}
	}

	return alerts
}
