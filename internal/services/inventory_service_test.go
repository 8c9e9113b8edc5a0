// internal/services/inventory_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmesoft/bizops-backend/internal/models"
	"github.com/acmesoft/bizops-backend/internal/store"
)

func TestLowStockAlertSuppressesReorder(t *testing.T) {
	st := store.New()
	st.CreateProduct(models.Product{SKU: "XYZ-123", Name: "Premium Widget", Quantity: 5, ReorderLevel: 10})

	alerts := NewInventoryService(st).GetInventoryAlerts()

	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeLowStock, alerts[0].Type)
	assert.Equal(t, "Low Stock Alert: Premium Widget has only 5 units remaining", alerts[0].Message)
}

func TestReorderAlertAboveLowStockThreshold(t *testing.T) {
	st := store.New()
	st.CreateProduct(models.Product{SKU: "XYZ-123", Name: "Premium Widget", Quantity: 8, ReorderLevel: 10})

	alerts := NewInventoryService(st).GetInventoryAlerts()

	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeReorder, alerts[0].Type)
	assert.Equal(t, "Reorder Reminder: Premium Widget is at reorder level", alerts[0].Message)
}

func TestQuantityAboveReorderLevelYieldsNoAlert(t *testing.T) {
	st := store.New()
	st.CreateProduct(models.Product{SKU: "GHI-101", Name: "Advanced Component", Quantity: 25, ReorderLevel: 10})

	alerts := NewInventoryService(st).GetInventoryAlerts()
	assert.Empty(t, alerts)
}

func TestExpirationAlertIgnoresStockLevel(t *testing.T) {
	st := store.New()
	soon := time.Now().AddDate(0, 0, 10)
	st.CreateProduct(models.Product{SKU: "ABC-456", Name: "Standard Gadget", Quantity: 100, ReorderLevel: 15, ExpiryDate: &soon})

	alerts := NewInventoryService(st).GetInventoryAlerts()

	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeExpiration, alerts[0].Type)
	assert.Equal(t, "Expiration Alert: 100 units of Standard Gadget will expire soon", alerts[0].Message)
	require.NotNil(t, alerts[0].ExpiryDate)
}

func TestExpirationWindowBoundary(t *testing.T) {
	st := store.New()
	onBoundary := time.Now().AddDate(0, 0, 30)
	beyond := time.Now().AddDate(0, 0, 31)
	st.CreateProduct(models.Product{SKU: "A", Name: "Inside", Quantity: 50, ExpiryDate: &onBoundary})
	st.CreateProduct(models.Product{SKU: "B", Name: "Outside", Quantity: 50, ExpiryDate: &beyond})

	alerts := NewInventoryService(st).GetInventoryAlerts()

	require.Len(t, alerts, 1)
	assert.Equal(t, "Inside", alerts[0].ProductName)
}

func TestAlertBucketsConcatenateInFixedOrder(t *testing.T) {
	st := store.New()
	expiring := time.Now().AddDate(0, 0, 5)

	low := st.CreateProduct(models.Product{SKU: "A", Name: "Low", Quantity: 3, ReorderLevel: 10})
	expiringOnly := st.CreateProduct(models.Product{SKU: "B", Name: "Expiring", Quantity: 50, ReorderLevel: 10, ExpiryDate: &expiring})
	reorder := st.CreateProduct(models.Product{SKU: "C", Name: "Reorder", Quantity: 8, ReorderLevel: 10})
	lowAndExpiring := st.CreateProduct(models.Product{SKU: "D", Name: "Both", Quantity: 2, ReorderLevel: 10, ExpiryDate: &expiring})

	alerts := NewInventoryService(st).GetInventoryAlerts()

	require.Len(t, alerts, 5)
	assert.Equal(t, models.AlertTypeLowStock, alerts[0].Type)
	assert.Equal(t, low.ID, alerts[0].ProductID)
	assert.Equal(t, models.AlertTypeLowStock, alerts[1].Type)
	assert.Equal(t, lowAndExpiring.ID, alerts[1].ProductID)
	assert.Equal(t, models.AlertTypeExpiration, alerts[2].Type)
	assert.Equal(t, expiringOnly.ID, alerts[2].ProductID)
	assert.Equal(t, models.AlertTypeExpiration, alerts[3].Type)
	assert.Equal(t, lowAndExpiring.ID, alerts[3].ProductID)
	assert.Equal(t, models.AlertTypeReorder, alerts[4].Type)
	assert.Equal(t, reorder.ID, alerts[4].ProductID)

	// Alert ids restart at 1 on every call.
	for i, alert := range alerts {
		assert.Equal(t, i+1, alert.ID)
	}
	again := NewInventoryService(st).GetInventoryAlerts()
	assert.Equal(t, alerts, again)
}

func TestAlertsFollowQuantityChanges(t *testing.T) {
	st := store.New()
	svc := NewInventoryService(st)

	product := st.CreateProduct(models.Product{SKU: "XYZ-123", Name: "Premium Widget", Quantity: 5, ReorderLevel: 10})

	alerts := svc.GetInventoryAlerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeLowStock, alerts[0].Type)

	quantity := 8
	_, err := st.UpdateProduct(product.ID, models.ProductPatch{Quantity: &quantity})
	require.NoError(t, err)

	alerts = svc.GetInventoryAlerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeReorder, alerts[0].Type)
}
