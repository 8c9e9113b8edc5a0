// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmesoft/bizops-backend/internal/store"
)

func TestImportProductsContinuesIDSequence(t *testing.T) {
	st := store.New()
	svc := NewProductService(st)

	first := svc.CreateProduct(&CreateProductRequest{SKU: "AAA-001", Name: "Solo", Price: "10.00", Cost: "5.00"})
	assert.Equal(t, 1, first.ID)

	imported := svc.ImportProducts([]CreateProductRequest{
		{SKU: "BBB-002", Name: "Batch One", Price: "11.00", Cost: "5.50"},
		{SKU: "CCC-003", Name: "Batch Two", Price: "12.00", Cost: "6.00"},
		{SKU: "DDD-004", Name: "Batch Three", Price: "13.00", Cost: "6.50"},
	})

	// Bulk import mints ids exactly like single creates, in input order.
	require.Len(t, imported, 3)
	assert.Equal(t, 2, imported[0].ID)
	assert.Equal(t, "BBB-002", imported[0].SKU)
	assert.Equal(t, 3, imported[1].ID)
	assert.Equal(t, "CCC-003", imported[1].SKU)
	assert.Equal(t, 4, imported[2].ID)
	assert.Equal(t, "DDD-004", imported[2].SKU)

	all := st.GetAllProducts()
	require.Len(t, all, 4)

	after := svc.CreateProduct(&CreateProductRequest{SKU: "EEE-005", Name: "After", Price: "14.00", Cost: "7.00"})
	assert.Equal(t, 5, after.ID)
}

func TestCreateProductDefaultsReorderLevel(t *testing.T) {
	st := store.New()
	svc := NewProductService(st)

	product := svc.CreateProduct(&CreateProductRequest{SKU: "AAA-001", Name: "Widget", Price: "10.00", Cost: "5.00"})
	assert.Equal(t, defaultReorderLevel, product.ReorderLevel)

	level := 3
	product = svc.CreateProduct(&CreateProductRequest{SKU: "BBB-002", Name: "Gadget", Price: "10.00", Cost: "5.00", ReorderLevel: &level})
	assert.Equal(t, 3, product.ReorderLevel)

	got, err := st.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ExpiryDate)
}
