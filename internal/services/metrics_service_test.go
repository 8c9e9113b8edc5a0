// internal/services/metrics_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmesoft/bizops-backend/internal/models"
	"github.com/acmesoft/bizops-backend/internal/store"
)

func fixedMetricsService(st *store.MemStore, at time.Time) *MetricsService {
	svc := NewMetricsService(st)
	svc.now = func() time.Time { return at }
	return svc
}

func TestDailySalesSeriesShape(t *testing.T) {
	st := store.New()
	at := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	st.CreateOrder(models.Order{OrderNumber: "OR-1", CustomerName: "A", Status: models.OrderStatusCompleted, Total: "49.50", Created: at})
	st.CreateOrder(models.Order{OrderNumber: "OR-2", CustomerName: "B", Status: models.OrderStatusCompleted, Total: "100.50", Created: at.AddDate(0, 0, -1)})
	st.CreateOrder(models.Order{OrderNumber: "OR-3", CustomerName: "C", Status: models.OrderStatusCompleted, Total: "10.00", Created: at.AddDate(0, 0, -14)})

	points := fixedMetricsService(st, at).GetSalesMetrics(Period7Days)

	require.Len(t, points, 7)
	assert.Equal(t, "May 09", points[0].Date)
	assert.Equal(t, "May 15", points[6].Date)
	assert.Equal(t, 49.5, points[6].Value)
	assert.Equal(t, 100.5, points[5].Value)
	// Order outside the window is excluded.
	for _, p := range points[:5] {
		assert.Zero(t, p.Value)
	}
}

func TestDailySalesAggregatesSameDayOrders(t *testing.T) {
	st := store.New()
	at := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	st.CreateOrder(models.Order{OrderNumber: "OR-1", CustomerName: "A", Status: models.OrderStatusCompleted, Total: "20.00", Created: at})
	st.CreateOrder(models.Order{OrderNumber: "OR-2", CustomerName: "B", Status: models.OrderStatusCompleted, Total: "30.00", Created: at.Add(-2 * time.Hour)})

	points := fixedMetricsService(st, at).GetSalesMetrics(Period30Days)

	require.Len(t, points, 30)
	assert.Equal(t, 50.0, points[29].Value)
}

func TestNinetyDaySalesSeriesLength(t *testing.T) {
	st := store.New()
	at := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	points := fixedMetricsService(st, at).GetSalesMetrics(Period90Days)
	require.Len(t, points, 90)
	assert.Equal(t, "May 15", points[89].Date)
}

func TestMonthlySalesSeries(t *testing.T) {
	st := store.New()
	at := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	st.CreateOrder(models.Order{OrderNumber: "OR-1", CustomerName: "A", Status: models.OrderStatusCompleted, Total: "200.00", Created: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)})
	st.CreateOrder(models.Order{OrderNumber: "OR-2", CustomerName: "B", Status: models.OrderStatusCompleted, Total: "125.50", Created: at})

	points := fixedMetricsService(st, at).GetSalesMetrics(Period12Month)

	require.Len(t, points, 12)
	assert.Equal(t, "Jun 2023", points[0].Date)
	assert.Equal(t, "May 2024", points[11].Date)
	assert.Equal(t, 200.0, points[8].Value)
	assert.Equal(t, 125.5, points[11].Value)
}

func TestDashboardMetrics(t *testing.T) {
	st := store.New()
	now := time.Now()

	st.CreateOrder(models.Order{OrderNumber: "OR-1", CustomerName: "A", Status: models.OrderStatusCompleted, Total: "100.00", Created: now.AddDate(0, 0, -10)})
	st.CreateOrder(models.Order{OrderNumber: "OR-2", CustomerName: "B", Status: models.OrderStatusCompleted, Total: "50.00", Created: now.AddDate(0, 0, -40)})
	st.CreateUser(models.User{Username: "admin", FullName: "Administrator", Role: models.RoleAdmin, Active: true})
	st.CreateUser(models.User{Username: "former", FullName: "Former Staff", Role: models.RoleStaff, Active: false})
	st.CreateProduct(models.Product{SKU: "A", Name: "A", Quantity: 10})

	m := NewMetricsService(st).GetDashboardMetrics()

	assert.Equal(t, "$150.00", m.TotalSales.Value)
	assert.Equal(t, "100%", m.TotalSales.Change)
	assert.Equal(t, models.TrendUp, m.TotalSales.Trend)

	assert.Equal(t, 2, m.Orders.Value)
	assert.Equal(t, "0%", m.Orders.Change)

	assert.Equal(t, 1, m.Inventory.Value)
	assert.Equal(t, 1, m.Users.Value)
}

func TestGrowth(t *testing.T) {
	change, trend := growth(0, 0)
	assert.Equal(t, "0%", change)
	assert.Equal(t, models.TrendUp, trend)

	change, trend = growth(10, 0)
	assert.Equal(t, "100%", change)
	assert.Equal(t, models.TrendUp, trend)

	change, trend = growth(150, 100)
	assert.Equal(t, "50%", change)
	assert.Equal(t, models.TrendUp, trend)

	change, trend = growth(50, 100)
	assert.Equal(t, "50%", change)
	assert.Equal(t, models.TrendDown, trend)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", formatCurrency(0))
	assert.Equal(t, "$150.00", formatCurrency(150))
	assert.Equal(t, "$24,780.50", formatCurrency(24780.5))
	assert.Equal(t, "$1,234,567.89", formatCurrency(1234567.89))
}
