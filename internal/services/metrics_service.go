// internal/services/metrics_service.go
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/acmesoft/bizops-backend/internal/models"
	"github.com/acmesoft/bizops-backend/internal/store"
)

// Sales periods accepted by GetSalesMetrics. Callers must reject
// anything else before reaching the service.
const (
	Period7Days   = "7days"
	Period30Days  = "30days"
	Period90Days  = "90days"
	Period12Month = "12months"
)

// MetricsService aggregates dashboard figures and sales time series
// from order history.
type MetricsService struct {
	store *store.MemStore
	now   func() time.Time
}

func NewMetricsService(store *store.MemStore) *MetricsService {
	return &MetricsService{store: store, now: time.Now}
}

// GetDashboardMetrics produces the dashboard summary: total sales and
// order count over the full order history, live inventory and active
// user counts. Change percentages compare the trailing 30 days with
// the 30 days before that.
func (s *MetricsService) GetDashboardMetrics() models.DashboardMetrics {
	now := s.now()
	windowStart := now.AddDate(0, 0, -30)
	prevWindowStart := now.AddDate(0, 0, -60)

	orders := s.store.GetAllOrders()

	var totalSales, currentSales, previousSales float64
	var currentOrders, previousOrders float64
	for _, order := range orders {
		total, err := strconv.ParseFloat(order.Total, 64)
		if err != nil {
			continue
		}
		totalSales += total
		switch {
		case !order.Created.Before(windowStart):
			currentSales += total
			currentOrders++
		case !order.Created.Before(prevWindowStart):
			previousSales += total
			previousOrders++
		}
	}

	var currentUsers, previousUsers float64
	activeUsers := 0
	for _, user := range s.store.GetAllUsers() {
		if user.Active {
			activeUsers++
		}
		switch {
		case !user.Created.Before(windowStart):
			currentUsers++
		case !user.Created.Before(prevWindowStart):
			previousUsers++
		}
	}

	var currentProducts, previousProducts float64
	products := s.store.GetAllProducts()
	for _, product := range products {
		switch {
		case !product.Created.Before(windowStart):
			currentProducts++
		case !product.Created.Before(prevWindowStart):
			previousProducts++
		}
	}

	return models.DashboardMetrics{
		TotalSales: figure(formatCurrency(totalSales), currentSales, previousSales),
		Orders:     figure(len(orders), currentOrders, previousOrders),
		Inventory:  figure(len(products), currentProducts, previousProducts),
		Users:      figure(activeUsers, currentUsers, previousUsers),
	}
}

// GetSalesMetrics returns one data point per calendar day for the
// daily periods, or per calendar month for "12months", oldest first
// with no gaps, ending at the current day or month. Values are sums of
// order totals created within each bucket.
func (s *MetricsService) GetSalesMetrics(period string) []models.SalesDataPoint {
	if period == Period12Month {
		return s.monthlySales()
	}

	days := 30
	switch period {
	case Period7Days:
		days = 7
	case Period30Days:
		days = 30
	case Period90Days:
		days = 90
	}
	return s.dailySales(days)
}

func (s *MetricsService) dailySales(days int) []models.SalesDataPoint {
	now := s.now()
	totals := make(map[string]float64)
	for _, order := range s.store.GetAllOrders() {
		total, err := strconv.ParseFloat(order.Total, 64)
		if err != nil {
			continue
		}
		totals[order.Created.Format("2006-01-02")] += total
	}

	points := make([]models.SalesDataPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		points = append(points, models.SalesDataPoint{
			Date:  day.Format("Jan 02"),
			Value: totals[day.Format("2006-01-02")],
		})
	}
	return points
}

func (s *MetricsService) monthlySales() []models.SalesDataPoint {
	now := s.now()
	totals := make(map[string]float64)
	for _, order := range s.store.GetAllOrders() {
		total, err := strconv.ParseFloat(order.Total, 64)
		if err != nil {
			continue
		}
		totals[order.Created.Format("2006-01")] += total
	}

	// Anchor on the first of the month so subtracting months never
	// skips short months.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	points := make([]models.SalesDataPoint, 0, 12)
	for i := 11; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0)
		points = append(points, models.SalesDataPoint{
			Date:  month.Format("Jan 2006"),
			Value: totals[month.Format("2006-01")],
		})
	}
	return points
}

func figure(value any, current, previous float64) models.MetricFigure {
	change, trend := growth(current, previous)
	return models.MetricFigure{Value: value, Change: change, Trend: trend}
}

func growth(current, previous float64) (string, models.Trend) {
	if previous == 0 {
		if current > 0 {
			return "100%", models.TrendUp
		}
		return "0%", models.TrendUp
	}

	pct := (current - previous) / previous * 100
	trend := models.TrendUp
	if pct < 0 {
		trend = models.TrendDown
		pct = -pct
	}
	return fmt.Sprintf("%.0f%%", pct), trend
}

// formatCurrency renders totals like "$24,780.50".
func formatCurrency(amount float64) string {
	formatted := strconv.FormatFloat(amount, 'f', 2, 64)

	parts := strings.SplitN(formatted, ".", 2)
	whole := parts[0]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return "$" + grouped.String() + "." + parts[1]
}
