// internal/store/seed.go
package store

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/acmesoft/bizops-backend/internal/models"
)

// Seed loads the demo dataset: an admin and a staff user, five products
// and four orders placed one day apart. Seed orders are written through
// the raw order primitives rather than the order transaction, so they
// do not decrement product stock.
func (s *MemStore) Seed() {
	s.seedUsers()
	s.seedProducts()
	s.seedOrders()

	logrus.WithFields(logrus.Fields{
		"users":    len(s.GetAllUsers()),
		"products": len(s.GetAllProducts()),
		"orders":   len(s.GetAllOrders()),
	}).Info("Demo data seeded")
}

func (s *MemStore) seedUsers() {
	demoUsers := []struct {
		username string
		password string
		fullName string
		email    string
		role     models.Role
	}{
		{"admin", "admin123", "Administrator", "admin@example.com", models.RoleAdmin},
		{"staff", "staff123", "Staff User", "staff@example.com", models.RoleStaff},
	}

	for _, du := range demoUsers {
		user := models.User{
			Username: du.username,
			FullName: du.fullName,
			Email:    du.email,
			Role:     du.role,
			Active:   true,
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(du.password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).WithField("username", du.username).Error("Failed to hash demo password")
			continue
		}
		user.PasswordHash = string(hash)
		s.CreateUser(user)
	}
}

func (s *MemStore) seedProducts() {
	expiring := time.Now().AddDate(0, 0, 30)

	demoProducts := []models.Product{
		{
			SKU:          "XYZ-123",
			Name:         "Premium Widget",
			Description:  "High-quality widget for industrial use",
			Category:     "Widgets",
			Price:        "29.99",
			Cost:         "15.50",
			Quantity:     5,
			ReorderLevel: 10,
		},
		{
			SKU:          "ABC-456",
			Name:         "Standard Gadget",
			Description:  "Reliable gadget for everyday use",
			Category:     "Gadgets",
			Price:        "19.99",
			Cost:         "10.25",
			Quantity:     30,
			ReorderLevel: 15,
			ExpiryDate:   &expiring,
		},
		{
			SKU:          "DEF-789",
			Name:         "Basic Tool",
			Description:  "Essential tool for all purposes",
			Category:     "Tools",
			Price:        "14.50",
			Cost:         "7.80",
			Quantity:     12,
			ReorderLevel: 15,
		},
		{
			SKU:          "GHI-101",
			Name:         "Advanced Component",
			Description:  "High-performance component",
			Category:     "Components",
			Price:        "45.00",
			Cost:         "28.50",
			Quantity:     25,
			ReorderLevel: 10,
		},
		{
			SKU:          "JKL-202",
			Name:         "Premium Accessory",
			Description:  "Luxury accessory item",
			Category:     "Accessories",
			Price:        "34.99",
			Cost:         "18.20",
			Quantity:     18,
			ReorderLevel: 8,
		},
	}

	for _, p := range demoProducts {
		s.CreateProduct(p)
	}
}

func (s *MemStore) seedOrders() {
	today := time.Now()

	demoOrders := []models.Order{
		{OrderNumber: "OR-1234", CustomerName: "Ryan Johnson", Status: models.OrderStatusCompleted, Total: "1250.00", Notes: "Priority delivery requested"},
		{OrderNumber: "OR-1233", CustomerName: "Maria Rodriguez", Status: models.OrderStatusProcessing, Total: "850.50"},
		{OrderNumber: "OR-1232", CustomerName: "David Chen", Status: models.OrderStatusPending, Total: "2100.00", Notes: "Include gift wrapping"},
		{OrderNumber: "OR-1231", CustomerName: "Sarah Thompson", Status: models.OrderStatusCompleted, Total: "475.25"},
	}

	products := s.GetAllProducts()

	for i, order := range demoOrders {
		// Each order is placed one day before the previous.
		order.Created = today.Add(-time.Duration(i) * 24 * time.Hour)
		created := s.CreateOrder(order)

		count := i + 1
		if count > len(products) {
			count = len(products)
		}

		items := make([]models.OrderItem, 0, count)
		for _, product := range products[:count] {
			quantity := rand.Intn(5) + 1
			price, _ := strconv.ParseFloat(product.Price, 64)
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  quantity,
				Price:     product.Price,
				Subtotal:  fmt.Sprintf("%.2f", price*float64(quantity)),
			})
		}
		s.CreateOrderItems(created.ID, items)
	}
}
