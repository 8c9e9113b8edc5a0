// internal/store/memstore.go
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/acmesoft/bizops-backend/internal/models"
)

// ErrNotFound is returned when a get or update names an id that was
// never issued or no longer resolves.
var ErrNotFound = errors.New("record not found")

// MemStore owns the lifetime of every entity record. Identifiers are
// minted sequentially per entity type starting at 1 and never reused
// within a process lifetime. A single mutex serializes mutations so
// compound operations such as CreateOrderWithItems are atomic.
//
// MemStore hands out copies; callers never hold references into the
// store's own records.
type MemStore struct {
	mu sync.RWMutex

	users      map[int]*models.User
	products   map[int]*models.Product
	orders     map[int]*models.Order
	orderItems map[int][]*models.OrderItem
	settings   models.CompanySettings

	userSeq      int
	productSeq   int
	orderSeq     int
	orderItemSeq int
}

// New constructs an empty store with default company settings. Callers
// own the instance and pass it to services explicitly; there is no
// package-level singleton.
func New() *MemStore {
	return &MemStore{
		users:      make(map[int]*models.User),
		products:   make(map[int]*models.Product),
		orders:     make(map[int]*models.Order),
		orderItems: make(map[int][]*models.OrderItem),
		settings: models.CompanySettings{
			ID:             1,
			Name:           "Acme Corporation",
			Logo:           "",
			PrimaryColor:   "#0078D4",
			SecondaryColor: "#106EBE",
			Modules:        []string{"dashboard", "inventory", "sales", "reports", "users", "settings"},
		},
	}
}

// User operations

func (s *MemStore) GetUser(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return *user, nil
}

func (s *MemStore) GetUserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return *user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemStore) GetAllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, id := range sortedKeys(s.users) {
		users = append(users, *s.users[id])
	}
	return users
}

func (s *MemStore) CreateUser(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createUserLocked(user)
}

func (s *MemStore) createUserLocked(user models.User) models.User {
	s.userSeq++
	user.ID = s.userSeq
	user.Created = time.Now()
	s.users[user.ID] = &user
	return user
}

func (s *MemStore) UpdateUser(id int, patch models.UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}
	return *user, nil
}

// Product operations

func (s *MemStore) GetProduct(id int) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return *product, nil
}

// GetAllProducts returns every product in ascending id order. The
// stable ordering keeps derived reads such as alert classification
// deterministic.
func (s *MemStore) GetAllProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.products))
	for _, id := range sortedKeys(s.products) {
		products = append(products, *s.products[id])
	}
	return products
}

func (s *MemStore) CreateProduct(product models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createProductLocked(product)
}

func (s *MemStore) createProductLocked(product models.Product) models.Product {
	s.productSeq++
	product.ID = s.productSeq
	product.Created = time.Now()
	s.products[product.ID] = &product
	return product
}

func (s *MemStore) UpdateProduct(id int, patch models.ProductPatch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}

	if patch.SKU != nil {
		product.SKU = *patch.SKU
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Cost != nil {
		product.Cost = *patch.Cost
	}
	if patch.Quantity != nil {
		product.Quantity = *patch.Quantity
	}
	if patch.ReorderLevel != nil {
		product.ReorderLevel = *patch.ReorderLevel
	}
	if patch.ExpiryDate != nil {
		product.ExpiryDate = patch.ExpiryDate
	}
	return *product, nil
}

// Order operations

func (s *MemStore) GetOrder(id int) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return *order, nil
}

func (s *MemStore) GetAllOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, id := range sortedKeys(s.orders) {
		orders = append(orders, *s.orders[id])
	}
	return orders
}

func (s *MemStore) GetOrderItems(orderID int) []models.OrderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.OrderItem, 0, len(s.orderItems[orderID]))
	for _, item := range s.orderItems[orderID] {
		items = append(items, *item)
	}
	return items
}

// CreateOrder stores a bare order without line items or inventory
// effects. The order transaction and the seeder compose it with
// CreateOrderItems.
func (s *MemStore) CreateOrder(order models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createOrderLocked(order)
}

func (s *MemStore) createOrderLocked(order models.Order) models.Order {
	s.orderSeq++
	order.ID = s.orderSeq
	if order.Created.IsZero() {
		order.Created = time.Now()
	}
	s.orders[order.ID] = &order
	return order
}

// CreateOrderItems mints ids for the given items, stamps the owning
// order id, and stores them. Inventory is not touched.
func (s *MemStore) CreateOrderItems(orderID int, items []models.OrderItem) []models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createOrderItemsLocked(orderID, items)
}

func (s *MemStore) createOrderItemsLocked(orderID int, items []models.OrderItem) []models.OrderItem {
	created := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		s.orderItemSeq++
		item.ID = s.orderItemSeq
		item.OrderID = orderID
		stored := item
		s.orderItems[orderID] = append(s.orderItems[orderID], &stored)
		created = append(created, item)
	}
	return created
}

// CreateOrderWithItems runs the order transaction under a single lock
// acquisition: the order and its items are stored and each referenced
// product's quantity is decremented by the item quantity, exactly once.
// Items naming a product that does not exist skip the decrement; their
// product ids are returned so the caller can log the inconsistency.
func (s *MemStore) CreateOrderWithItems(order models.Order, items []models.OrderItem) (models.Order, []models.OrderItem, []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdOrder := s.createOrderLocked(order)
	createdItems := s.createOrderItemsLocked(createdOrder.ID, items)

	var missing []int
	for _, item := range createdItems {
		product, ok := s.products[item.ProductID]
		if !ok {
			missing = append(missing, item.ProductID)
			continue
		}
		product.Quantity -= item.Quantity
	}
	return createdOrder, createdItems, missing
}

// UpdateOrderStatus replaces only the status field. Transition rules
// live in the order service; the store applies whatever it is handed.
func (s *MemStore) UpdateOrderStatus(id int, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	order.Status = status
	return *order, nil
}

// Company settings

func (s *MemStore) GetCompanySettings() models.CompanySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copySettingsLocked()
}

// UpdateCompanySettings merges the patch into the singleton record and
// always succeeds.
func (s *MemStore) UpdateCompanySettings(patch models.SettingsPatch) models.CompanySettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Name != nil {
		s.settings.Name = *patch.Name
	}
	if patch.Logo != nil {
		s.settings.Logo = *patch.Logo
	}
	if patch.PrimaryColor != nil {
		s.settings.PrimaryColor = *patch.PrimaryColor
	}
	if patch.SecondaryColor != nil {
		s.settings.SecondaryColor = *patch.SecondaryColor
	}
	if patch.Modules != nil {
		s.settings.Modules = append([]string(nil), (*patch.Modules)...)
	}
	return s.copySettingsLocked()
}

func (s *MemStore) copySettingsLocked() models.CompanySettings {
	settings := s.settings
	settings.Modules = append([]string(nil), s.settings.Modules...)
	return settings
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
