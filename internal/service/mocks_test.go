package service

import (
	"context"
	"sync"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
)

// mockCartRepo implements repository.CartRepository for testing.
type mockCartRepo struct {
	cart          *domain.Cart
	itemID        int64
	finalQuantity int64
	err           error

	addCalls    int
	updateCalls int
	removeCalls int
}

func (m *mockCartRepo) GetCart(context.Context, int64, int64) (*domain.Cart, error) {
	return m.cart, m.err
}

func (m *mockCartRepo) AddItem(context.Context, int64, int64, int64, int64) (int64, int64, error) {
	m.addCalls++
	return m.itemID, m.finalQuantity, m.err
}

func (m *mockCartRepo) UpdateItemQuantity(context.Context, int64, int64, int64) error {
	m.updateCalls++
	return m.err
}

func (m *mockCartRepo) RemoveItem(context.Context, int64, int64) error {
	m.removeCalls++
	return m.err
}

// mockOrderRepo implements repository.OrderRepository for testing.
type mockOrderRepo struct {
	order    *domain.Order
	detail   *domain.OrderWithItems
	orders   []*domain.Order
	returned []domain.OrderItem
	err      error

	checkoutCalls int
	returnCalls   int
	lastItemIDs   []int64
}

func (m *mockOrderRepo) Checkout(context.Context, int64, int64) (*domain.Order, error) {
	m.checkoutCalls++
	return m.order, m.err
}

func (m *mockOrderRepo) ReturnItems(_ context.Context, _, _ int64, itemIDs []int64) ([]domain.OrderItem, error) {
	m.returnCalls++
	m.lastItemIDs = itemIDs
	return m.returned, m.err
}

func (m *mockOrderRepo) GetOrderWithItems(context.Context, int64, int64) (*domain.OrderWithItems, error) {
	return m.detail, m.err
}

func (m *mockOrderRepo) ListOrdersByCustomer(context.Context, int64) ([]*domain.Order, error) {
	return m.orders, m.err
}

// mockInventoryRepo implements repository.InventoryRepository for testing.
type mockInventoryRepo struct {
	previous int64
	current  int64
	stock    int64
	err      error

	adjustCalls int
	upsertCalls int
	lastStoreID int64
	lastStock   int64
}

func (m *mockInventoryRepo) AdjustStock(context.Context, int64, int64, int64) (int64, int64, error) {
	m.adjustCalls++
	return m.previous, m.current, m.err
}

func (m *mockInventoryRepo) GetStock(context.Context, int64, int64) (int64, error) {
	return m.stock, m.err
}

func (m *mockInventoryRepo) UpsertStock(_ context.Context, storeID, _, stock int64) error {
	m.upsertCalls++
	m.lastStoreID = storeID
	m.lastStock = stock
	return m.err
}

// mockProductRepo implements repository.ProductRepository for testing.
type mockProductRepo struct {
	products []*domain.Product
	product  *domain.Product
	createID int64
	err      error

	getCalls    int
	createCalls int
	updateCalls int
	deleteCalls int
	lastUpdate  repository.ProductUpdate
}

func (m *mockProductRepo) ListProducts(context.Context, repository.ProductFilter) ([]*domain.Product, error) {
	return m.products, m.err
}

func (m *mockProductRepo) GetProduct(context.Context, int64) (*domain.Product, error) {
	m.getCalls++
	return m.product, m.err
}

func (m *mockProductRepo) CreateProduct(context.Context, *domain.Product) (int64, error) {
	m.createCalls++
	return m.createID, m.err
}

func (m *mockProductRepo) UpdateProduct(_ context.Context, _ int64, upd repository.ProductUpdate) error {
	m.updateCalls++
	m.lastUpdate = upd
	return m.err
}

func (m *mockProductRepo) DeleteProduct(context.Context, int64) error {
	m.deleteCalls++
	return m.err
}

// mockProductCache implements cache.ProductCache for testing. Set runs on a
// background goroutine in the service, so call counts are mutex-guarded and
// tests wait on setDone.
type mockProductCache struct {
	mu      sync.Mutex
	product *domain.Product
	getErr  error
	setErr  error
	delErr  error

	getCalls    int
	setCalls    int
	deleteCalls int
	setDone     chan struct{}
}

func (m *mockProductCache) Get(context.Context, int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.product, nil
}

func (m *mockProductCache) Set(context.Context, *domain.Product) error {
	m.mu.Lock()
	m.setCalls++
	m.mu.Unlock()
	if m.setDone != nil {
		close(m.setDone)
	}
	return m.setErr
}

func (m *mockProductCache) Delete(context.Context, int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	return m.delErr
}

func (m *mockProductCache) waitForSet(timeout time.Duration) bool {
	if m.setDone == nil {
		return false
	}
	select {
	case <-m.setDone:
		return true
	case <-time.After(timeout):
		return false
	}
}

// mockCustomerRepo implements repository.CustomerRepository for testing.
type mockCustomerRepo struct {
	user       *domain.User
	customer   *domain.Customer
	uid        int64
	customerID int64
	err        error

	createCalls   int
	updateCalls   int
	passwordCalls int
	createdUser   *domain.User
	newHash       string
	newSalt       string
}

func (m *mockCustomerRepo) CreateUserWithCustomer(_ context.Context, user *domain.User, _ *domain.Customer) (int64, int64, error) {
	m.createCalls++
	m.createdUser = user
	return m.uid, m.customerID, m.err
}

func (m *mockCustomerRepo) GetUserByName(context.Context, string) (*domain.User, error) {
	if m.user == nil && m.err == nil {
		return nil, repository.ErrUserNotFound
	}
	return m.user, m.err
}

func (m *mockCustomerRepo) GetCustomer(context.Context, int64) (*domain.Customer, error) {
	if m.customer == nil && m.err == nil {
		return nil, repository.ErrCustomerNotFound
	}
	return m.customer, m.err
}

func (m *mockCustomerRepo) GetCustomerByUID(context.Context, int64) (*domain.Customer, error) {
	if m.customer == nil && m.err == nil {
		return nil, repository.ErrCustomerNotFound
	}
	return m.customer, m.err
}

func (m *mockCustomerRepo) UpdateCustomer(context.Context, int64, repository.CustomerUpdate) error {
	m.updateCalls++
	return m.err
}

func (m *mockCustomerRepo) UpdatePassword(_ context.Context, _ int64, hash, salt string) error {
	m.passwordCalls++
	m.newHash = hash
	m.newSalt = salt
	return m.err
}

// mockStatsRepo implements repository.StatsRepository for testing.
type mockStatsRepo struct {
	sellers []repository.TopSeller
	region  *repository.RegionSales
	days    []repository.DailyRevenue
	err     error

	lastLimit int64
	lastStart time.Time
	lastEnd   time.Time
}

func (m *mockStatsRepo) TopSellers(_ context.Context, limit int64) ([]repository.TopSeller, error) {
	m.lastLimit = limit
	return m.sellers, m.err
}

func (m *mockStatsRepo) BestRegion(context.Context) (*repository.RegionSales, error) {
	return m.region, m.err
}

func (m *mockStatsRepo) DailyRevenue(_ context.Context, start, end time.Time) ([]repository.DailyRevenue, error) {
	m.lastStart = start
	m.lastEnd = end
	return m.days, m.err
}

// mockStoreRepo implements repository.StoreRepository for testing.
type mockStoreRepo struct {
	stores []*domain.Store
	err    error
}

func (m *mockStoreRepo) ListStores(context.Context) ([]*domain.Store, error) {
	return m.stores, m.err
}
