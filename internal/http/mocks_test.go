package http

import (
	"context"
	"net/http"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
	"github.com/ckrskrrr/JellyDog/internal/service"
	"github.com/go-chi/chi/v5"
)

// withPathParam injects a chi URL parameter the way the router would.
func withPathParam(r *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type CartServiceMock struct {
	result *service.AddToCartResult
	cart   *domain.Cart
	err    error

	lastQuantity int64
}

func (m *CartServiceMock) AddToCart(_ context.Context, _, _, _, quantity int64) (*service.AddToCartResult, error) {
	m.lastQuantity = quantity
	return m.result, m.err
}

func (m *CartServiceMock) UpdateItem(context.Context, int64, int64, int64) error {
	return m.err
}

func (m *CartServiceMock) RemoveItem(context.Context, int64, int64) error {
	return m.err
}

func (m *CartServiceMock) GetCart(context.Context, int64, int64) (*domain.Cart, error) {
	return m.cart, m.err
}

type CheckoutServiceMock struct {
	order  *domain.Order
	detail *domain.OrderWithItems
	orders []*domain.Order
	err    error
}

func (m *CheckoutServiceMock) Checkout(context.Context, int64, int64) (*domain.Order, error) {
	return m.order, m.err
}

func (m *CheckoutServiceMock) GetOrder(context.Context, int64, int64) (*domain.OrderWithItems, error) {
	return m.detail, m.err
}

func (m *CheckoutServiceMock) ListOrders(context.Context, int64) ([]*domain.Order, error) {
	return m.orders, m.err
}

type ReturnServiceMock struct {
	returned []domain.OrderItem
	err      error

	lastOrderID int64
	lastItemIDs []int64
}

func (m *ReturnServiceMock) ReturnItems(_ context.Context, orderID, _ int64, itemIDs []int64) ([]domain.OrderItem, error) {
	m.lastOrderID = orderID
	m.lastItemIDs = itemIDs
	return m.returned, m.err
}

type InventoryServiceMock struct {
	result *service.AdjustResult
	err    error

	calls int
}

func (m *InventoryServiceMock) Adjust(context.Context, int64, int64, int64) (*service.AdjustResult, error) {
	m.calls++
	return m.result, m.err
}

type ProductAdminServiceMock struct {
	product *domain.Product
	err     error

	updateCalls int
	deleteCalls int
	lastUpdate  service.UpdateProductInput
}

func (m *ProductAdminServiceMock) Create(context.Context, service.CreateProductInput) (*domain.Product, error) {
	return m.product, m.err
}

func (m *ProductAdminServiceMock) Update(_ context.Context, _ int64, in service.UpdateProductInput) error {
	m.updateCalls++
	m.lastUpdate = in
	return m.err
}

func (m *ProductAdminServiceMock) Delete(context.Context, int64) error {
	m.deleteCalls++
	return m.err
}

type ProductServiceMock struct {
	products []*domain.Product
	product  *domain.Product
	err      error

	lastFilter repository.ProductFilter
}

func (m *ProductServiceMock) List(_ context.Context, filter repository.ProductFilter) ([]*domain.Product, error) {
	m.lastFilter = filter
	return m.products, m.err
}

func (m *ProductServiceMock) Get(context.Context, int64) (*domain.Product, error) {
	return m.product, m.err
}

type StoreServiceMock struct {
	stores []*domain.Store
	err    error
}

func (m *StoreServiceMock) List(context.Context) ([]*domain.Store, error) {
	return m.stores, m.err
}

type AuthServiceMock struct {
	registered *service.RegisterResult
	login      *service.LoginResult
	err        error
}

func (m *AuthServiceMock) Register(context.Context, service.RegisterInput) (*service.RegisterResult, error) {
	return m.registered, m.err
}

func (m *AuthServiceMock) Login(context.Context, string, string) (*service.LoginResult, error) {
	return m.login, m.err
}

func (m *AuthServiceMock) ChangePassword(context.Context, string, string, string) error {
	return m.err
}

type CustomerServiceMock struct {
	customer *domain.Customer
	err      error
}

func (m *CustomerServiceMock) GetProfile(context.Context, int64) (*domain.Customer, error) {
	return m.customer, m.err
}

func (m *CustomerServiceMock) UpdateProfile(context.Context, int64, repository.CustomerUpdate) (*domain.Customer, error) {
	return m.customer, m.err
}

type StatsServiceMock struct {
	sellers []repository.TopSeller
	region  *repository.RegionSales
	days    []repository.DailyRevenue
	err     error

	lastLimit int64
}

func (m *StatsServiceMock) TopSellers(_ context.Context, limit int64) ([]repository.TopSeller, error) {
	m.lastLimit = limit
	return m.sellers, m.err
}

func (m *StatsServiceMock) BestRegion(context.Context) (*repository.RegionSales, error) {
	return m.region, m.err
}

func (m *StatsServiceMock) DailyRevenue(context.Context, string, string) ([]repository.DailyRevenue, error) {
	return m.days, m.err
}
