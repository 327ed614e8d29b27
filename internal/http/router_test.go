package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
	"github.com/ckrskrrr/JellyDog/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() http.Handler {
	orderID := int64(1)
	return NewRouter(RouterConfig{
		RequestTimeout: 5 * time.Second,
		Carts: &CartServiceMock{
			cart:   &domain.Cart{OrderID: &orderID, Items: []domain.OrderItemDetail{}},
			result: &service.AddToCartResult{OrderItemID: 1, ProductID: 1, Quantity: 1},
		},
		Checkout:  &CheckoutServiceMock{order: &domain.Order{ID: 1}, orders: []*domain.Order{}},
		Returns:   &ReturnServiceMock{returned: []domain.OrderItem{}},
		Inventory: &InventoryServiceMock{result: &service.AdjustResult{Success: true}},
		Products:  &ProductServiceMock{products: []*domain.Product{}, product: &domain.Product{ID: 1}},
		Admin:     &ProductAdminServiceMock{product: &domain.Product{ID: 1}},
		Stores:    &StoreServiceMock{stores: []*domain.Store{}},
		Auth: &AuthServiceMock{
			registered: &service.RegisterResult{UID: 1, CustomerID: 1},
			login:      &service.LoginResult{UID: 1, CustomerID: 1},
		},
		Customers: &CustomerServiceMock{customer: &domain.Customer{ID: 1}},
		Stats: &StatsServiceMock{
			sellers: []repository.TopSeller{},
			region:  &repository.RegionSales{},
			days:    []repository.DailyRevenue{},
		},
	})
}

func TestRouter_RouteTable(t *testing.T) {
	router := testRouter()

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/cart?customer_id=1&store_id=1", "", http.StatusOK},
		{"POST", "/cart/add_to_cart", `{"customer_id":1,"store_id":1,"product_id":1}`, http.StatusCreated},
		{"PUT", "/cart/items/1", `{"customer_id":1,"quantity":2}`, http.StatusOK},
		{"DELETE", "/cart/items/1?customer_id=1", "", http.StatusOK},
		{"GET", "/orders?customer_id=1", "", http.StatusOK},
		{"POST", "/orders/checkout", `{"customer_id":1,"store_id":1}`, http.StatusOK},
		{"GET", "/orders/1?customer_id=1", "", http.StatusOK},
		{"POST", "/orders/1/return", `{"customer_id":1,"order_item_ids":[1]}`, http.StatusOK},
		{"POST", "/admin/inventory/adjust", `{"store_id":1,"product_id":1,"adjustment":1}`, http.StatusOK},
		{"POST", "/admin/products", `{"product_name":"n","category":"c","price":1}`, http.StatusCreated},
		{"PATCH", "/admin/products/1", `{"price":2}`, http.StatusOK},
		{"DELETE", "/admin/products/1", "", http.StatusOK},
		{"GET", "/products", "", http.StatusOK},
		{"GET", "/products/1", "", http.StatusOK},
		{"GET", "/stores", "", http.StatusOK},
		{"POST", "/auth/register", `{"user_name":"u","password":"p","customer_name":"c"}`, http.StatusCreated},
		{"POST", "/auth/login", `{"user_name":"u","password":"p"}`, http.StatusOK},
		{"POST", "/auth/change_password", `{"user_name":"u","old_password":"o","new_password":"n"}`, http.StatusOK},
		{"GET", "/customers/me?customer_id=1", "", http.StatusOK},
		{"PATCH", "/customers/me", `{"customer_id":1}`, http.StatusOK},
		{"GET", "/stats/top-sellers", "", http.StatusOK},
		{"GET", "/stats/best-region", "", http.StatusOK},
		{"GET", "/stats/revenue/daily?date_start=2026-08-01&date_end=2026-08-29", "", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var body *strings.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			} else {
				body = strings.NewReader("")
			}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, body)
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_EchoesRequestID(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRouter_GeneratesUUIDRequestID(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	id := rec.Header().Get("X-Request-ID")
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}
