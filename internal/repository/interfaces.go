package repository

import (
	"context"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/domain"
)

// Per-concern views of the repository; *Repository implements all of them.

type CartRepository interface {
	GetCart(ctx context.Context, customerID, storeID int64) (*domain.Cart, error)
	AddItem(ctx context.Context, customerID, storeID, productID, quantity int64) (itemID, finalQuantity int64, err error)
	UpdateItemQuantity(ctx context.Context, itemID, customerID, quantity int64) error
	RemoveItem(ctx context.Context, itemID, customerID int64) error
}

type OrderRepository interface {
	Checkout(ctx context.Context, customerID, storeID int64) (*domain.Order, error)
	ReturnItems(ctx context.Context, orderID, customerID int64, itemIDs []int64) ([]domain.OrderItem, error)
	GetOrderWithItems(ctx context.Context, orderID, customerID int64) (*domain.OrderWithItems, error)
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]*domain.Order, error)
}

type InventoryRepository interface {
	AdjustStock(ctx context.Context, storeID, productID, adjustment int64) (previous, current int64, err error)
	GetStock(ctx context.Context, storeID, productID int64) (int64, error)
	UpsertStock(ctx context.Context, storeID, productID, stock int64) error
}

type ProductFilter struct {
	Query    string
	Category string
	Sort     string // "date", "price" or "name"
	Limit    int64
	Offset   int64
}

type ProductUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	ImgURL   *string
}

type ProductRepository interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (int64, error)
	UpdateProduct(ctx context.Context, id int64, upd ProductUpdate) error
	DeleteProduct(ctx context.Context, id int64) error
}

type StoreRepository interface {
	ListStores(ctx context.Context) ([]*domain.Store, error)
}

type CustomerUpdate struct {
	CustomerName *string
	PhoneNumber  *string
	Street       *string
	City         *string
	State        *string
	ZipCode      *string
	Country      *string
}

type CustomerRepository interface {
	CreateUserWithCustomer(ctx context.Context, user *domain.User, customer *domain.Customer) (uid, customerID int64, err error)
	GetUserByName(ctx context.Context, userName string) (*domain.User, error)
	GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error)
	GetCustomerByUID(ctx context.Context, uid int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, upd CustomerUpdate) error
	UpdatePassword(ctx context.Context, uid int64, hash, salt string) error
}

type TopSeller struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImgURL      string  `json:"img_url"`
	TotalSold   int64   `json:"total_sold"`
}

type RegionSales struct {
	State        *string `json:"state"`
	City         *string `json:"city"`
	OrderCount   int64   `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

type DailyRevenue struct {
	Date       string  `json:"date"`
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

type StatsRepository interface {
	TopSellers(ctx context.Context, limit int64) ([]TopSeller, error)
	BestRegion(ctx context.Context) (*RegionSales, error)
	DailyRevenue(ctx context.Context, start, end time.Time) ([]DailyRevenue, error)
}
