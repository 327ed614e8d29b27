package domain

import "time"

type OrderStatus string

const (
	OrderStatusInCart    OrderStatus = "in_cart"
	OrderStatusComplete  OrderStatus = "complete"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID            int64       `json:"order_id"`
	CustomerID    int64       `json:"customer_id"`
	StoreID       int64       `json:"store_id"`
	Status        OrderStatus `json:"status"`
	TotalPrice    float64     `json:"total_price"`
	OrderDatetime *time.Time  `json:"order_datetime,omitempty"` // set at checkout
}

type OrderItem struct {
	ID        int64   `json:"order_item_id"`
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int64   `json:"quantity"`
	IsReturn  bool    `json:"is_return"`
}

// OrderItemDetail is an order line joined with catalog fields for display.
type OrderItemDetail struct {
	OrderItem
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	ImgURL      string `json:"img_url"`
}

// OrderWithItems is an order header plus its lines.
type OrderWithItems struct {
	Order
	Items []OrderItemDetail `json:"items"`
}

// Cart is the read model of the in_cart order for one (customer, store)
// pair. OrderID is nil when no cart exists yet; that is not an error.
type Cart struct {
	OrderID    *int64            `json:"order_id"`
	CustomerID int64             `json:"customer_id"`
	StoreID    int64             `json:"store_id"`
	Items      []OrderItemDetail `json:"items"`
	TotalPrice float64           `json:"total_price"`
}
