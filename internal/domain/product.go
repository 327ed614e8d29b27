package domain

// Product is the catalog entry. Price here is the current list price;
// order lines carry their own snapshot taken at add-to-cart time.
type Product struct {
	ID       int64   `json:"product_id"`
	Name     string  `json:"product_name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	ImgURL   string  `json:"img_url"`
}

// ProductWithStock is a product joined with its stock at one store.
type ProductWithStock struct {
	Product
	Stock int64 `json:"stock"`
}

type Store struct {
	ID     int64  `json:"store_id"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// StoreInventory is the stock count of one product at one store.
type StoreInventory struct {
	StoreID   int64 `json:"store_id"`
	ProductID int64 `json:"product_id"`
	Stock     int64 `json:"stock"`
}
