package repository

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemNotFound      = errors.New("order item not found")
	ErrCartNotFound      = errors.New("no in-cart order for customer and store")
	ErrInventoryNotFound = errors.New("inventory record not found for this store and product")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user name already taken")
	ErrStoreNotFound     = errors.New("store not found")

	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNegativeStock     = errors.New("adjustment would result in negative stock")
	ErrItemMismatch      = errors.New("requested items do not all belong to the order")
)
