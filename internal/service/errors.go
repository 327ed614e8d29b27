package service

import "errors"

var (
	ErrInvalidCustomerID  = errors.New("customer_id must be a positive integer")
	ErrInvalidStoreID     = errors.New("store_id must be a positive integer")
	ErrInvalidProductID   = errors.New("product_id must be a positive integer")
	ErrInvalidItemID      = errors.New("order_item_id must be a positive integer")
	ErrInvalidOrderID     = errors.New("order_id must be a positive integer")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrNoItemsRequested   = errors.New("order_item_ids is required")
	ErrInvalidCredentials = errors.New("invalid user name or password")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidDateRange   = errors.New("date_start and date_end are required (format: YYYY-MM-DD)")
)
