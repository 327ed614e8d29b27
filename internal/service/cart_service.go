package service

import (
	"context"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
)

// CartService mutates the single in-cart order per (customer, store) pair.
type CartService struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) *CartService {
	return &CartService{repo: repo}
}

type AddToCartResult struct {
	OrderItemID int64 `json:"order_item_id"`
	ProductID   int64 `json:"product_id"`
	Quantity    int64 `json:"quantity"`
}

func (s *CartService) AddToCart(ctx context.Context, customerID, storeID, productID, quantity int64) (*AddToCartResult, error) {
	if err := checkIDs(customerID, storeID); err != nil {
		return nil, err
	}
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	itemID, finalQuantity, err := s.repo.AddItem(ctx, customerID, storeID, productID, quantity)
	if err != nil {
		return nil, err
	}

	return &AddToCartResult{
		OrderItemID: itemID,
		ProductID:   productID,
		Quantity:    finalQuantity,
	}, nil
}

func (s *CartService) UpdateItem(ctx context.Context, itemID, customerID, quantity int64) error {
	if itemID <= 0 {
		return ErrInvalidItemID
	}
	if customerID <= 0 {
		return ErrInvalidCustomerID
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return s.repo.UpdateItemQuantity(ctx, itemID, customerID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, itemID, customerID int64) error {
	if itemID <= 0 {
		return ErrInvalidItemID
	}
	if customerID <= 0 {
		return ErrInvalidCustomerID
	}
	return s.repo.RemoveItem(ctx, itemID, customerID)
}

func (s *CartService) GetCart(ctx context.Context, customerID, storeID int64) (*domain.Cart, error) {
	if err := checkIDs(customerID, storeID); err != nil {
		return nil, err
	}
	return s.repo.GetCart(ctx, customerID, storeID)
}

func checkIDs(customerID, storeID int64) error {
	if customerID <= 0 {
		return ErrInvalidCustomerID
	}
	if storeID <= 0 {
		return ErrInvalidStoreID
	}
	return nil
}
