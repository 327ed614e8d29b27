package service

import (
	"context"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
)

// CheckoutService turns a cart into a completed order. Stock validation and
// the atomic decrement-and-complete live in the repository transaction; this
// layer holds input validation and the read side of orders.
type CheckoutService struct {
	repo repository.OrderRepository
}

func NewCheckoutService(repo repository.OrderRepository) *CheckoutService {
	return &CheckoutService{repo: repo}
}

func (s *CheckoutService) Checkout(ctx context.Context, customerID, storeID int64) (*domain.Order, error) {
	if err := checkIDs(customerID, storeID); err != nil {
		return nil, err
	}
	return s.repo.Checkout(ctx, customerID, storeID)
}

func (s *CheckoutService) GetOrder(ctx context.Context, orderID, customerID int64) (*domain.OrderWithItems, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	return s.repo.GetOrderWithItems(ctx, orderID, customerID)
}

func (s *CheckoutService) ListOrders(ctx context.Context, customerID int64) ([]*domain.Order, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	orders, err := s.repo.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}
