package service

import (
	"context"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
)

// ReturnService reverses completed order lines back into store stock.
type ReturnService struct {
	repo repository.OrderRepository
}

func NewReturnService(repo repository.OrderRepository) *ReturnService {
	return &ReturnService{repo: repo}
}

// ReturnItems marks the given lines returned and credits their quantities
// back. Re-returning an already-returned line is a no-op, so the returned
// slice may be shorter than the request, or empty.
func (s *ReturnService) ReturnItems(ctx context.Context, orderID, customerID int64, itemIDs []int64) ([]domain.OrderItem, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	if len(itemIDs) == 0 {
		return nil, ErrNoItemsRequested
	}
	for _, id := range itemIDs {
		if id <= 0 {
			return nil, ErrInvalidItemID
		}
	}
	return s.repo.ReturnItems(ctx, orderID, customerID, itemIDs)
}
