package service

import (
	"context"

	"github.com/ckrskrrr/JellyDog/internal/repository"
)

// InventoryService is the admin path for direct stock changes. Checkout and
// returns mutate stock through their own transactions, never through here.
type InventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

type AdjustResult struct {
	Success       bool  `json:"success"`
	NewStock      int64 `json:"new_stock"`
	PreviousStock int64 `json:"previous_stock"`
	Adjustment    int64 `json:"adjustment"`
}

func (s *InventoryService) Adjust(ctx context.Context, storeID, productID, adjustment int64) (*AdjustResult, error) {
	if storeID <= 0 {
		return nil, ErrInvalidStoreID
	}
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}

	previous, current, err := s.repo.AdjustStock(ctx, storeID, productID, adjustment)
	if err != nil {
		return nil, err
	}

	return &AdjustResult{
		Success:       true,
		NewStock:      current,
		PreviousStock: previous,
		Adjustment:    adjustment,
	}, nil
}
