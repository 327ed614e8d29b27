package service

import (
	"context"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
)

type StoreService struct {
	repo repository.StoreRepository
}

func NewStoreService(repo repository.StoreRepository) *StoreService {
	return &StoreService{repo: repo}
}

func (s *StoreService) List(ctx context.Context) ([]*domain.Store, error) {
	stores, err := s.repo.ListStores(ctx)
	if err != nil {
		return nil, err
	}
	if stores == nil {
		stores = []*domain.Store{}
	}
	return stores, nil
}
