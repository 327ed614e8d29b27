package service

import (
	"context"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
)

type CustomerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) GetProfile(ctx context.Context, customerID int64) (*domain.Customer, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	return s.repo.GetCustomer(ctx, customerID)
}

func (s *CustomerService) UpdateProfile(ctx context.Context, customerID int64, upd repository.CustomerUpdate) (*domain.Customer, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	if err := s.repo.UpdateCustomer(ctx, customerID, upd); err != nil {
		return nil, err
	}
	return s.repo.GetCustomer(ctx, customerID)
}
