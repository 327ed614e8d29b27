package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/cache"
	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
	"golang.org/x/sync/singleflight"
)

// ProductService serves the catalog read path through a cache and handles
// admin catalog mutations, which invalidate it.
type ProductService struct {
	repo  repository.ProductRepository
	inv   repository.InventoryRepository
	cache cache.ProductCache
	sfg   singleflight.Group // prevents cache stampede
}

func NewProductService(repo repository.ProductRepository, inv repository.InventoryRepository, cache cache.ProductCache) *ProductService {
	return &ProductService{
		repo:  repo,
		inv:   inv,
		cache: cache,
	}
}

func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, error) {
	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, productID int64) (*domain.Product, error) {
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}

	v, err, _ := s.sfg.Do(fmt.Sprint(productID), func() (interface{}, error) {
		product, err := s.cache.Get(ctx, productID)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		product, errGet := s.repo.GetProduct(ctx, productID)
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			setCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if errSet := s.cache.Set(setCtx, product); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return product, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}

type CreateProductInput struct {
	Name     string
	Category string
	Price    float64
	ImgURL   string
	StoreID  int64 // optional initial stock placement
	Stock    int64
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	if in.Name == "" || in.Category == "" {
		return nil, fmt.Errorf("%w: product_name and category", ErrMissingField)
	}
	if in.Price < 0 {
		return nil, ErrInvalidPrice
	}

	product := &domain.Product{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		ImgURL:   in.ImgURL,
	}
	id, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if in.StoreID > 0 {
		if err := s.inv.UpsertStock(ctx, in.StoreID, id, in.Stock); err != nil {
			return nil, err
		}
	}

	return product, nil
}

type UpdateProductInput struct {
	Fields  repository.ProductUpdate
	StoreID int64  // with Stock, sets per-store stock
	Stock   *int64
}

func (s *ProductService) Update(ctx context.Context, productID int64, in UpdateProductInput) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}

	if err := s.repo.UpdateProduct(ctx, productID, in.Fields); err != nil {
		return err
	}

	if in.Stock != nil {
		if in.StoreID <= 0 {
			return ErrInvalidStoreID
		}
		if err := s.inv.UpsertStock(ctx, in.StoreID, productID, *in.Stock); err != nil {
			return err
		}
	}

	s.invalidate(productID)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}
	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.invalidate(productID)
	return nil
}

func (s *ProductService) invalidate(productID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, productID); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
