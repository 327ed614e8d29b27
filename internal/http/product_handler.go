package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
)

type ProductService interface {
	List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, error)
	Get(ctx context.Context, productID int64) (*domain.Product, error)
}

type StoreService interface {
	List(ctx context.Context) ([]*domain.Store, error)
}

type ProductHandler struct {
	products ProductService
	stores   StoreService
	timeout  time.Duration
}

func NewProductHandler(products ProductService, stores StoreService, timeout time.Duration) *ProductHandler {
	return &ProductHandler{products: products, stores: stores, timeout: timeout}
}

// ListProducts handles GET /products?q&category&sort&limit&offset.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := r.URL.Query()
	filter := repository.ProductFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	}
	if limit, err := strconv.ParseInt(q.Get("limit"), 10, 64); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.ParseInt(q.Get("offset"), 10, 64); err == nil {
		filter.Offset = offset
	}

	products, err := h.products.List(ctx, filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	product, err := h.products.Get(ctx, productID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	stores, err := h.stores.List(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stores)
}
