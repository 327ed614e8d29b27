package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
	"github.com/ckrskrrr/JellyDog/internal/service"
)

type InventoryService interface {
	Adjust(ctx context.Context, storeID, productID, adjustment int64) (*service.AdjustResult, error)
}

type ProductAdminService interface {
	Create(ctx context.Context, in service.CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, productID int64, in service.UpdateProductInput) error
	Delete(ctx context.Context, productID int64) error
}

type AdminHandler struct {
	inventory InventoryService
	products  ProductAdminService
	timeout   time.Duration
}

func NewAdminHandler(inventory InventoryService, products ProductAdminService, timeout time.Duration) *AdminHandler {
	return &AdminHandler{inventory: inventory, products: products, timeout: timeout}
}

type AdjustInventoryRequestDTO struct {
	StoreID    *int64 `json:"store_id"`
	ProductID  *int64 `json:"product_id"`
	Adjustment *int64 `json:"adjustment"`
}

func (h *AdminHandler) AdjustInventory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AdjustInventoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.StoreID == nil || req.ProductID == nil || req.Adjustment == nil {
		respondError(w, http.StatusBadRequest, "invalid_request",
			"store_id, product_id, and adjustment are required")
		return
	}

	result, err := h.inventory.Adjust(ctx, *req.StoreID, *req.ProductID, *req.Adjustment)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type CreateProductRequestDTO struct {
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImgURL      string  `json:"img_url"`
	StoreID     int64   `json:"store_id"`
	Stock       int64   `json:"stock"`
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, err := h.products.Create(ctx, service.CreateProductInput{
		Name:     req.ProductName,
		Category: req.Category,
		Price:    req.Price,
		ImgURL:   req.ImgURL,
		StoreID:  req.StoreID,
		Stock:    req.Stock,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

type UpdateProductRequestDTO struct {
	ProductName *string  `json:"product_name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	ImgURL      *string  `json:"img_url"`
	StoreID     int64    `json:"store_id"`
	Stock       *int64   `json:"stock"`
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	err := h.products.Update(ctx, productID, service.UpdateProductInput{
		Fields: repository.ProductUpdate{
			Name:     req.ProductName,
			Category: req.Category,
			Price:    req.Price,
			ImgURL:   req.ImgURL,
		},
		StoreID: req.StoreID,
		Stock:   req.Stock,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(ctx, productID); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
