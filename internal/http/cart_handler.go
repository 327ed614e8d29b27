package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
	"github.com/ckrskrrr/JellyDog/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartService interface {
	AddToCart(ctx context.Context, customerID, storeID, productID, quantity int64) (*service.AddToCartResult, error)
	UpdateItem(ctx context.Context, itemID, customerID, quantity int64) error
	RemoveItem(ctx context.Context, itemID, customerID int64) error
	GetCart(ctx context.Context, customerID, storeID int64) (*domain.Cart, error)
}

type CartHandler struct {
	carts   CartService
	timeout time.Duration
}

func NewCartHandler(carts CartService, timeout time.Duration) *CartHandler {
	return &CartHandler{carts: carts, timeout: timeout}
}

type AddToCartRequestDTO struct {
	CustomerID int64 `json:"customer_id"`
	ProductID  int64 `json:"product_id"`
	Quantity   int64 `json:"quantity"`
	StoreID    int64 `json:"store_id"`
}

type UpdateItemRequestDTO struct {
	CustomerID int64 `json:"customer_id"`
	Quantity   int64 `json:"quantity"`
}

type RemoveItemRequestDTO struct {
	CustomerID int64 `json:"customer_id"`
}

// GetCart handles GET /cart?customer_id&store_id. A customer with no open
// cart gets an empty cart body, not an error.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID, ok := queryID(w, r, "customer_id")
	if !ok {
		return
	}
	storeID, ok := queryID(w, r, "store_id")
	if !ok {
		return
	}

	cart, err := h.carts.GetCart(ctx, customerID, storeID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddToCartRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1 // missing quantity means one
	}

	result, err := h.carts.AddToCart(ctx, req.CustomerID, req.StoreID, req.ProductID, req.Quantity)
	if err != nil {
		// a vanished product is a bad request here, not a missing resource
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.carts.UpdateItem(ctx, itemID, req.CustomerID, req.Quantity); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{
		"order_item_id": itemID,
		"quantity":      req.Quantity,
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	customerID, err := strconv.ParseInt(r.URL.Query().Get("customer_id"), 10, 64)
	if err != nil {
		// customer_id may also arrive in a JSON body
		var req RemoveItemRequestDTO
		if e2 := json.NewDecoder(r.Body).Decode(&req); e2 != nil || req.CustomerID <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_request", "customer_id is required")
			return
		}
		customerID = req.CustomerID
	}

	if err := h.carts.RemoveItem(ctx, itemID, customerID); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func queryID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
