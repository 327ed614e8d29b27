package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/domain"
)

type CheckoutService interface {
	Checkout(ctx context.Context, customerID, storeID int64) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID, customerID int64) (*domain.OrderWithItems, error)
	ListOrders(ctx context.Context, customerID int64) ([]*domain.Order, error)
}

type ReturnService interface {
	ReturnItems(ctx context.Context, orderID, customerID int64, itemIDs []int64) ([]domain.OrderItem, error)
}

type OrdersHandler struct {
	checkout CheckoutService
	returns  ReturnService
	timeout  time.Duration
}

func NewOrdersHandler(checkout CheckoutService, returns ReturnService, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{checkout: checkout, returns: returns, timeout: timeout}
}

type CheckoutRequestDTO struct {
	CustomerID int64 `json:"customer_id"`
	StoreID    int64 `json:"store_id"`
}

type ReturnRequestDTO struct {
	CustomerID   int64   `json:"customer_id"`
	OrderItemIDs []int64 `json:"order_item_ids"`
}

func (h *OrdersHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.checkout.Checkout(ctx, req.CustomerID, req.StoreID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order_id":    order.ID,
		"total_price": order.TotalPrice,
		"status":      order.Status,
	})
}

func (h *OrdersHandler) Return(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req ReturnRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	returned, err := h.returns.ReturnItems(ctx, orderID, req.CustomerID, req.OrderItemIDs)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"returned_items": returned,
	})
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	customerID, ok := queryID(w, r, "customer_id")
	if !ok {
		return
	}

	order, err := h.checkout.GetOrder(ctx, orderID, customerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID, ok := queryID(w, r, "customer_id")
	if !ok {
		return
	}

	orders, err := h.checkout.ListOrders(ctx, customerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}
