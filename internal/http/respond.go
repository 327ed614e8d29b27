package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ckrskrrr/JellyDog/internal/repository"
	"github.com/ckrskrrr/JellyDog/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps service and repository errors onto the HTTP error
// contract: validation and conflicts are 400, absent or unowned resources
// are 404, bad credentials are 401, anything else is a generic 400.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case isValidationError(err):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case isConflictError(err):
		respondError(w, http.StatusBadRequest, "conflict", err.Error())
	case isNotFoundError(err):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	default:
		log.Printf("storage error: %v", err)
		respondError(w, http.StatusBadRequest, "storage_error", "database error")
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		service.ErrInvalidCustomerID,
		service.ErrInvalidStoreID,
		service.ErrInvalidProductID,
		service.ErrInvalidItemID,
		service.ErrInvalidOrderID,
		service.ErrInvalidQuantity,
		service.ErrNoItemsRequested,
		service.ErrMissingField,
		service.ErrInvalidPrice,
		service.ErrInvalidDateRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isConflictError(err error) bool {
	for _, target := range []error{
		repository.ErrEmptyCart,
		repository.ErrInsufficientStock,
		repository.ErrNegativeStock,
		repository.ErrItemMismatch,
		repository.ErrUserExists,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isNotFoundError(err error) bool {
	for _, target := range []error{
		repository.ErrProductNotFound,
		repository.ErrOrderNotFound,
		repository.ErrItemNotFound,
		repository.ErrCartNotFound,
		repository.ErrInventoryNotFound,
		repository.ErrCustomerNotFound,
		repository.ErrUserNotFound,
		repository.ErrStoreNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
