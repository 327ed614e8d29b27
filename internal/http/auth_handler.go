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

type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (*service.RegisterResult, error)
	Login(ctx context.Context, userName, password string) (*service.LoginResult, error)
	ChangePassword(ctx context.Context, userName, oldPassword, newPassword string) error
}

type CustomerService interface {
	GetProfile(ctx context.Context, customerID int64) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, customerID int64, upd repository.CustomerUpdate) (*domain.Customer, error)
}

type AuthHandler struct {
	auth      AuthService
	customers CustomerService
	timeout   time.Duration
}

func NewAuthHandler(auth AuthService, customers CustomerService, timeout time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, customers: customers, timeout: timeout}
}

type RegisterRequestDTO struct {
	UserName     string `json:"user_name"`
	Password     string `json:"password"`
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.auth.Register(ctx, service.RegisterInput{
		UserName:     req.UserName,
		Password:     req.Password,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

type LoginRequestDTO struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.auth.Login(ctx, req.UserName, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type ChangePasswordRequestDTO struct {
	UserName    string `json:"user_name"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req ChangePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.auth.ChangePassword(ctx, req.UserName, req.OldPassword, req.NewPassword); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID, ok := queryID(w, r, "customer_id")
	if !ok {
		return
	}

	customer, err := h.customers.GetProfile(ctx, customerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

type UpdateProfileRequestDTO struct {
	CustomerID   int64   `json:"customer_id"`
	CustomerName *string `json:"customer_name"`
	PhoneNumber  *string `json:"phone_number"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
	Country      *string `json:"country"`
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	customer, err := h.customers.UpdateProfile(ctx, req.CustomerID, repository.CustomerUpdate{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, customer)
}
