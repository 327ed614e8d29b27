package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2-HMAC-SHA256 parameters; hashes stored as hex alongside a hex salt.
const (
	pbkdf2Iterations = 100_000
	pbkdf2KeyLen     = 32
	saltLen          = 16
)

// AuthService owns registration and credential checks. No session or token
// is issued; callers carry their customer_id on subsequent requests.
type AuthService struct {
	repo repository.CustomerRepository
}

func NewAuthService(repo repository.CustomerRepository) *AuthService {
	return &AuthService{repo: repo}
}

type RegisterInput struct {
	UserName     string
	Password     string
	CustomerName string
	PhoneNumber  string
	Street       string
	City         string
	State        string
	ZipCode      string
	Country      string
}

type RegisterResult struct {
	UID        int64 `json:"uid"`
	CustomerID int64 `json:"customer_id"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if in.UserName == "" {
		return nil, fmt.Errorf("%w: user_name", ErrMissingField)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password", ErrMissingField)
	}
	if in.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer_name", ErrMissingField)
	}

	hash, salt, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UserName:     in.UserName,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         domain.RoleCustomer,
	}
	customer := &domain.Customer{
		CustomerName: in.CustomerName,
		PhoneNumber:  in.PhoneNumber,
		Street:       in.Street,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Country:      in.Country,
	}

	uid, customerID, err := s.repo.CreateUserWithCustomer(ctx, user, customer)
	if err != nil {
		return nil, err
	}

	return &RegisterResult{UID: uid, CustomerID: customerID}, nil
}

type LoginResult struct {
	UID        int64       `json:"uid"`
	CustomerID int64       `json:"customer_id"`
	Role       domain.Role `json:"role"`
}

func (s *AuthService) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	if userName == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByName(ctx, userName)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !verifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		return nil, ErrInvalidCredentials
	}

	result := &LoginResult{UID: user.UID, Role: user.Role}
	customer, err := s.repo.GetCustomerByUID(ctx, user.UID)
	if err == nil {
		result.CustomerID = customer.ID
	} else if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, err
	}

	return result, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userName, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new_password", ErrMissingField)
	}

	user, err := s.repo.GetUserByName(ctx, userName)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if !verifyPassword(oldPassword, user.PasswordHash, user.PasswordSalt) {
		return ErrInvalidCredentials
	}

	hash, salt, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, user.UID, hash, salt)
}

func hashPassword(password string) (hashHex, saltHex string, err error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	hash := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(hash), hex.EncodeToString(salt), nil
}

func verifyPassword(password, hashHex, saltHex string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	computed := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(stored), sha256.New)
	return subtle.ConstantTimeCompare(computed, stored) == 1
}
