package domain

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is the login identity; Customer is the profile attached to it.
type User struct {
	UID          int64  `json:"uid"`
	UserName     string `json:"user_name"`
	PasswordHash string `json:"-"`
	PasswordSalt string `json:"-"`
	Role         Role   `json:"role"`
}

type Customer struct {
	ID           int64  `json:"customer_id"`
	UID          int64  `json:"uid"`
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
}
