package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ckrskrrr/JellyDog/internal/domain"
)

// CreateUserWithCustomer inserts the login row and its profile together.
func (r *Repository) CreateUserWithCustomer(ctx context.Context, user *domain.User, customer *domain.Customer) (int64, int64, error) {
	var uid, customerID int64

	err := r.inTx(func(tx *sql.Tx) error {
		var existing int64
		err := tx.QueryRowContext(ctx,
			`SELECT uid FROM users WHERE user_name = ?`, user.UserName).Scan(&existing)
		if err == nil {
			return ErrUserExists
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query user: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (user_name, password_hash, password_salt, role) VALUES (?, ?, ?, ?)`,
			user.UserName, user.PasswordHash, user.PasswordSalt, user.Role)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE") {
				return ErrUserExists
			}
			return fmt.Errorf("insert user: %w", err)
		}
		uid, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("user id: %w", err)
		}

		res, err = tx.ExecContext(ctx,
			`INSERT INTO customers (uid, customer_name, phone_number, street, city, state, zip_code, country)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uid, customer.CustomerName, customer.PhoneNumber, customer.Street,
			customer.City, customer.State, customer.ZipCode, customer.Country)
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
		customerID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("customer id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return uid, customerID, nil
}

func (r *Repository) GetUserByName(ctx context.Context, userName string) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT uid, user_name, password_hash, password_salt, role FROM users WHERE user_name = ?`,
		userName).Scan(&u.UID, &u.UserName, &u.PasswordHash, &u.PasswordSalt, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

func (r *Repository) GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error) {
	return r.getCustomerBy(ctx, "customer_id", customerID)
}

func (r *Repository) GetCustomerByUID(ctx context.Context, uid int64) (*domain.Customer, error) {
	return r.getCustomerBy(ctx, "uid", uid)
}

func (r *Repository) getCustomerBy(ctx context.Context, column string, id int64) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT customer_id, uid, customer_name, phone_number, street, city, state, zip_code, country
		 FROM customers WHERE `+column+` = ?`,
		id).Scan(&c.ID, &c.UID, &c.CustomerName, &c.PhoneNumber,
		&c.Street, &c.City, &c.State, &c.ZipCode, &c.Country)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query customer: %w", err)
	}
	return c, nil
}

func (r *Repository) UpdateCustomer(ctx context.Context, customerID int64, upd CustomerUpdate) error {
	query := `UPDATE customers SET`
	var args []any
	set := func(col string, v any) {
		if len(args) > 0 {
			query += ","
		}
		query += " " + col + " = ?"
		args = append(args, v)
	}
	if upd.CustomerName != nil {
		set("customer_name", *upd.CustomerName)
	}
	if upd.PhoneNumber != nil {
		set("phone_number", *upd.PhoneNumber)
	}
	if upd.Street != nil {
		set("street", *upd.Street)
	}
	if upd.City != nil {
		set("city", *upd.City)
	}
	if upd.State != nil {
		set("state", *upd.State)
	}
	if upd.ZipCode != nil {
		set("zip_code", *upd.ZipCode)
	}
	if upd.Country != nil {
		set("country", *upd.Country)
	}
	if len(args) == 0 {
		return nil
	}
	query += ` WHERE customer_id = ?`
	args = append(args, customerID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *Repository) UpdatePassword(ctx context.Context, uid int64, hash, salt string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, password_salt = ? WHERE uid = ?`,
		hash, salt, uid)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
