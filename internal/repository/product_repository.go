package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ckrskrrr/JellyDog/internal/domain"
)

func (r *Repository) ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error) {
	query := `SELECT product_id, product_name, category, price, img_url FROM products`
	var args []any
	var where []string

	if filter.Query != "" {
		where = append(where, `product_name LIKE ?`)
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.Category != "" {
		where = append(where, `category = ?`)
		args = append(args, filter.Category)
	}
	for i, clause := range where {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}

	switch filter.Sort {
	case "price":
		query += " ORDER BY price"
	case "name":
		query += " ORDER BY product_name"
	default: // "date": newest catalog entries first
		query += " ORDER BY product_id DESC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, max(filter.Offset, 0))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p := &domain.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.ImgURL); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *Repository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p := &domain.Product{}
	err := r.db.QueryRowContext(ctx,
		`SELECT product_id, product_name, category, price, img_url FROM products WHERE product_id = ?`,
		id).Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.ImgURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return p, nil
}

func (r *Repository) CreateProduct(ctx context.Context, p *domain.Product) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (product_name, category, price, img_url) VALUES (?, ?, ?, ?)`,
		p.Name, p.Category, p.Price, p.ImgURL)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("product id: %w", err)
	}
	return id, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, id int64, upd ProductUpdate) error {
	query := `UPDATE products SET`
	var args []any
	set := func(col string, v any) {
		if len(args) > 0 {
			query += ","
		}
		query += " " + col + " = ?"
		args = append(args, v)
	}
	if upd.Name != nil {
		set("product_name", *upd.Name)
	}
	if upd.Category != nil {
		set("category", *upd.Category)
	}
	if upd.Price != nil {
		set("price", *upd.Price)
	}
	if upd.ImgURL != nil {
		set("img_url", *upd.ImgURL)
	}
	if len(args) == 0 {
		return nil
	}
	query += ` WHERE product_id = ?`
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DeleteProduct removes the product and its inventory rows. Order lines keep
// their snapshot but reference the product row, so deletion is refused while
// any order still points at it.
func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	return r.inTx(func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM store_inventory WHERE product_id = ?`, id); err != nil {
			return fmt.Errorf("delete inventory rows: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE product_id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		if affected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

func (r *Repository) ListStores(ctx context.Context) ([]*domain.Store, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT store_id, street, city, state, zip FROM stores ORDER BY store_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	var stores []*domain.Store
	for rows.Next() {
		s := &domain.Store{}
		if err := rows.Scan(&s.ID, &s.Street, &s.City, &s.State, &s.Zip); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return stores, nil
}
