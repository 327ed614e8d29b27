package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// AdjustStock applies a signed delta to one inventory row and returns the
// previous and resulting stock. Fails without touching the row when the
// result would be negative.
func (r *Repository) AdjustStock(ctx context.Context, storeID, productID, adjustment int64) (int64, int64, error) {
	var previous, current int64

	err := r.inTx(func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`SELECT stock FROM store_inventory WHERE store_id = ? AND product_id = ?`,
			storeID, productID).Scan(&previous)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInventoryNotFound
		}
		if err != nil {
			return fmt.Errorf("query stock: %w", err)
		}

		// guarded relative update; the affected-row check catches a
		// delta that would take the row negative
		res, e2 := tx.ExecContext(ctx,
			`UPDATE store_inventory SET stock = stock + ?
			 WHERE store_id = ? AND product_id = ? AND stock + ? >= 0`,
			adjustment, storeID, productID, adjustment)
		if e2 != nil {
			return fmt.Errorf("update stock: %w", e2)
		}
		affected, e2 := res.RowsAffected()
		if e2 != nil {
			return fmt.Errorf("update stock: %w", e2)
		}
		if affected == 0 {
			return fmt.Errorf("%w (current: %d, adjustment: %d)",
				ErrNegativeStock, previous, adjustment)
		}

		if e2 := tx.QueryRowContext(ctx,
			`SELECT stock FROM store_inventory WHERE store_id = ? AND product_id = ?`,
			storeID, productID).Scan(&current); e2 != nil {
			return fmt.Errorf("query stock: %w", e2)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return previous, current, nil
}

func (r *Repository) GetStock(ctx context.Context, storeID, productID int64) (int64, error) {
	var stock int64
	err := r.db.QueryRowContext(ctx,
		`SELECT stock FROM store_inventory WHERE store_id = ? AND product_id = ?`,
		storeID, productID).Scan(&stock)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrInventoryNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("query stock: %w", err)
	}
	return stock, nil
}

// UpsertStock sets the absolute stock for a (store, product) pair, creating
// the row if needed. Used by admin product management, not by checkout.
func (r *Repository) UpsertStock(ctx context.Context, storeID, productID, stock int64) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO store_inventory (store_id, product_id, stock) VALUES (?, ?, ?)
		 ON CONFLICT (store_id, product_id) DO UPDATE SET stock = excluded.stock`,
		storeID, productID, stock)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}
