package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ckrskrrr/JellyDog/internal/domain"
)

const cartItemColumns = `
	oi.order_item_id, oi.order_id, oi.product_id, oi.unit_price, oi.quantity, oi.is_return,
	p.product_name, p.category, p.img_url`

// GetCart returns the in-cart order for (customer, store) with its lines.
// A missing cart is not an error; the result has a nil OrderID.
func (r *Repository) GetCart(ctx context.Context, customerID, storeID int64) (*domain.Cart, error) {
	cart := &domain.Cart{
		CustomerID: customerID,
		StoreID:    storeID,
		Items:      []domain.OrderItemDetail{},
	}

	var orderID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT order_id FROM orders WHERE customer_id = ? AND store_id = ? AND status = 'in_cart'`,
		customerID, storeID).Scan(&orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return cart, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query cart order: %w", err)
	}
	cart.OrderID = &orderID

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cartItemColumns+`
		 FROM order_items AS oi
		 JOIN products AS p ON p.product_id = oi.product_id
		 WHERE oi.order_id = ?
		 ORDER BY oi.order_item_id`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItemDetail(rows)
		if err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
		if !item.IsReturn {
			cart.TotalPrice += item.UnitPrice * float64(item.Quantity)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return cart, nil
}

// AddItem adds a product to the customer's cart at the given store. The sole
// in-cart order is found or created, and a line for the same product merges
// quantities instead of inserting a second row. Runs in one transaction.
func (r *Repository) AddItem(ctx context.Context, customerID, storeID, productID, quantity int64) (int64, int64, error) {
	var itemID, finalQuantity int64

	err := r.inTx(func(tx *sql.Tx) error {
		var price float64
		err := tx.QueryRowContext(ctx,
			`SELECT price FROM products WHERE product_id = ?`, productID).Scan(&price)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("query product price: %w", err)
		}

		var orderID int64
		err = tx.QueryRowContext(ctx,
			`SELECT order_id FROM orders WHERE customer_id = ? AND store_id = ? AND status = 'in_cart'`,
			customerID, storeID).Scan(&orderID)
		if errors.Is(err, sql.ErrNoRows) {
			res, e2 := tx.ExecContext(ctx,
				`INSERT INTO orders (customer_id, store_id, status) VALUES (?, ?, 'in_cart')`,
				customerID, storeID)
			if e2 != nil {
				return fmt.Errorf("create cart order: %w", e2)
			}
			orderID, e2 = res.LastInsertId()
			if e2 != nil {
				return fmt.Errorf("cart order id: %w", e2)
			}
		} else if err != nil {
			return fmt.Errorf("query cart order: %w", err)
		}

		var existingID, existingQty int64
		err = tx.QueryRowContext(ctx,
			`SELECT order_item_id, quantity FROM order_items
			 WHERE order_id = ? AND product_id = ? AND is_return = 0`,
			orderID, productID).Scan(&existingID, &existingQty)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			res, e2 := tx.ExecContext(ctx,
				`INSERT INTO order_items (order_id, product_id, unit_price, quantity) VALUES (?, ?, ?, ?)`,
				orderID, productID, price, quantity)
			if e2 != nil {
				return fmt.Errorf("insert order item: %w", e2)
			}
			itemID, e2 = res.LastInsertId()
			if e2 != nil {
				return fmt.Errorf("order item id: %w", e2)
			}
			finalQuantity = quantity
		case err != nil:
			return fmt.Errorf("query order item: %w", err)
		default:
			finalQuantity = existingQty + quantity
			if _, e2 := tx.ExecContext(ctx,
				`UPDATE order_items SET quantity = ? WHERE order_item_id = ?`,
				finalQuantity, existingID); e2 != nil {
				return fmt.Errorf("update order item quantity: %w", e2)
			}
			itemID = existingID
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return itemID, finalQuantity, nil
}

// UpdateItemQuantity sets the quantity of a line in the customer's open cart.
func (r *Repository) UpdateItemQuantity(ctx context.Context, itemID, customerID, quantity int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE order_items SET quantity = ?
		 WHERE order_item_id = ?
		   AND order_id IN (SELECT order_id FROM orders WHERE customer_id = ? AND status = 'in_cart')`,
		quantity, itemID, customerID)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// RemoveItem deletes a line from the customer's open cart. An emptied cart
// order stays in place and is reused by the next AddItem.
func (r *Repository) RemoveItem(ctx context.Context, itemID, customerID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM order_items
		 WHERE order_item_id = ?
		   AND order_id IN (SELECT order_id FROM orders WHERE customer_id = ? AND status = 'in_cart')`,
		itemID, customerID)
	if err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItemDetail(row rowScanner) (domain.OrderItemDetail, error) {
	var item domain.OrderItemDetail
	var isReturn int64
	err := row.Scan(
		&item.ID,
		&item.OrderID,
		&item.ProductID,
		&item.UnitPrice,
		&item.Quantity,
		&isReturn,
		&item.ProductName,
		&item.Category,
		&item.ImgURL,
	)
	if err != nil {
		return item, fmt.Errorf("scan order item: %w", err)
	}
	item.IsReturn = isReturn != 0
	return item, nil
}
