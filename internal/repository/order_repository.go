package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/domain"
)

// checkoutFault, when set, runs inside the checkout transaction after the
// stock decrements and before the status flip. Test hook only.
var checkoutFault func() error

type checkoutLine struct {
	itemID    int64
	productID int64
	unitPrice float64
	quantity  int64
	stock     int64
}

// Checkout converts the customer's in-cart order at the store into a
// completed one: validates stock for every line up front, then decrements
// inventory and flips the order status in a single transaction. The
// decrements are guarded (`stock >= qty`), so a racing checkout that wins
// the row first forces this one to roll back instead of overselling.
func (r *Repository) Checkout(ctx context.Context, customerID, storeID int64) (*domain.Order, error) {
	var order *domain.Order

	err := r.inTx(func(tx *sql.Tx) error {
		var orderID int64
		err := tx.QueryRowContext(ctx,
			`SELECT order_id FROM orders WHERE customer_id = ? AND store_id = ? AND status = 'in_cart'`,
			customerID, storeID).Scan(&orderID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCartNotFound
		}
		if err != nil {
			return fmt.Errorf("query cart order: %w", err)
		}

		rows, err := tx.QueryContext(ctx,
			`SELECT oi.order_item_id, oi.product_id, oi.unit_price, oi.quantity,
			        COALESCE(si.stock, 0)
			 FROM order_items AS oi
			 LEFT JOIN store_inventory AS si
			   ON si.product_id = oi.product_id AND si.store_id = ?
			 WHERE oi.order_id = ? AND oi.is_return = 0`,
			storeID, orderID)
		if err != nil {
			return fmt.Errorf("query cart lines: %w", err)
		}

		var lines []checkoutLine
		for rows.Next() {
			var l checkoutLine
			if e2 := rows.Scan(&l.itemID, &l.productID, &l.unitPrice, &l.quantity, &l.stock); e2 != nil {
				rows.Close()
				return fmt.Errorf("scan cart line: %w", e2)
			}
			lines = append(lines, l)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("row iteration error: %w", err)
		}

		if len(lines) == 0 {
			return ErrEmptyCart
		}

		// Full pre-check before any write.
		var total float64
		for _, l := range lines {
			if l.quantity > l.stock {
				return fmt.Errorf("%w: product %d (want %d, have %d)",
					ErrInsufficientStock, l.productID, l.quantity, l.stock)
			}
			total += l.unitPrice * float64(l.quantity)
		}

		for _, l := range lines {
			res, e2 := tx.ExecContext(ctx,
				`UPDATE store_inventory SET stock = stock - ?
				 WHERE store_id = ? AND product_id = ? AND stock >= ?`,
				l.quantity, storeID, l.productID, l.quantity)
			if e2 != nil {
				return fmt.Errorf("decrement stock: %w", e2)
			}
			affected, e2 := res.RowsAffected()
			if e2 != nil {
				return fmt.Errorf("decrement stock: %w", e2)
			}
			if affected == 0 {
				// lost the row to a concurrent checkout
				return fmt.Errorf("%w: product %d", ErrInsufficientStock, l.productID)
			}
		}

		if checkoutFault != nil {
			if e2 := checkoutFault(); e2 != nil {
				return e2
			}
		}

		now := time.Now().UTC()
		if _, e2 := tx.ExecContext(ctx,
			`UPDATE orders SET status = 'complete', total_price = ?, order_datetime = ? WHERE order_id = ?`,
			total, now, orderID); e2 != nil {
			return fmt.Errorf("complete order: %w", e2)
		}

		order = &domain.Order{
			ID:            orderID,
			CustomerID:    customerID,
			StoreID:       storeID,
			Status:        domain.OrderStatusComplete,
			TotalPrice:    total,
			OrderDatetime: &now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ReturnItems flips is_return on the given lines of a completed order and
// credits their quantities back to the order's store. Lines already returned
// are skipped; the returned slice holds only the lines actually changed.
// The order's own status is left untouched. Only completed orders qualify:
// cart and cancelled lines were never debited, so crediting them would
// inflate stock.
func (r *Repository) ReturnItems(ctx context.Context, orderID, customerID int64, itemIDs []int64) ([]domain.OrderItem, error) {
	var changed []domain.OrderItem

	err := r.inTx(func(tx *sql.Tx) error {
		var storeID int64
		err := tx.QueryRowContext(ctx,
			`SELECT store_id FROM orders WHERE order_id = ? AND customer_id = ? AND status = 'complete'`,
			orderID, customerID).Scan(&storeID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("query order: %w", err)
		}

		ids := dedupe(itemIDs)
		query := fmt.Sprintf(
			`SELECT order_item_id, order_id, product_id, unit_price, quantity, is_return
			 FROM order_items
			 WHERE order_id = ? AND order_item_id IN (%s)`,
			placeholders(len(ids)))
		args := make([]any, 0, len(ids)+1)
		args = append(args, orderID)
		for _, id := range ids {
			args = append(args, id)
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("query order items: %w", err)
		}

		var found []domain.OrderItem
		for rows.Next() {
			var item domain.OrderItem
			var isReturn int64
			if e2 := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
				&item.UnitPrice, &item.Quantity, &isReturn); e2 != nil {
				rows.Close()
				return fmt.Errorf("scan order item: %w", e2)
			}
			item.IsReturn = isReturn != 0
			found = append(found, item)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("row iteration error: %w", err)
		}

		// The whole request is rejected when any id is foreign to the order.
		if len(found) != len(ids) {
			return ErrItemMismatch
		}

		for _, item := range found {
			if item.IsReturn {
				continue
			}
			if _, e2 := tx.ExecContext(ctx,
				`UPDATE order_items SET is_return = 1 WHERE order_item_id = ?`,
				item.ID); e2 != nil {
				return fmt.Errorf("mark item returned: %w", e2)
			}
			if _, e2 := tx.ExecContext(ctx,
				`UPDATE store_inventory SET stock = stock + ?
				 WHERE store_id = ? AND product_id = ?`,
				item.Quantity, storeID, item.ProductID); e2 != nil {
				return fmt.Errorf("restock item: %w", e2)
			}
			item.IsReturn = true
			changed = append(changed, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed == nil {
		changed = []domain.OrderItem{}
	}
	return changed, nil
}

// GetOrderWithItems returns the order header and all of its lines, scoped to
// the owning customer.
func (r *Repository) GetOrderWithItems(ctx context.Context, orderID, customerID int64) (*domain.OrderWithItems, error) {
	var out domain.OrderWithItems
	var dt sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT order_id, customer_id, store_id, status, total_price, order_datetime
		 FROM orders WHERE order_id = ? AND customer_id = ?`,
		orderID, customerID).Scan(
		&out.ID, &out.CustomerID, &out.StoreID, &out.Status, &out.TotalPrice, &dt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}
	if dt.Valid {
		out.OrderDatetime = &dt.Time
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cartItemColumns+`
		 FROM order_items AS oi
		 JOIN products AS p ON p.product_id = oi.product_id
		 WHERE oi.order_id = ?
		 ORDER BY oi.order_item_id`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	out.Items = []domain.OrderItemDetail{}
	for rows.Next() {
		item, err := scanItemDetail(rows)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return &out, nil
}

// ListOrdersByCustomer returns the customer's non-cart orders, newest first.
func (r *Repository) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT order_id, customer_id, store_id, status, total_price, order_datetime
		 FROM orders
		 WHERE customer_id = ? AND status != 'in_cart'
		 ORDER BY order_datetime DESC, order_id DESC`,
		customerID)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		var dt sql.NullTime
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.StoreID,
			&order.Status, &order.TotalPrice, &dt); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		if dt.Valid {
			order.OrderDatetime = &dt.Time
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return orders, nil
}

func placeholders(n int) string {
	if n == 0 {
		return "NULL"
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
