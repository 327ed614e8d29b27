package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// TopSellers returns the best-selling products by units sold over completed
// orders, ignoring returned lines.
func (r *Repository) TopSellers(ctx context.Context, limit int64) ([]TopSeller, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.product_id, p.product_name, p.category, p.price, p.img_url,
		        SUM(oi.quantity) AS total_sold
		 FROM order_items AS oi
		 JOIN products AS p ON oi.product_id = p.product_id
		 JOIN orders AS o ON oi.order_id = o.order_id
		 WHERE o.status = 'complete' AND oi.is_return = 0
		 GROUP BY p.product_id, p.product_name, p.category, p.price, p.img_url
		 ORDER BY total_sold DESC
		 LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query top sellers: %w", err)
	}
	defer rows.Close()

	sellers := []TopSeller{}
	for rows.Next() {
		var s TopSeller
		if err := rows.Scan(&s.ProductID, &s.ProductName, &s.Category,
			&s.Price, &s.ImgURL, &s.TotalSold); err != nil {
			return nil, fmt.Errorf("scan top seller: %w", err)
		}
		sellers = append(sellers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return sellers, nil
}

// BestRegion returns the (state, city) with the highest completed-order
// revenue. A zero-value result (nil state/city) means no sales yet.
func (r *Repository) BestRegion(ctx context.Context) (*RegionSales, error) {
	var out RegionSales
	var state, city string
	var revenue sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT s.state, s.city,
		        COUNT(DISTINCT o.order_id) AS order_count,
		        SUM(o.total_price) AS total_revenue
		 FROM orders AS o
		 JOIN stores AS s ON o.store_id = s.store_id
		 WHERE o.status = 'complete'
		 GROUP BY s.state, s.city
		 ORDER BY total_revenue DESC
		 LIMIT 1`).Scan(&state, &city, &out.OrderCount, &revenue)
	if errors.Is(err, sql.ErrNoRows) {
		return &RegionSales{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query best region: %w", err)
	}

	out.State = &state
	out.City = &city
	if revenue.Valid {
		out.TotalRevenue = revenue.Float64
	}
	return &out, nil
}

// DailyRevenue returns per-day revenue and order counts for completed orders
// between start and end, inclusive.
func (r *Repository) DailyRevenue(ctx context.Context, start, end time.Time) ([]DailyRevenue, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DATE(o.order_datetime) AS date,
		        COUNT(o.order_id) AS order_count,
		        SUM(o.total_price) AS revenue
		 FROM orders AS o
		 WHERE o.status = 'complete'
		   AND DATE(o.order_datetime) BETWEEN ? AND ?
		 GROUP BY DATE(o.order_datetime)
		 ORDER BY date ASC`,
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("query daily revenue: %w", err)
	}
	defer rows.Close()

	days := []DailyRevenue{}
	for rows.Next() {
		var d DailyRevenue
		var revenue sql.NullFloat64
		if err := rows.Scan(&d.Date, &d.OrderCount, &revenue); err != nil {
			return nil, fmt.Errorf("scan daily revenue: %w", err)
		}
		if revenue.Valid {
			d.Revenue = revenue.Float64
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return days, nil
}
