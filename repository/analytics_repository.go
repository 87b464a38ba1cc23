package repository

import (
	"github.com/necropharaoh/qr-menu-system/entity"
	"gorm.io/gorm"
)

// AnalyticsRepository holds the read-only report queries. They are raw SQL:
// multi-join GROUP BY aggregates read better as one statement than as a
// builder chain.
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

type DailySales struct {
	Date          string  `json:"date"`
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  int64   `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

func (r *AnalyticsRepository) DailySales(date string) (*DailySales, error) {
	var out DailySales
	err := r.DB.Raw(`
		SELECT DATE(o.created_at) AS date,
		       COUNT(o.id) AS total_orders,
		       COALESCE(SUM(o.total_amount), 0) AS total_revenue,
		       COALESCE(AVG(o.total_amount), 0) AS avg_order_value
		FROM orders o
		WHERE DATE(o.created_at) = ? AND o.deleted_at IS NULL
		GROUP BY DATE(o.created_at)`, date).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if out.Date == "" {
		out.Date = date
	}
	return &out, nil
}

func (r *AnalyticsRepository) WeeklySales() ([]DailySales, error) {
	var out []DailySales
	err := r.DB.Raw(`
		SELECT DATE(o.created_at) AS date,
		       COUNT(o.id) AS total_orders,
		       COALESCE(SUM(o.total_amount), 0) AS total_revenue,
		       COALESCE(AVG(o.total_amount), 0) AS avg_order_value
		FROM orders o
		WHERE o.created_at >= date('now', '-7 days') AND o.deleted_at IS NULL
		GROUP BY DATE(o.created_at)
		ORDER BY date DESC`).Scan(&out).Error
	return out, err
}

type PopularItem struct {
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	TotalOrdered int64  `json:"total_ordered"`
	TotalRevenue int64  `json:"total_revenue"`
}

func (r *AnalyticsRepository) PopularItems(limit int) ([]PopularItem, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []PopularItem
	err := r.DB.Raw(`
		SELECT mi.name, mi.price,
		       SUM(oi.quantity) AS total_ordered,
		       SUM(oi.quantity * oi.unit_price) AS total_revenue
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= date('now', '-30 days')
		  AND oi.deleted_at IS NULL AND o.deleted_at IS NULL
		GROUP BY mi.id, mi.name, mi.price
		ORDER BY total_ordered DESC
		LIMIT ?`, limit).Scan(&out).Error
	return out, err
}

type CategorySales struct {
	CategoryName string `json:"category_name"`
	TotalOrders  int64  `json:"total_orders"`
	TotalItems   int64  `json:"total_items"`
	TotalRevenue int64  `json:"total_revenue"`
}

func (r *AnalyticsRepository) CategorySales() ([]CategorySales, error) {
	var out []CategorySales
	err := r.DB.Raw(`
		SELECT c.name AS category_name,
		       COUNT(DISTINCT o.id) AS total_orders,
		       SUM(oi.quantity) AS total_items,
		       SUM(oi.quantity * oi.unit_price) AS total_revenue
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		JOIN categories c ON c.id = mi.category_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= date('now', '-30 days')
		  AND oi.deleted_at IS NULL AND o.deleted_at IS NULL
		GROUP BY c.id, c.name
		ORDER BY total_revenue DESC`).Scan(&out).Error
	return out, err
}

type TablePerformance struct {
	TableNumber   int     `json:"table_number"`
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  int64   `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

func (r *AnalyticsRepository) TablePerformance() ([]TablePerformance, error) {
	var out []TablePerformance
	err := r.DB.Raw(`
		SELECT t.table_number,
		       COUNT(o.id) AS total_orders,
		       COALESCE(SUM(o.total_amount), 0) AS total_revenue,
		       COALESCE(AVG(o.total_amount), 0) AS avg_order_value
		FROM tables t
		JOIN orders o ON o.table_id = t.id
		WHERE o.created_at >= date('now', '-30 days')
		  AND o.deleted_at IS NULL AND t.deleted_at IS NULL
		GROUP BY t.id, t.table_number
		ORDER BY total_revenue DESC`).Scan(&out).Error
	return out, err
}

type OrderStatusStat struct {
	Status       entity.OrderStatus `json:"status"`
	Count        int64              `json:"count"`
	TotalRevenue int64              `json:"total_revenue"`
}

func (r *AnalyticsRepository) OrderStatusStats() ([]OrderStatusStat, error) {
	var out []OrderStatusStat
	err := r.DB.Raw(`
		SELECT status,
		       COUNT(*) AS count,
		       COALESCE(SUM(total_amount), 0) AS total_revenue
		FROM orders
		WHERE created_at >= date('now', '-7 days') AND deleted_at IS NULL
		GROUP BY status`).Scan(&out).Error
	return out, err
}
