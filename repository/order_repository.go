package repository

import (
	"time"

	"github.com/necropharaoh/qr-menu-system/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderSummary is one row of the kitchen/admin board: the order plus its
// table number and a flattened "Name xQty,..." items line.
type OrderSummary struct {
	ID          uint               `json:"id"`
	TableID     uint               `json:"table_id"`
	TableNumber int                `json:"table_number"`
	Status      entity.OrderStatus `json:"status"`
	TotalAmount int64              `json:"total_amount"`
	Notes       string             `json:"notes"`
	Items       string             `json:"items"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (r *OrderRepository) summaryQuery() *gorm.DB {
	return r.DB.Table("orders AS o").
		Select(`o.id, o.table_id, t.table_number, o.status, o.total_amount, o.notes,
			o.created_at, o.updated_at,
			GROUP_CONCAT(mi.name || ' x' || oi.quantity) AS items`).
		Joins("LEFT JOIN tables t ON t.id = o.table_id").
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id AND oi.deleted_at IS NULL").
		Joins("LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Where("o.deleted_at IS NULL").
		Group("o.id")
}

func (r *OrderRepository) ListOrders() ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.summaryQuery().
		Order("o.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListActiveForTable(tableID uint, active []entity.OrderStatus) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.summaryQuery().
		Where("o.table_id = ? AND o.status IN ?", tableID, active).
		Order("o.created_at DESC").
		Scan(&out).Error
	return out, err
}

// UpdateStatus stamps updated_at and reports how many rows matched, so the
// caller can tell a missing order from a successful transition.
func (r *OrderRepository) UpdateStatus(orderID uint, status entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// DeleteOrder removes the order items first, then the order, in one
// transaction so no orphaned items survive.
func (r *OrderRepository) DeleteOrder(orderID uint) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Order{}, orderID)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// OrderItemDetail carries the menu item name alongside the snapshot fields.
type OrderItemDetail struct {
	ID          uint   `json:"id"`
	MenuItemID  uint   `json:"menu_item_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Notes       string `json:"notes"`
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]OrderItemDetail, error) {
	var items []OrderItemDetail
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.menu_item_id, mi.name, mi.description, mi.image, oi.quantity, oi.unit_price, oi.notes").
		Joins("LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Where("oi.order_id = ? AND oi.deleted_at IS NULL", orderID).
		Scan(&items).Error
	return items, err
}

func (r *OrderRepository) CountOrderItems(orderID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt, err
}

// ---------------- Helpers ----------------

func (r *OrderRepository) TableExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Table{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
