package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Pub  Publisher
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, pub Publisher) *OrderService {
	return &OrderService{DB: db, Repo: repo, Pub: pub}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint   `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
	Notes      string `json:"notes"`
}

type CreateOrderReq struct {
	TableID uint          `json:"table_id"`
	Items   []OrderItemIn `json:"items"`
	Notes   string        `json:"notes"`
}

type CreateOrderRes struct {
	ID          uint  `json:"id"`
	TotalAmount int64 `json:"total_amount"`
}

// ----- Create -----

// Create snapshots the caller-supplied unit prices: the stored total never
// changes when the menu does.
func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	if req.TableID == 0 {
		return nil, fmt.Errorf("%w: table_id is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items is required", ErrValidation)
	}
	for _, it := range req.Items {
		if it.MenuItemID == 0 {
			return nil, fmt.Errorf("%w: menu_item_id is required", ErrValidation)
		}
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
	}

	ok, err := s.Repo.TableExists(req.TableID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: table not found", ErrNotFound)
	}

	var total int64
	for _, it := range req.Items {
		total += it.Price * int64(it.Quantity)
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Status:      entity.OrderPending,
			TotalAmount: total,
			Notes:       req.Notes,
			TableID:     req.TableID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range req.Items {
			oi := entity.OrderItem{
				Quantity:   it.Quantity,
				UnitPrice:  it.Price,
				Notes:      it.Notes,
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return fmt.Errorf("order items: %w", err)
			}
		}

		out = CreateOrderRes{ID: order.ID, TotalAmount: order.TotalAmount}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Pub.Publish(ChannelAdmin, EventNewOrder, map[string]any{
		"order_id":     out.ID,
		"table_id":     req.TableID,
		"total_amount": out.TotalAmount,
		"items":        req.Items,
	})
	s.Pub.Publish(ChannelAdmin, EventSoundAlert, map[string]any{
		"type": EventNewOrder, "sound": "notification.mp3",
	})

	return &out, nil
}

// ----- List & Detail -----

type OrderDetail struct {
	ID          uint                         `json:"id"`
	TableID     uint                         `json:"table_id"`
	TableNumber int                          `json:"table_number"`
	Status      entity.OrderStatus           `json:"status"`
	TotalAmount int64                        `json:"total_amount"`
	Notes       string                       `json:"notes"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
	Items       []repository.OrderItemDetail `json:"items"`
}

func (s *OrderService) Get(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}

	detail := &OrderDetail{
		ID: o.ID, TableID: o.TableID, Status: o.Status,
		TotalAmount: o.TotalAmount, Notes: o.Notes,
		CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt,
		Items: items,
	}
	var t entity.Table
	if err := s.DB.Select("table_number").First(&t, o.TableID).Error; err == nil {
		detail.TableNumber = t.TableNumber
	}
	return detail, nil
}

func (s *OrderService) List() ([]repository.OrderSummary, error) {
	return s.Repo.ListOrders()
}

func (s *OrderService) ListActiveForTable(tableID uint) ([]repository.OrderSummary, error) {
	active := []entity.OrderStatus{entity.OrderPending, entity.OrderPreparing, entity.OrderReady}
	return s.Repo.ListActiveForTable(tableID, active)
}

// ----- Status transitions -----

// UpdateStatus accepts any valid status as the target; served/cancelled are
// terminal by convention only, matching how staff actually use the board.
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid order status %q", ErrValidation, status)
	}

	affected, err := s.Repo.UpdateStatus(orderID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: order not found", ErrNotFound)
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}

	s.Pub.Publish(ChannelAdmin, EventOrderUpdate, map[string]any{
		"order_id": o.ID, "table_id": o.TableID, "status": status,
	})
	s.Pub.Publish(TableChannel(o.TableID), EventOrderStatusUpdate, map[string]any{
		"order_id": o.ID, "status": status,
	})

	if status == entity.OrderReady {
		s.Pub.Publish(ChannelAdmin, EventSoundAlert, map[string]any{
			"type": EventOrderReady, "sound": "ready.mp3",
		})
		s.Pub.Publish(TableChannel(o.TableID), EventOrderReady, map[string]any{
			"order_id": o.ID, "message": "Your order is ready!",
		})
	}
	return nil
}

func (s *OrderService) Delete(orderID uint) error {
	affected, err := s.Repo.DeleteOrder(orderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: order not found", ErrNotFound)
	}
	return nil
}
