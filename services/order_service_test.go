package services

import (
	"errors"
	"testing"

	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB, *capturePublisher) {
	t.Helper()
	db := newTestDB(t)
	pub := &capturePublisher{}
	svc := NewOrderService(db, repository.NewOrderRepository(db), pub)
	return svc, db, pub
}

func TestCreateOrderComputesTotal(t *testing.T) {
	svc, db, pub := newOrderService(t)
	table := mustCreateTable(t, db, 1)

	out, err := svc.Create(&CreateOrderReq{
		TableID: table.ID,
		Items: []OrderItemIn{
			{MenuItemID: 1, Quantity: 2, Price: 4500},
			{MenuItemID: 2, Quantity: 1, Price: 1500},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10500), out.TotalAmount)

	var order entity.Order
	require.NoError(t, db.First(&order, out.ID).Error)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, int64(10500), order.TotalAmount)

	var itemCount int64
	require.NoError(t, db.Model(&entity.OrderItem{}).Where("order_id = ?", out.ID).Count(&itemCount).Error)
	assert.Equal(t, int64(2), itemCount)

	assert.Equal(t, 1, pub.count(ChannelAdmin, EventNewOrder))
	assert.Equal(t, 1, pub.count(ChannelAdmin, EventSoundAlert))
}

func TestCreateOrderEmptyItemsPersistsNothing(t *testing.T) {
	svc, db, _ := newOrderService(t)
	table := mustCreateTable(t, db, 1)

	_, err := svc.Create(&CreateOrderReq{TableID: table.ID})
	assert.True(t, errors.Is(err, ErrValidation))

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderRejectsBadQuantity(t *testing.T) {
	svc, db, _ := newOrderService(t)
	table := mustCreateTable(t, db, 1)

	_, err := svc.Create(&CreateOrderReq{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: 1, Quantity: 0, Price: 100}},
	})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCreateOrderUnknownTable(t *testing.T) {
	svc, _, _ := newOrderService(t)

	_, err := svc.Create(&CreateOrderReq{
		TableID: 999,
		Items:   []OrderItemIn{{MenuItemID: 1, Quantity: 1, Price: 100}},
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateStatusInvalidLeavesOrderUnchanged(t *testing.T) {
	svc, db, _ := newOrderService(t)
	table := mustCreateTable(t, db, 1)
	out, err := svc.Create(&CreateOrderReq{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: 1, Quantity: 1, Price: 100}},
	})
	require.NoError(t, err)

	err = svc.UpdateStatus(out.ID, entity.OrderStatus("burnt"))
	assert.True(t, errors.Is(err, ErrValidation))

	var order entity.Order
	require.NoError(t, db.First(&order, out.ID).Error)
	assert.Equal(t, entity.OrderPending, order.Status)
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	svc, _, _ := newOrderService(t)
	err := svc.UpdateStatus(12345, entity.OrderPreparing)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateStatusReadyEmitsAlerts(t *testing.T) {
	svc, db, pub := newOrderService(t)
	table := mustCreateTable(t, db, 3)
	out, err := svc.Create(&CreateOrderReq{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: 1, Quantity: 1, Price: 2000}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(out.ID, entity.OrderReady))

	tableCh := TableChannel(table.ID)
	assert.Equal(t, 1, pub.count(ChannelAdmin, EventOrderUpdate))
	assert.Equal(t, 1, pub.count(tableCh, EventOrderStatusUpdate))
	// ready triggers the extra alert pair on top of the generic update
	assert.Equal(t, 1, pub.count(tableCh, EventOrderReady))
	assert.Equal(t, 2, pub.count(ChannelAdmin, EventSoundAlert)) // new-order + ready
}

func TestUpdateStatusDoesNotRecomputeTotal(t *testing.T) {
	svc, db, _ := newOrderService(t)
	table := mustCreateTable(t, db, 1)
	out, err := svc.Create(&CreateOrderReq{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: 1, Quantity: 2, Price: 4500}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(out.ID, entity.OrderServed))

	var order entity.Order
	require.NoError(t, db.First(&order, out.ID).Error)
	assert.Equal(t, int64(9000), order.TotalAmount)
}

func TestDeleteOrderRemovesItems(t *testing.T) {
	svc, db, _ := newOrderService(t)
	table := mustCreateTable(t, db, 1)
	out, err := svc.Create(&CreateOrderReq{
		TableID: table.ID,
		Items: []OrderItemIn{
			{MenuItemID: 1, Quantity: 1, Price: 100},
			{MenuItemID: 2, Quantity: 3, Price: 250},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(out.ID))

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", out.ID).Count(&orderCount).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Where("order_id = ?", out.ID).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)

	assert.True(t, errors.Is(svc.Delete(out.ID), ErrNotFound))
}

func TestListActiveForTable(t *testing.T) {
	svc, db, _ := newOrderService(t)
	table := mustCreateTable(t, db, 3)
	other := mustCreateTable(t, db, 4)

	// no orders yet
	orders, err := svc.ListActiveForTable(table.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	active, err := svc.Create(&CreateOrderReq{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: 1, Quantity: 1, Price: 100}},
	})
	require.NoError(t, err)

	served, err := svc.Create(&CreateOrderReq{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: 1, Quantity: 1, Price: 100}},
	})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(served.ID, entity.OrderServed))

	_, err = svc.Create(&CreateOrderReq{
		TableID: other.ID,
		Items:   []OrderItemIn{{MenuItemID: 1, Quantity: 1, Price: 100}},
	})
	require.NoError(t, err)

	orders, err = svc.ListActiveForTable(table.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, active.ID, orders[0].ID)
}

func TestListOrdersCarriesTableNumberAndItemsSummary(t *testing.T) {
	svc, db, _ := newOrderService(t)
	table := mustCreateTable(t, db, 7)

	cat := entity.Category{Name: "Mains", Active: true}
	require.NoError(t, db.Create(&cat).Error)
	kebab := entity.MenuItem{Name: "Kebab", Price: 5500, CategoryID: cat.ID, Available: true}
	require.NoError(t, db.Create(&kebab).Error)

	_, err := svc.Create(&CreateOrderReq{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: kebab.ID, Quantity: 2, Price: kebab.Price}},
	})
	require.NoError(t, err)

	orders, err := svc.List()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 7, orders[0].TableNumber)
	assert.Equal(t, "Kebab x2", orders[0].Items)
}

func TestGetOrderDetail(t *testing.T) {
	svc, db, _ := newOrderService(t)
	table := mustCreateTable(t, db, 2)

	out, err := svc.Create(&CreateOrderReq{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: 1, Quantity: 1, Price: 900, Notes: "no onions"}},
		Notes:   "rush",
	})
	require.NoError(t, err)

	detail, err := svc.Get(out.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.TableNumber)
	assert.Equal(t, "rush", detail.Notes)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "no onions", detail.Items[0].Notes)

	_, err = svc.Get(9999)
	assert.True(t, errors.Is(err, ErrNotFound))
}
