package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/pkg/resp"
	"github.com/necropharaoh/qr-menu-system/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// GET /api/orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Service.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := oc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /api/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Service.UpdateStatus(uint(id), req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order status updated"})
}

// DELETE /api/orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}

// GET /api/orders/table/:tableId
func (oc *OrderController) ListActiveForTable(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("tableId"))
	orders, err := oc.Service.ListActiveForTable(uint(tableID))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}
