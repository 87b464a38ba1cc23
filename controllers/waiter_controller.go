package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/pkg/resp"
	"github.com/necropharaoh/qr-menu-system/services"
)

type WaiterController struct {
	Service *services.WaiterCallService
}

func NewWaiterController(service *services.WaiterCallService) *WaiterController {
	return &WaiterController{Service: service}
}

// GET /api/waiter
func (wc *WaiterController) List(c *gin.Context) {
	calls, err := wc.Service.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, calls)
}

// GET /api/waiter/pending
func (wc *WaiterController) ListPending(c *gin.Context) {
	calls, err := wc.Service.ListPending()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, calls)
}

// POST /api/waiter
func (wc *WaiterController) Create(c *gin.Context) {
	var req struct {
		TableID uint `json:"table_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	call, err := wc.Service.Create(req.TableID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": call.ID, "table_id": call.TableID, "status": call.Status})
}

// PUT /api/waiter/:id/status
func (wc *WaiterController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status entity.CallStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := wc.Service.UpdateStatus(uint(id), req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "waiter call status updated"})
}

// PUT /api/waiter/resolve-all
func (wc *WaiterController) ResolveAll(c *gin.Context) {
	count, err := wc.Service.ResolveAll()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"resolved_count": count})
}

// DELETE /api/waiter/:id
func (wc *WaiterController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := wc.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "waiter call deleted"})
}

// GET /api/waiter/table/:tableId
func (wc *WaiterController) ListForTable(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("tableId"))
	calls, err := wc.Service.ListForTable(uint(tableID))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, calls)
}
