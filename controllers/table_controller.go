package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/pkg/resp"
	"github.com/necropharaoh/qr-menu-system/services"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(service *services.TableService) *TableController {
	return &TableController{Service: service}
}

// GET /api/tables
func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.Service.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /api/tables
func (tc *TableController) Create(c *gin.Context) {
	var req struct {
		TableNumber int    `json:"table_number" binding:"required"`
		QRCode      string `json:"qr_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table, err := tc.Service.Create(req.TableNumber, req.QRCode)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, table)
}

// PUT /api/tables/:id
func (tc *TableController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		TableNumber int                `json:"table_number"`
		QRCode      string             `json:"qr_code"`
		Status      entity.TableStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := tc.Service.Update(uint(id), req.TableNumber, req.QRCode, req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "table updated"})
}

// DELETE /api/tables/:id
func (tc *TableController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := tc.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "table deleted"})
}

// PUT /api/tables/:id/status
func (tc *TableController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status entity.TableStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := tc.Service.UpdateStatus(uint(id), req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "table status updated"})
}

// PUT /api/tables/:id/qr
func (tc *TableController) RegenerateQR(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	qr, err := tc.Service.RegenerateQR(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"qr_code": qr})
}

// GET /api/tables/:id/details
func (tc *TableController) Details(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	details, err := tc.Service.Details(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, details)
}
