package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/pkg/resp"
	"github.com/necropharaoh/qr-menu-system/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// ----- Categories -----

// GET /api/menu/categories — customers see active categories only; staff
// pass ?all=1 for the full list.
func (mc *MenuController) ListCategories(c *gin.Context) {
	activeOnly := c.Query("all") == ""
	cats, err := mc.Service.ListCategories(activeOnly)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /api/menu/categories
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Image       string `json:"image"`
		SortOrder   int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		SortOrder:   req.SortOrder,
		Active:      true,
	}
	if err := mc.Service.CreateCategory(&cat); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /api/menu/categories/:id
func (mc *MenuController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Image       *string `json:"image"`
		SortOrder   *int    `json:"sort_order"`
		Active      *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if len(fields) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := mc.Service.UpdateCategory(uint(id), fields); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category updated"})
}

// DELETE /api/menu/categories/:id
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := mc.Service.DeleteCategory(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

// ----- Menu items -----

// GET /api/menu/items?category_id=&all=
func (mc *MenuController) ListItems(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("category_id"))
	availableOnly := c.Query("all") == ""

	items, err := mc.Service.ListItems(uint(categoryID), availableOnly)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu/items/:id
func (mc *MenuController) GetItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := mc.Service.GetItem(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/menu/items
func (mc *MenuController) CreateItem(c *gin.Context) {
	var req struct {
		CategoryID  uint   `json:"category_id" binding:"required"`
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Price       int64  `json:"price"`
		Image       string `json:"image"`
		SortOrder   int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		SortOrder:   req.SortOrder,
		Available:   true,
	}
	if err := mc.Service.CreateItem(&item); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/menu/items/:id
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		CategoryID  *uint   `json:"category_id"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Price       *int64  `json:"price"`
		Image       *string `json:"image"`
		SortOrder   *int    `json:"sort_order"`
		Available   *bool   `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			resp.BadRequest(c, "price must not be negative")
			return
		}
		fields["price"] = *req.Price
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	if req.Available != nil {
		fields["available"] = *req.Available
	}
	if len(fields) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := mc.Service.UpdateItem(uint(id), fields); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item updated"})
}

// PUT /api/menu/items/:id/availability
func (mc *MenuController) SetItemAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := mc.Service.SetItemAvailability(uint(id), *req.Available); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "availability updated"})
}

// DELETE /api/menu/items/:id
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := mc.Service.DeleteItem(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
