package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/pkg/resp"
	"github.com/necropharaoh/qr-menu-system/services"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: service}
}

// GET /api/restaurant
func (rc *RestaurantController) Get(c *gin.Context) {
	rest, err := rc.Service.Get()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// PUT /api/restaurant
func (rc *RestaurantController) Update(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Logo    string `json:"logo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest := entity.Restaurant{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Logo:    req.Logo,
	}
	if err := rc.Service.Update(&rest); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "restaurant updated"})
}

// GET /api/restaurant/settings
func (rc *RestaurantController) GetSettings(c *gin.Context) {
	settings, err := rc.Service.GetSettings()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, settings)
}

// PUT /api/restaurant/settings
func (rc *RestaurantController) UpdateSettings(c *gin.Context) {
	var settings map[string]any
	if err := c.ShouldBindJSON(&settings); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := rc.Service.UpdateSettings(settings); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "settings saved"})
}

// GET /api/restaurant/status
func (rc *RestaurantController) Status(c *gin.Context) {
	resp.OK(c, gin.H{
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}
