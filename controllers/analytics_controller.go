package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/pkg/resp"
	"github.com/necropharaoh/qr-menu-system/services"
)

type AnalyticsController struct {
	Service *services.AnalyticsService
}

func NewAnalyticsController(service *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: service}
}

// GET /api/analytics/daily-sales?date=2026-08-28
func (ac *AnalyticsController) DailySales(c *gin.Context) {
	report, err := ac.Service.DailySales(c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /api/analytics/weekly-sales
func (ac *AnalyticsController) WeeklySales(c *gin.Context) {
	report, err := ac.Service.WeeklySales()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /api/analytics/popular-items?limit=10
func (ac *AnalyticsController) PopularItems(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	report, err := ac.Service.PopularItems(limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /api/analytics/category-sales
func (ac *AnalyticsController) CategorySales(c *gin.Context) {
	report, err := ac.Service.CategorySales()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /api/analytics/table-performance
func (ac *AnalyticsController) TablePerformance(c *gin.Context) {
	report, err := ac.Service.TablePerformance()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /api/analytics/order-status
func (ac *AnalyticsController) OrderStatus(c *gin.Context) {
	report, err := ac.Service.OrderStatusStats()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}
