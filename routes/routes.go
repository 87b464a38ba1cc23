package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/configs"
	"github.com/necropharaoh/qr-menu-system/controllers"
	"github.com/necropharaoh/qr-menu-system/middlewares"
	"github.com/necropharaoh/qr-menu-system/repository"
	"github.com/necropharaoh/qr-menu-system/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, pub services.Publisher) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	callRepo := repository.NewWaiterCallRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, pub)
	callSvc := services.NewWaiterCallService(db, callRepo, pub)
	tableSvc := services.NewTableService(tableRepo, orderSvc, cfg.PublicBaseURL)
	menuSvc := services.NewMenuService(menuRepo)
	restSvc := services.NewRestaurantService(restRepo)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg)
	orderCtrl := controllers.NewOrderController(orderSvc)
	waiterCtrl := controllers.NewWaiterController(callSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)

	staff := middlewares.AuthMiddleware(cfg.JWTSecret)

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)
		auth.GET("/me", staff, authCtrl.Me)
	}

	// Menu: browsing is public, management is staff-only
	menu := api.Group("/menu")
	{
		menu.GET("/categories", menuCtrl.ListCategories)
		menu.POST("/categories", staff, menuCtrl.CreateCategory)
		menu.PUT("/categories/:id", staff, menuCtrl.UpdateCategory)
		menu.DELETE("/categories/:id", staff, menuCtrl.DeleteCategory)

		menu.GET("/items", menuCtrl.ListItems)
		menu.GET("/items/:id", menuCtrl.GetItem)
		menu.POST("/items", staff, menuCtrl.CreateItem)
		menu.PUT("/items/:id", staff, menuCtrl.UpdateItem)
		menu.PUT("/items/:id/availability", staff, menuCtrl.SetItemAvailability)
		menu.DELETE("/items/:id", staff, menuCtrl.DeleteItem)
	}

	// Tables
	tables := api.Group("/tables")
	{
		tables.GET("", tableCtrl.List)
		tables.POST("", staff, tableCtrl.Create)
		tables.PUT("/:id", staff, tableCtrl.Update)
		tables.DELETE("/:id", staff, tableCtrl.Delete)
		tables.PUT("/:id/status", staff, tableCtrl.UpdateStatus)
		tables.PUT("/:id/qr", staff, tableCtrl.RegenerateQR)
		tables.GET("/:id/details", tableCtrl.Details)
	}

	// Orders: creation and per-table listing come from the customer page
	orders := api.Group("/orders")
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Create)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id/status", staff, orderCtrl.UpdateStatus)
		orders.DELETE("/:id", staff, orderCtrl.Delete)
		orders.GET("/table/:tableId", orderCtrl.ListActiveForTable)
	}

	// Waiter calls: creation comes from the customer page
	waiter := api.Group("/waiter")
	{
		waiter.GET("", staff, waiterCtrl.List)
		waiter.GET("/pending", waiterCtrl.ListPending)
		waiter.POST("", waiterCtrl.Create)
		waiter.PUT("/resolve-all", staff, waiterCtrl.ResolveAll)
		waiter.PUT("/:id/status", staff, waiterCtrl.UpdateStatus)
		waiter.DELETE("/:id", staff, waiterCtrl.Delete)
		waiter.GET("/table/:tableId", waiterCtrl.ListForTable)
	}

	// Restaurant singleton + settings
	rest := api.Group("/restaurant")
	{
		rest.GET("", restCtrl.Get)
		rest.PUT("", staff, restCtrl.Update)
		rest.GET("/settings", restCtrl.GetSettings)
		rest.PUT("/settings", staff, restCtrl.UpdateSettings)
		rest.GET("/status", restCtrl.Status)
	}

	// Analytics (staff only)
	analytics := api.Group("/analytics", staff)
	{
		analytics.GET("/daily-sales", analyticsCtrl.DailySales)
		analytics.GET("/weekly-sales", analyticsCtrl.WeeklySales)
		analytics.GET("/popular-items", analyticsCtrl.PopularItems)
		analytics.GET("/category-sales", analyticsCtrl.CategorySales)
		analytics.GET("/table-performance", analyticsCtrl.TablePerformance)
		analytics.GET("/order-status", analyticsCtrl.OrderStatus)
	}
}
