package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/configs"
	"github.com/necropharaoh/qr-menu-system/middlewares"
	"github.com/necropharaoh/qr-menu-system/routes"
	"github.com/necropharaoh/qr-menu-system/services"
	"github.com/necropharaoh/qr-menu-system/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedRestaurant(); err != nil {
		log.Fatalf("seed restaurant failed: %v", err)
	}

	// Notification fan-out: push via the WebSocket hub, or nothing in poll
	// mode (clients re-fetch the list endpoints instead).
	var pub services.Publisher = services.NoopPublisher{}
	var hub *ws.Hub
	if cfg.NotifyMode == "push" {
		hub = ws.NewHub()
		go hub.Run()
		pub = hub
	} else {
		log.Println("notify mode: poll (no WebSocket fan-out)")
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, pub)

	if hub != nil {
		r.GET("/ws", hub.HandleWebSocket)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
