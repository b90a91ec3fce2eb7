package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"legal_case_api_go/config"
	"legal_case_api_go/db"
	"legal_case_api_go/handlers"
	"legal_case_api_go/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize in-memory stores and workflow managers
	db.Initialize()
	services.InitManagers()

	if cfg.SeedDemoData {
		if err := services.SeedDemoData(); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Demo accounts registered (password: " + services.DemoPassword + ")")
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	handlers.RegisterRoutes(e)

	log.Printf("Legal case management backend starting on :%s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
