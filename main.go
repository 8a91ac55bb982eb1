package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hariyalifarms/hariyali-backend-go/config"
	"github.com/hariyalifarms/hariyali-backend-go/database"
	"github.com/hariyalifarms/hariyali-backend-go/logger"
	"github.com/hariyalifarms/hariyali-backend-go/metrics"
	customMiddleware "github.com/hariyalifarms/hariyali-backend-go/middleware"
	"github.com/hariyalifarms/hariyali-backend-go/routes"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	log := logger.Get()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(customMiddleware.RequestID)
	e.Use(customMiddleware.RequestLogger(log))
	e.Use(metrics.Middleware())

	// Connect to MongoDB
	if err := database.ConnectDB(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Setup routes
	routes.SetupRoutes(e)

	// Start the server
	port := config.GetEnv("PORT", "3000")
	log.Info().Str("port", port).Msg("server starting")
	if err := e.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
