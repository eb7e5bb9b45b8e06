package main

import (
	"fmt"
	"log"
	"os"

	"vpp-dispatch/internal/api/handlers"
	"vpp-dispatch/internal/api/middleware"
	"vpp-dispatch/internal/config"
	"vpp-dispatch/internal/recorder"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfgPath := os.Getenv("VPP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Run history is optional; without a database path every run is ephemeral.
	var rec recorder.Recorder = recorder.Noop{}
	if cfg.Database.SQLitePath != "" {
		sqlRec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open recorder: %v", err)
		}
		defer sqlRec.Close()
		rec = sqlRec
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler(cfg, rec)
	forecastHandler := handlers.NewForecastHandler(cfg)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/forecast", forecastHandler.RunForecast)
		api.GET("/industries", handlers.ListIndustries)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
