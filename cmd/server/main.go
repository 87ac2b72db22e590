package main

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/stc-cow/cowtrack-backend-go/internal/api"
	"github.com/stc-cow/cowtrack-backend-go/internal/assistant"
	"github.com/stc-cow/cowtrack-backend-go/internal/config"
	"github.com/stc-cow/cowtrack-backend-go/internal/database"
	"github.com/stc-cow/cowtrack-backend-go/internal/handler"
	"github.com/stc-cow/cowtrack-backend-go/internal/repository"
	"github.com/stc-cow/cowtrack-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	locationRepo := repository.NewLocationRepository(database.GetDB())
	movementRepo := repository.NewMovementRepository(database.GetDB())

	analyticsService := service.NewAnalyticsService(locationRepo, movementRepo)
	ingestService := service.NewIngestService(locationRepo, movementRepo)
	assistantManager := assistant.NewManager(analyticsService, 10*time.Minute, nil)

	// Optional scheduled re-import of the configured snapshot files.
	if cfg.RefreshSpec != "" {
		c := cron.New()
		_, err := c.AddFunc(cfg.RefreshSpec, func() {
			if err := ingestService.RefreshFromFiles(cfg.LocationsCSV, cfg.MovementsCSV); err != nil {
				log.Printf("[Refresh] failed: %v", err)
			}
		})
		if err != nil {
			log.Fatal("Invalid REFRESH_CRON spec:", err)
		}
		c.Start()
		defer c.Stop()
		log.Printf("[Refresh] scheduled: %s", cfg.RefreshSpec)
	}

	router := api.SetupRouter(cfg, api.Handlers{
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Locations: handler.NewLocationHandler(locationRepo),
		Ingest:    handler.NewIngestHandler(ingestService),
		Assistant: handler.NewAssistantHandler(assistantManager),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
