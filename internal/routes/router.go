package routes

import (
	"context"
	"encoding/json"
	"net/http"

	"electromed-tracker/internal/config"
	"electromed-tracker/internal/delivery/http/handler"
	"electromed-tracker/internal/infrastructure/database/postgres"
	"electromed-tracker/internal/infrastructure/upload"
	"electromed-tracker/internal/logger"
	"electromed-tracker/internal/middleware"
	"electromed-tracker/internal/realtime"
	"electromed-tracker/internal/usecase/analytics"
	"electromed-tracker/internal/usecase/catalog"
	"electromed-tracker/internal/usecase/shipment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(cfg.Upload.MaxSizeBytes))
	if cfg.RateLimit.GeneralRPS > 0 {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))
	}

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	hub := realtime.NewHub()

	shipmentRepository := postgres.NewShipmentRepository(db)
	shipmentService := shipment.NewService(shipmentRepository, hub)
	analyticsService := analytics.NewService(shipmentRepository)
	shipmentHandler := handler.NewShipmentHandler(shipmentService, analyticsService)

	serviceRepository := postgres.NewServiceRepository(db)
	referenceRepository := postgres.NewReferenceRepository(db)
	providerRepository := postgres.NewProviderRepository(db)
	catalogService := catalog.NewService(serviceRepository, referenceRepository, providerRepository, hub)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	hub.RegisterSource(realtime.CollectionShipments, func(ctx context.Context) ([]byte, error) {
		result, err := shipmentService.List(ctx, &shipment.ListShipmentsRequest{View: "all"})
		if err != nil {
			return nil, err
		}
		return json.Marshal(result)
	})
	hub.RegisterSource(realtime.CollectionServices, func(ctx context.Context) ([]byte, error) {
		result, err := catalogService.ListServices(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(result)
	})

	wsHandler := handler.NewWSHandler(hub)
	wsHandler.RegisterRoutes(router)

	v1 := router.Group("/api/v1")
	{
		shipmentHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		uploader, err := upload.New(&cfg.Upload)
		if err != nil {
			// The dashboard works without photos; the endpoint is simply
			// not mounted when the CDN is unconfigured.
			logger.Warn("Image uploads disabled", zap.Error(err))
		} else {
			uploadHandler := handler.NewUploadHandler(uploader, cfg.Upload.MaxSizeBytes)
			uploadHandler.RegisterRoutes(v1)
		}
	}

	logger.Info("All routes initialized")
	return router
}
