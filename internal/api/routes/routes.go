package routes

import (
	"fmt"
	"net/http"

	"farm-assets-backend/internal/api/handlers"
	"farm-assets-backend/internal/api/middleware"
	"farm-assets-backend/internal/auth"
	"farm-assets-backend/internal/config"
	"farm-assets-backend/internal/repository"
	"farm-assets-backend/internal/service"
	"farm-assets-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "farm-assets-backend/docs" // registers the swagger spec
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	// Request id first so every later middleware can log it
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	if cfg.MetricsEnabled {
		metrics := middleware.NewMetrics()
		registry := prometheus.NewRegistry()
		registry.MustRegister(metrics, collectors.NewGoCollector())

		router.Use(metrics.Handler())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	validator := validation.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	agricultureRepo := repository.NewAgricultureProductionRepository(db)
	livestockRepo := repository.NewLivestockProductionRepository(db)

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.JWTExpiresIn,
		BcryptCost: cfg.BcryptCost,
	}, userRepo, validator)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	// Initialize services
	userService := service.NewUserService(userRepo, authService, validator)
	farmService := service.NewFarmService(farmRepo, validator)
	agricultureService := service.NewAgricultureProductionService(agricultureRepo, farmRepo, validator)
	livestockService := service.NewLivestockProductionService(livestockRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)
	userHandler := handlers.NewUserHandler(userService)
	farmHandler := handlers.NewFarmHandler(farmService)
	agricultureHandler := handlers.NewAgricultureProductionHandler(agricultureService)
	livestockHandler := handlers.NewLivestockProductionHandler(livestockService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	router.POST("/users", userHandler.Register)
	router.POST("/sessions", authHandler.CreateSession)

	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.PUT("/users", userHandler.Update)

		farms := protected.Group("/farms")
		{
			farms.GET("", farmHandler.ListFarms)
			farms.POST("", farmHandler.CreateFarm)
			farms.GET("/:id", farmHandler.GetFarm)
			farms.PUT("/:id", farmHandler.UpdateFarm)
		}

		agriculture := protected.Group("/agriculture-production")
		{
			agriculture.GET("", agricultureHandler.ListProductions)
			agriculture.POST("", agricultureHandler.CreateProduction)
			agriculture.GET("/:id", agricultureHandler.GetProduction)
			agriculture.PUT("/:id", agricultureHandler.UpdateProduction)
			agriculture.DELETE("/:id", agricultureHandler.DeleteProduction)
		}

		livestock := protected.Group("/livestock-production")
		{
			livestock.GET("", livestockHandler.ListProductions)
			livestock.POST("", livestockHandler.CreateProduction)
			livestock.GET("/:id", livestockHandler.GetProduction)
			livestock.PUT("/:id", livestockHandler.UpdateProduction)
			livestock.DELETE("/:id", livestockHandler.DeleteProduction)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Route not found",
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router, nil
}
