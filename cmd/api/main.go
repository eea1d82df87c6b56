package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"costengine/internal/config"
	"costengine/internal/database"
	"costengine/internal/handlers"
	"costengine/internal/logger"
	"costengine/internal/middleware"
	"costengine/internal/services"
	"costengine/internal/validator"

	_ "costengine/internal/docs" // Import swagger docs
)

// @title           Transaction Cost Engine API
// @version         1.0
// @description     Computes cost basis and realized gain/loss for batches of security transactions using FIFO or weighted-average cost matching.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration. An unrecognized cost basis method aborts startup.
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the audit database
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators with the Gin binding engine
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	batchRunService := services.NewBatchRunService(db)
	processorService := services.NewProcessorService(appConfig.CostBasisMethod, batchRunService)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(processorService)
	batchRunHandler := handlers.NewBatchRunHandler(batchRunService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes, optionally behind a shared API key
	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(appConfig.PipelineAPIKey))

	transactions := v1.Group("/transactions")
	transactions.POST("/process", transactionHandler.ProcessTransactions)

	batches := v1.Group("/batches")
	batches.GET("", batchRunHandler.ListBatchRuns)
	batches.GET("/:id", batchRunHandler.GetBatchRun)

	log.Infof("Starting cost engine server on port %s (cost basis method: %s)",
		appConfig.Port, appConfig.CostBasisMethod)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
