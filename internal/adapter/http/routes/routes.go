package routes

import (
	"log"
	_ "souk_marketplace/docs" // This will be auto-generated
	"souk_marketplace/internal/adapter/http/handlers"
	"souk_marketplace/internal/adapter/http/middleware"
	repository2 "souk_marketplace/internal/adapter/persistence/repository"
	"souk_marketplace/internal/infrastructure/database"
	"souk_marketplace/internal/infrastructure/metrics"
	"souk_marketplace/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)

	placementUseCase := usecase.NewOrderPlacementUseCase(orderRepo, productRepo, notificationRepo)
	lifecycleUseCase := usecase.NewOrderLifecycleUseCase(orderRepo, productRepo, notificationRepo)
	queryUseCase := usecase.NewOrderQueryUseCase(orderRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	orderHandler := handlers.NewOrderHandler(placementUseCase, lifecycleUseCase, queryUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.Auth())
	addMarketplaceRoutes(authed, orderHandler, productHandler, notificationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	m := metrics.NewServerMetrics()
	router.Use(m.Middleware())
	router.GET("/metrics", metrics.Handler())
}
