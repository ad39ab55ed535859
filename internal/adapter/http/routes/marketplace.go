package routes

import (
	"souk_marketplace/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders        = "/orders"
	PathProducts      = "/products"
	PathNotifications = "/notifications"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	productHandler *handlers.ProductHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("/mine", orderHandler.ListMine)
		orders.GET("/received", orderHandler.ListReceived)
		orders.PUT("/:id/accept", orderHandler.Accept)
		orders.PUT("/:id/refuse", orderHandler.Refuse)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.GET("/:id", productHandler.GetByID)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	rg.GET(PathNotifications, notificationHandler.List)
}
