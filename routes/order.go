package routes

import (
	orderControllers "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/order"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/middleware"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes registers the order endpoints shared between roles.
func SetupOrderRoutes(api *gin.RouterGroup, store storage.Store) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// websocket feed for real-time order updates
		orders.GET("/ws", middleware.RequireRoles(models.RoleAdmin), orderControllers.OrderWebSocketHandler)

		// Fetch a single order (ownership checked per role in the handler)
		orders.GET("/:orderID", orderControllers.GetOrderByID(store))

		// Update order status (admin anywhere in the lifecycle, delivery
		// staff only for their own pickups)
		orders.PUT("/:orderID/status",
			middleware.RequireRoles(models.RoleAdmin, models.RoleDelivery),
			orderControllers.UpdateOrderStatus(store))
	}
}
