package routes

import (
	orderControllers "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/order"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/middleware"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// SetupDeliveryRoutes registers the delivery-staff endpoints.
func SetupDeliveryRoutes(api *gin.RouterGroup, store storage.Store) {
	delivery := api.Group("")
	delivery.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleDelivery))
	{
		delivery.GET("/orders/assigned", orderControllers.GetAssignedOrders(store))
	}
}
