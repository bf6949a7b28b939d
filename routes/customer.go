package routes

import (
	cartControllers "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/cart"
	orderControllers "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/order"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/middleware"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// SetupCustomerRoutes registers the customer-only endpoints: the shopping
// cart and the cart-to-order checkout.
func SetupCustomerRoutes(api *gin.RouterGroup, store storage.Store) {
	customer := api.Group("")
	customer.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleCustomer))
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := customer.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(store))                   // GET /api/cart
			cartGroup.POST("", cartControllers.UpdateCartItem(store, store))    // POST /api/cart
			cartGroup.DELETE("/:food_id", cartControllers.DeleteCartItem(store)) // DELETE /api/cart/:food_id
			cartGroup.DELETE("", cartControllers.ClearCart(store))              // DELETE /api/cart
		}

		// ──────────────── Orders ────────────────
		customer.POST("/orders/checkout", orderControllers.Checkout(store))
		customer.GET("/orders/my", orderControllers.GetMyOrders(store))
	}
}
