package routes

import (
	adminController "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/admin"
	enquiryControllers "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/enquiry"
	foodControllers "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/food"
	orderControllers "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/controllers/order"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/middleware"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers everything behind the admin role.
func SetupAdminRoutes(api *gin.RouterGroup, store storage.Store) {
	admin := api.Group("")
	admin.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleAdmin))
	{
		// ─────────── Menu Management ───────────
		admin.POST("/food", foodControllers.CreateFoodItem(store))
		admin.PUT("/food/:id", foodControllers.UpdateFoodItem(store))
		admin.DELETE("/food/:id", foodControllers.DeleteFoodItem(store))
		admin.PATCH("/food/:id/availability", foodControllers.ToggleAvailability(store))

		// ─────────── Enquiry Management ───────────
		admin.GET("/enquiries", enquiryControllers.GetAllEnquiries(store))
		admin.PATCH("/enquiries/:id/status", enquiryControllers.UpdateEnquiryStatus(store))

		// ─────────── Order Management ───────────
		admin.GET("/orders", orderControllers.GetAllOrders(store))
		admin.PUT("/orders/:orderID/assign", orderControllers.AssignDeliveryStaff(store, store))

		// ─────────── Dashboard & Users ───────────
		adminGroup := admin.Group("/admin")
		{
			adminGroup.GET("/stats", adminController.DashboardStats(store))
			adminGroup.GET("/users", adminController.GetAllUsers(store))
			adminGroup.GET("/delivery-staff", adminController.GetDeliveryStaff(store))
			adminGroup.GET("/menu/export-excel", foodControllers.ExportMenuToExcel(store))
		}
	}
}
