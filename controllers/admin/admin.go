package adminController

import (
	"net/http"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// GET /api/admin/stats
//
// Dashboard statistics: order counts, customer count and the revenue from
// delivered orders.
func DashboardStats(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.ListOrders(storage.OrderFilter{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		customers, err := store.ListUsersByRole(models.RoleCustomer)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
			return
		}

		var pending int
		var revenue float64
		for _, order := range orders {
			if order.Status == models.OrderStatusPending {
				pending++
			}
			if order.Status == models.OrderStatusDelivered {
				revenue += order.Total
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"total_orders":    len(orders),
			"pending_orders":  pending,
			"total_customers": len(customers),
			"total_revenue":   revenue,
		})
	}
}

// GET /api/admin/users
func GetAllUsers(store storage.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := store.ListUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
			return
		}
		if users == nil {
			users = []models.User{}
		}
		c.JSON(http.StatusOK, gin.H{"results": users})
	}
}

// GET /api/admin/delivery-staff
//
// The assignment dropdown on the manage-orders page.
func GetDeliveryStaff(store storage.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, err := store.ListUsersByRole(models.RoleDelivery)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch delivery staff"})
			return
		}
		if staff == nil {
			staff = []models.User{}
		}
		c.JSON(http.StatusOK, gin.H{"results": staff})
	}
}
