package authControllers

import (
	"net/http"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/middleware"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	VehicleNumber *string `json:"vehicleNumber"`
}

// GET /api/auth/me
func GetProfile(store storage.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentUser(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		user, err := store.GetUserByID(session.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /api/auth/me
func UpdateProfile(store storage.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentUser(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		user, err := store.GetUserByID(session.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Phone != nil {
			user.Phone = *req.Phone
		}
		if req.Address != nil {
			user.Address = *req.Address
		}
		if req.VehicleNumber != nil {
			user.VehicleNumber = *req.VehicleNumber
		}

		if err := store.UpdateUser(user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
