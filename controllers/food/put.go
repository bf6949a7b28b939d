package foodControllers

import (
	"net/http"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// PUT /api/food/:id (admin)
func UpdateFoodItem(store storage.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, ok := lookupFoodItem(c, store)
		if !ok {
			return
		}

		var req FoodItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		item.Name = req.Name
		item.Description = req.Description
		item.Price = req.Price
		item.Category = req.Category
		item.Image = req.Image
		if req.Available != nil {
			item.Available = *req.Available
		}

		if err := store.UpdateFoodItem(item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update food item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PATCH /api/food/:id/availability (admin)
func ToggleAvailability(store storage.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, ok := lookupFoodItem(c, store)
		if !ok {
			return
		}

		item.Available = !item.Available
		if err := store.UpdateFoodItem(item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to toggle availability"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
