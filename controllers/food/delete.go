package foodControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// DELETE /api/food/:id (admin)
func DeleteFoodItem(store storage.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid food item ID"})
			return
		}

		if err := store.DeleteFoodItem(uint(id)); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete food item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
	}
}
