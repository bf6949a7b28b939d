package foodControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// GET /api/food/
//
// Supports ?available=true|false, ?category= and ?search= filters. List
// endpoints use the {"results": [...]} envelope.
func GetFoodItems(store storage.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := storage.FoodFilter{
			Category: c.Query("category"),
			Search:   c.Query("search"),
		}
		if availableStr := c.Query("available"); availableStr != "" {
			available := strings.EqualFold(availableStr, "true")
			filter.Available = &available
		}

		items, err := store.ListFoodItems(filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch menu items"})
			return
		}
		if items == nil {
			items = []models.FoodItem{}
		}
		c.JSON(http.StatusOK, gin.H{"results": items})
	}
}

// GET /api/food/:id
func GetFoodItemByID(store storage.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, ok := lookupFoodItem(c, store)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// lookupFoodItem resolves the :id param to a menu item, writing the error
// response itself when the lookup fails.
func lookupFoodItem(c *gin.Context, store storage.FoodStore) (*models.FoodItem, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid food item ID"})
		return nil, false
	}
	item, err := store.GetFoodItem(uint(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch food item"})
		}
		return nil, false
	}
	return item, true
}
