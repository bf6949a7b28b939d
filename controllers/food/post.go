package foodControllers

import (
	"net/http"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

type FoodItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	Available   *bool   `json:"available"`
}

// POST /api/food/ (admin)
func CreateFoodItem(store storage.FoodStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FoodItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		available := true
		if req.Available != nil {
			available = *req.Available
		}
		item := models.FoodItem{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Image:       req.Image,
			Available:   available,
		}
		if err := store.CreateFoodItem(&item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create food item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}
