package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/middleware"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

type CartItemInput struct {
	FoodID uint `json:"food_id" binding:"required"`
	// Quantity zero or below removes the line, so no required binding.
	Quantity int `json:"quantity"`
}

// POST /api/cart
//
// Upserts the line for the given menu item, snapshotting name and price
// at add time. A quantity of zero or less removes the line.
func UpdateCartItem(foods storage.FoodStore, carts storage.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentUser(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		food, err := foods.GetFoodItem(input.FoodID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Food item does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to validate food item"})
			return
		}
		if !food.Available && input.Quantity > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Food item is not available"})
			return
		}

		cart, err := carts.UpsertCartItem(session.ID, models.CartItem{
			FoodID:    food.ID,
			FoodName:  food.Name,
			FoodImage: food.Image,
			Price:     food.Price,
			Quantity:  input.Quantity,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": models.CartTotal(cart.Items)})
	}
}

// GET /api/cart
func GetCart(carts storage.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentUser(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		cart, err := carts.GetCart(session.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}
		if cart.Items == nil {
			cart.Items = []models.CartItem{}
		}
		c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": models.CartTotal(cart.Items)})
	}
}

// DELETE /api/cart/:food_id
func DeleteCartItem(carts storage.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentUser(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		foodID, err := strconv.ParseUint(c.Param("food_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid food item ID"})
			return
		}

		if err := carts.RemoveCartItem(session.ID, uint(foodID)); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /api/cart
func ClearCart(carts storage.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentUser(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		if err := carts.ClearCart(session.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
