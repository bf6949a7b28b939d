package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/middleware"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// -------- Request Structs --------

type CardDetails struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	ExpiryDate string `json:"expiryDate"` // MM/YY
	CVV        string `json:"cvv"`
}

type CheckoutRequest struct {
	PaymentMethod       string       `json:"payment_method"`
	DeliveryAddress     string       `json:"delivery_address"`
	PhoneNumber         string       `json:"phone_number"`
	SpecialInstructions string       `json:"special_instructions"`
	Card                *CardDetails `json:"card"`
}

// -------- Validation --------

var (
	errEmptyCart         = errors.New("cart is empty")
	errNoPaymentMethod   = errors.New("please select a payment method")
	errNoDeliveryAddress = errors.New("please enter a delivery address")
	errNoPhoneNumber     = errors.New("please enter a phone number")
	errBadCardNumber     = errors.New("please enter a valid 16-digit card number")
	errBadCardName       = errors.New("please enter the cardholder name")
	errBadExpiryDate     = errors.New("please enter a valid expiry date (MM/YY)")
	errBadCVV            = errors.New("please enter a valid CVV")
	errBadLineItem       = errors.New("order items must have positive quantity and price")
)

// validateCheckout runs the format checks the order form performs. Card
// details get length/digit checks only; there is no Luhn pass and no
// gateway call.
func validateCheckout(req CheckoutRequest, items []models.CartItem) error {
	if len(items) == 0 {
		return errEmptyCart
	}
	for _, item := range items {
		if item.Quantity < 1 || item.Price <= 0 {
			return errBadLineItem
		}
	}
	if req.PaymentMethod != "cash" && req.PaymentMethod != "card" {
		return errNoPaymentMethod
	}
	if req.DeliveryAddress == "" {
		return errNoDeliveryAddress
	}
	if req.PhoneNumber == "" {
		return errNoPhoneNumber
	}
	if req.PaymentMethod == "card" {
		card := req.Card
		if card == nil || !allDigits(card.CardNumber) || len(card.CardNumber) != 16 {
			return errBadCardNumber
		}
		if card.CardName == "" {
			return errBadCardName
		}
		if len(card.ExpiryDate) != 5 || card.ExpiryDate[2] != '/' ||
			!allDigits(card.ExpiryDate[:2]) || !allDigits(card.ExpiryDate[3:]) {
			return errBadExpiryDate
		}
		if !allDigits(card.CVV) || len(card.CVV) != 3 {
			return errBadCVV
		}
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// generateOrderRef produces a unique reference like 20250908130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handler --------

// POST /api/orders/checkout (customer)
//
// Turns the customer's cart into a pending order. The total is recomputed
// server-side from the cart snapshot and the cart is cleared in the same
// write.
func Checkout(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentUser(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		cart, err := store.GetCart(session.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}
		if err := validateCheckout(req, cart.Items); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		customer, err := store.GetUserByID(session.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		var items []models.OrderItem
		for _, line := range cart.Items {
			items = append(items, models.OrderItem{
				FoodID:   line.FoodID,
				Name:     line.FoodName,
				Quantity: line.Quantity,
				Price:    line.Price,
			})
		}

		order := models.Order{
			OrderRef:            generateOrderRef(),
			CustomerID:          customer.ID,
			CustomerName:        customer.Name,
			Items:               items,
			Total:               models.CartTotal(cart.Items),
			Status:              models.OrderStatusPending,
			DeliveryAddress:     req.DeliveryAddress,
			PhoneNumber:         req.PhoneNumber,
			PaymentMethod:       req.PaymentMethod,
			SpecialInstructions: req.SpecialInstructions,
			OrderDate:           time.Now(),
		}

		if err := store.PlaceOrder(&order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order"})
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusCreated, order)
	}
}
