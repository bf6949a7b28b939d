package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/middleware"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignDeliveryStaffRequest struct {
	DeliveryStaffID uint `json:"delivery_staff_id" binding:"required"`
}

// -------- Read views --------

// GET /api/orders (admin), optional ?status= filter
func GetAllOrders(store storage.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		listOrders(c, store, storage.OrderFilter{Status: statusFilter(c)})
	}
}

// GET /api/orders/my (customer)
func GetMyOrders(store storage.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentUser(c)
		listOrders(c, store, storage.OrderFilter{CustomerID: session.ID, Status: statusFilter(c)})
	}
}

// GET /api/orders/assigned (delivery staff)
func GetAssignedOrders(store storage.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentUser(c)
		listOrders(c, store, storage.OrderFilter{DeliveryStaffID: session.ID, Status: statusFilter(c)})
	}
}

func statusFilter(c *gin.Context) models.OrderStatus {
	raw := c.Query("status")
	if raw == "" {
		return ""
	}
	status, ok := models.ParseOrderStatus(raw)
	if !ok {
		return ""
	}
	return status
}

func listOrders(c *gin.Context, store storage.OrderStore, filter storage.OrderFilter) {
	orders, err := store.ListOrders(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"results": orders})
}

// GET /api/orders/:orderID
//
// Admins see any order; customers only their own; delivery staff only
// orders assigned to them.
func GetOrderByID(store storage.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := lookupOrder(c, store)
		if !ok {
			return
		}

		session := middleware.CurrentUser(c)
		switch session.Role {
		case models.RoleAdmin:
		case models.RoleCustomer:
			if order.CustomerID != session.ID {
				c.JSON(http.StatusForbidden, gin.H{"message": "You don't have permission to view this order"})
				return
			}
		case models.RoleDelivery:
			if order.DeliveryStaffID == nil || *order.DeliveryStaffID != session.ID {
				c.JSON(http.StatusForbidden, gin.H{"message": "You don't have permission to view this order"})
				return
			}
		default:
			c.JSON(http.StatusForbidden, gin.H{"message": "You don't have permission to view this order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// -------- Mutations --------

// PUT /api/orders/:orderID/status (admin, delivery staff)
//
// Transitions are checked against the lifecycle table. Delivery staff may
// only move their own assigned orders from ready to picked_up and from
// picked_up to delivered; admins may perform any legal transition,
// including cancellation.
func UpdateOrderStatus(store storage.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := lookupOrder(c, store)
		if !ok {
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		newStatus, valid := models.ParseOrderStatus(req.Status)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order status"})
			return
		}

		session := middleware.CurrentUser(c)
		if session.Role == models.RoleDelivery {
			if order.DeliveryStaffID == nil || *order.DeliveryStaffID != session.ID {
				c.JSON(http.StatusForbidden, gin.H{"message": "Order is not assigned to you"})
				return
			}
			if newStatus != models.OrderStatusPickedUp && newStatus != models.OrderStatusDelivered {
				c.JSON(http.StatusForbidden, gin.H{"message": "Delivery staff can only mark orders picked up or delivered"})
				return
			}
		}

		if err := order.Transition(newStatus); err != nil {
			var invalid *models.InvalidTransitionError
			if errors.As(err, &invalid) {
				c.JSON(http.StatusConflict, gin.H{"message": invalid.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
			return
		}

		if err := store.UpdateOrder(order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
			return
		}

		broadcastOrderUpdate(*order)
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:orderID/assign (admin)
//
// Assigns a delivery staff member and forces the order to ready. Legal
// from pending, preparing and ready; repeating the call on a ready order
// is a no-op beyond the staff fields.
func AssignDeliveryStaff(users storage.UserStore, orders storage.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := lookupOrder(c, orders)
		if !ok {
			return
		}

		var req AssignDeliveryStaffRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		staff, err := users.GetUserByID(req.DeliveryStaffID)
		if err != nil || staff.Role != models.RoleDelivery {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid delivery staff"})
			return
		}

		switch order.Status {
		case models.OrderStatusPending, models.OrderStatusPreparing, models.OrderStatusReady:
		default:
			c.JSON(http.StatusConflict, gin.H{"message": "Delivery staff can only be assigned before pickup"})
			return
		}

		order.DeliveryStaffID = &staff.ID
		order.DeliveryStaffName = &staff.Name
		order.Status = models.OrderStatusReady

		if err := orders.UpdateOrder(order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to assign delivery staff"})
			return
		}

		broadcastOrderUpdate(*order)
		c.JSON(http.StatusOK, order)
	}
}

// lookupOrder resolves the :orderID param, writing the error response
// itself when the lookup fails.
func lookupOrder(c *gin.Context, store storage.OrderStore) (*models.Order, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return nil, false
	}
	order, err := store.GetOrder(uint(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
		}
		return nil, false
	}
	return order, true
}
