package models

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	// Order statuses (kitchen-to-doorstep flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting the kitchen
	OrderStatusPreparing OrderStatus = "preparing" // Kitchen is working on it
	OrderStatusReady     OrderStatus = "ready"     // Packed and waiting for pickup
	OrderStatusPickedUp  OrderStatus = "picked_up" // Out with the delivery staff
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the order
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before pickup
)

// orderTransitions is the adjacency table for the order lifecycle.
// delivered and cancelled are terminal and have no outgoing edges.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusPickedUp, OrderStatusCancelled},
	OrderStatusPickedUp:  {OrderStatusDelivered},
}

// ParseOrderStatus maps a raw string onto a known order status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusPickedUp, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanTransition reports whether from→to is an edge of the lifecycle.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError is returned when an order status change is not
// an edge of the lifecycle table.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition: %s -> %s", e.From, e.To)
}

type Order struct {
	ID                  uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef            string      `gorm:"uniqueIndex" json:"order_ref"`
	CustomerID          uint        `gorm:"not null;index" json:"customerId"`
	CustomerName        string      `json:"customerName"`
	Items               []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total               float64     `gorm:"type:decimal(10,2)" json:"total"`
	Status              OrderStatus `gorm:"type:VARCHAR(20);default:'pending';index" json:"status"`
	DeliveryAddress     string      `gorm:"not null" json:"deliveryAddress"`
	PhoneNumber         string      `gorm:"not null" json:"phoneNumber"`
	PaymentMethod       string      `json:"paymentMethod"` // "cash" or "card"
	SpecialInstructions string      `json:"specialInstructions"`
	DeliveryStaffID     *uint       `json:"deliveryStaffId"`
	DeliveryStaffName   *string     `json:"deliveryStaffName"`
	OrderDate           time.Time   `json:"orderDate"`
	DeliveredAt         *time.Time  `json:"deliveredAt,omitempty"`
}

type OrderItem struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID  uint    `gorm:"index" json:"-"`
	FoodID   uint    `json:"foodId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `gorm:"type:decimal(10,2)" json:"price"`
}

// Subtotal is the line contribution to the order total.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Transition moves the order to next, enforcing the lifecycle table.
// The delivered timestamp is stamped on the final hop.
func (o *Order) Transition(next OrderStatus) error {
	if !CanTransition(o.Status, next) {
		return &InvalidTransitionError{From: o.Status, To: next}
	}
	o.Status = next
	if next == OrderStatusDelivered {
		now := time.Now()
		o.DeliveredAt = &now
	}
	return nil
}
